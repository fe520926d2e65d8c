// Package dsv provides a DataSourceParser for delimiter-separated values, such as CSV or TSV.
package dsv
