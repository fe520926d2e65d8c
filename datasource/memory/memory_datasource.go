// Package memory provides a DataSource over in-memory buffers of encoded data. It is mostly
// useful for testing.
package memory

import (
	"github.com/go-sif/lazyrow"
)

// DataSource is a set of buffers containing data which will be parsed into Pages
type DataSource struct {
	data     [][]byte
	colNames []string
	colTypes []lazyrow.ColumnType
}

// CreateDataSource is a factory for DataSources. Each buffer is loaded by its own PageLoader.
func CreateDataSource(data [][]byte, colNames []string, colTypes []lazyrow.ColumnType) *DataSource {
	return &DataSource{data: data, colNames: colNames, colTypes: colTypes}
}

// Analyze returns a PageMap, describing how the source data will be divided into Pages
func (fs *DataSource) Analyze() (lazyrow.PageMap, error) {
	return &PageMap{
		source: fs,
	}, nil
}

// ColumnNames returns the names of the columns parsed from each buffer
func (fs *DataSource) ColumnNames() []string {
	return fs.colNames
}

// ColumnTypes returns the types of the columns parsed from each buffer
func (fs *DataSource) ColumnTypes() []lazyrow.ColumnType {
	return fs.colTypes
}
