// Package row provides lazyrow.RowView implementations: LazyRow, which decodes fields from a
// columnar Page on demand, and Record, its eager and mutable counterpart.
package row
