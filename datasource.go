package lazyrow

import "io"

// PageIterator produces a sequence of Pages, one at a time
type PageIterator interface {
	HasNextPage() bool
	NextPage() (Page, error)
}

// DataSourceParser turns a stream of encoded data into Pages with one channel per column
type DataSourceParser interface {
	PageSize() int // the maximum number of positions per Page
	Parse(r io.Reader, colNames []string, colTypes []ColumnType) (PageIterator, error)
}

// PageLoader is a description of how to load specific Pages of data from a particular DataSource.
// DataSources implement this interface to implement data-loading logic.
type PageLoader interface {
	ToString() string                                  // for logging
	Load(parser DataSourceParser) (PageIterator, error) // how to actually load data
}

// PageMap is an interface describing an iterator for PageLoaders.
// Returned by DataSource.Analyze().
type PageMap interface {
	HasNext() bool
	Next() PageLoader
}

// DataSource is a source of data, described by the column names and types of the Pages it produces
type DataSource interface {
	Analyze() (PageMap, error)
	ColumnNames() []string
	ColumnTypes() []ColumnType
}
