// Package lazyrow contains the core abstractions of lazyrow, a set of row-oriented views over
// columnar Pages. This root package defines the interfaces shared by Pages, Blocks, ColumnTypes
// and Rows, and is an excellent overview of the library's key concepts. A LazyRow (see the row
// package) exposes one position of a Page as a RowView, decoding each field only when it is
// first read.
package lazyrow
