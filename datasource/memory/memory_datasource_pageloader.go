package memory

import (
	"bytes"
	"fmt"

	"github.com/go-sif/lazyrow"
)

// PageLoader is capable of loading Pages of data from a buffer
type PageLoader struct {
	idx    int
	source *DataSource
}

// ToString returns a string representation of this PageLoader
func (pl *PageLoader) ToString() string {
	return fmt.Sprintf("Memory loader index: %d", pl.idx)
}

// Load parses a buffer into Pages
func (pl *PageLoader) Load(parser lazyrow.DataSourceParser) (lazyrow.PageIterator, error) {
	r := bytes.NewReader(pl.source.data[pl.idx])
	return parser.Parse(r, pl.source.colNames, pl.source.colTypes)
}
