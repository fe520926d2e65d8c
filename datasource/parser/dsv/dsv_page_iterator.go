package dsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"sync"

	"github.com/go-sif/lazyrow"
	"github.com/go-sif/lazyrow/page"
)

type pageIterator struct {
	parser   *Parser
	reader   *csv.Reader
	hasNext  bool
	colNames []string
	colTypes []lazyrow.ColumnType
	builder  *page.Builder
	lock     sync.Mutex
}

// HasNextPage returns true iff this PageIterator can produce another Page
func (dsvi *pageIterator) HasNextPage() bool {
	dsvi.lock.Lock()
	defer dsvi.lock.Unlock()
	return dsvi.hasNext
}

// NextPage returns the next Page if one is available, or an error
func (dsvi *pageIterator) NextPage() (lazyrow.Page, error) {
	dsvi.lock.Lock()
	defer dsvi.lock.Unlock()
	for {
		// If the page is full, we're done
		if dsvi.builder.IsFull() {
			return dsvi.builder.Build(), nil
		}
		// Otherwise, grab another line
		rowStrings, err := dsvi.reader.Read()
		if err != nil && err == io.EOF {
			dsvi.hasNext = false
			return dsvi.builder.Build(), nil
		} else if err != nil {
			return nil, err
		}
		values, err := scanRow(dsvi.parser.conf, dsvi.colNames, dsvi.colTypes, rowStrings)
		if err == nil {
			err = dsvi.builder.AppendRow(values...)
		}
		if err != nil {
			line, _ := dsvi.reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
}
