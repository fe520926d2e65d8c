package jsonl

import (
	"bufio"
	"fmt"
	"strings"
	"sync"

	"github.com/go-sif/lazyrow"
	"github.com/go-sif/lazyrow/page"
	"github.com/tidwall/gjson"
)

// PageIterator produces Pages from a stream of JSONL data, one Page at a time
type PageIterator struct {
	parser   *Parser
	scanner  *bufio.Scanner
	hasNext  bool
	line     int
	colNames []string
	colTypes []lazyrow.ColumnType
	builder  *page.Builder
	lock     sync.Mutex
}

// HasNextPage returns true iff this PageIterator can produce another Page
func (it *PageIterator) HasNextPage() bool {
	it.lock.Lock()
	defer it.lock.Unlock()
	return it.hasNext
}

// NextPage returns the next Page. The final Page may be empty.
func (it *PageIterator) NextPage() (lazyrow.Page, error) {
	it.lock.Lock()
	defer it.lock.Unlock()
	for {
		// If the page is full, we're done
		if it.builder.IsFull() {
			return it.builder.Build(), nil
		}
		// Otherwise, grab another line
		if !it.scanner.Scan() {
			if err := it.scanner.Err(); err != nil {
				return nil, err
			}
			it.hasNext = false
			return it.builder.Build(), nil
		}
		it.line++
		rowString := it.scanner.Text()
		if strings.TrimSpace(rowString) == "" {
			continue
		}
		values, err := ParseJSONRow(it.colNames, it.colTypes, gjson.Parse(rowString))
		if err == nil {
			err = it.builder.AppendRow(values...)
		}
		if err != nil {
			it.parser.logger.Error().Err(err).Int("line", it.line).Str("text", rowString).Msg("unable to parse line")
			return nil, fmt.Errorf("line %d: %w", it.line, err)
		}
	}
}
