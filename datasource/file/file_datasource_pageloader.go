package file

import (
	"fmt"
	"os"

	"github.com/go-sif/lazyrow"
	"github.com/go-sif/lazyrow/logging"
)

// PageLoader is capable of loading Pages of data from a file
type PageLoader struct {
	path   string
	source *DataSource
}

// ToString returns a string representation of this PageLoader
func (pl *PageLoader) ToString() string {
	return fmt.Sprintf("File loader filename: %s", pl.path)
}

// Load opens the file and parses it into Pages. The file is closed once the
// returned PageIterator is exhausted, or fails.
func (pl *PageLoader) Load(parser lazyrow.DataSourceParser) (lazyrow.PageIterator, error) {
	f, err := os.Open(pl.path)
	if err != nil {
		return nil, err
	}
	pi, err := parser.Parse(f, pl.source.colNames, pl.source.colTypes)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &closingPageIterator{PageIterator: pi, file: f}, nil
}

type closingPageIterator struct {
	lazyrow.PageIterator
	file   *os.File
	closed bool
}

func (it *closingPageIterator) NextPage() (lazyrow.Page, error) {
	p, err := it.PageIterator.NextPage()
	if err != nil || !it.PageIterator.HasNextPage() {
		it.close()
	}
	return p, err
}

func (it *closingPageIterator) close() {
	if it.closed {
		return
	}
	it.closed = true
	if err := it.file.Close(); err != nil {
		logger := logging.NewLogger()
		logger.Warn().Err(err).Str("file", it.file.Name()).Msg("couldn't close file")
	}
}
