package jsonl

import (
	"bufio"
	"io"

	"github.com/go-sif/lazyrow"
	errors "github.com/go-sif/lazyrow/errors"
	"github.com/go-sif/lazyrow/logging"
	"github.com/go-sif/lazyrow/page"
	"github.com/rs/zerolog"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	PageSize      int // The maximum number of positions per Page. Defaults to page.DefaultMaxPositions.
	HeaderLines   int // The number of lines to ignore from the beginning of the input. Defaults to 0.
	MaxBufferSize int // Maximum size in bytes of the buffer used to read lines from the input
}

// Parser produces Pages from JSONL data
type Parser struct {
	conf   *ParserConf
	logger zerolog.Logger
}

// CreateParser returns a new JSONL Parser. Columns are parsed from each line of JSON using their column name, which should be a gjson path. Values within the JSON which do not correspond to a column are ignored.
func CreateParser(conf *ParserConf) *Parser {
	if conf.PageSize <= 0 {
		conf.PageSize = page.DefaultMaxPositions
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf, logger: logging.NewLogger()}
}

// PageSize returns the maximum size in positions of Pages produced by this Parser
func (p *Parser) PageSize() int {
	return p.conf.PageSize
}

// Parse parses JSONL data to produce Pages with one channel per column
func (p *Parser) Parse(r io.Reader, colNames []string, colTypes []lazyrow.ColumnType) (lazyrow.PageIterator, error) {
	if len(colNames) != len(colTypes) {
		return nil, errors.InvalidArgumentError{Msg: "column names and types must have the same length"}
	}
	// start parsing by creating a scanner
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)
	// ignore header lines, if configured to do so
	skipped := 0
	for i := 0; i < p.conf.HeaderLines && scanner.Scan(); i++ {
		skipped++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &PageIterator{
		parser:   p,
		scanner:  scanner,
		hasNext:  true,
		line:     skipped,
		colNames: colNames,
		colTypes: colTypes,
		builder:  page.CreateBuilder(colTypes, p.conf.PageSize),
	}, nil
}
