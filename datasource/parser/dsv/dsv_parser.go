package dsv

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/go-sif/lazyrow"
	errors "github.com/go-sif/lazyrow/errors"
	"github.com/go-sif/lazyrow/page"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	PageSize    int    // The maximum number of positions per Page. Defaults to page.DefaultMaxPositions.
	HeaderLines int    // The number of lines to ignore from the beginning of the input. Defaults to 0.
	Delimiter   rune   // The delimiter separating columns in the file. Defaults to ,
	Comment     rune   // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue    string // A special string which represents nil values in the dataset. Defaults to "" (the empty string).
	TimeFormat  string // The layout used to parse timestamp columns. Defaults to time.RFC3339Nano.
}

// Parser produces Pages from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.PageSize <= 0 {
		conf.PageSize = page.DefaultMaxPositions
	}
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	if len(conf.TimeFormat) == 0 {
		conf.TimeFormat = time.RFC3339Nano
	}
	return &Parser{conf: conf}
}

// PageSize returns the maximum size in positions of Pages produced by this Parser
func (p *Parser) PageSize() int {
	return p.conf.PageSize
}

// Parse parses DSV data to produce Pages with one channel per column
func (p *Parser) Parse(r io.Reader, colNames []string, colTypes []lazyrow.ColumnType) (lazyrow.PageIterator, error) {
	if len(colNames) != len(colTypes) {
		return nil, errors.InvalidArgumentError{Msg: "column names and types must have the same length"}
	}
	// start parsing by creating a reader
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	reader.FieldsPerRecord = len(colTypes)
	reader.ReuseRecord = true

	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		_, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
	}

	return &pageIterator{
		parser:   p,
		reader:   reader,
		hasNext:  true,
		colNames: colNames,
		colTypes: colTypes,
		builder:  page.CreateBuilder(colTypes, p.conf.PageSize),
	}, nil
}
