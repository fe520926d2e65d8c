package dsv

import (
	"strings"
	"testing"
	"time"

	"github.com/go-sif/lazyrow"
	errors "github.com/go-sif/lazyrow/errors"
	"github.com/go-sif/lazyrow/row"
	"github.com/stretchr/testify/require"
)

var (
	colNames = []string{"id", "name", "fare", "pickup_time", "code"}
	colTypes = []lazyrow.ColumnType{
		&lazyrow.Int32ColumnType{},
		&lazyrow.VarStringColumnType{},
		&lazyrow.Float64ColumnType{},
		&lazyrow.TimestampColumnType{},
		&lazyrow.FixedBytesColumnType{Length: 2},
	}
	data = "id|name|fare|pickup_time|code\n" +
		"1|Sean|12.5|2013-01-01 15:11:48|0a0b\n" +
		"# a comment\n" +
		"2|null|7.25|2013-01-06 00:18:35|null\n" +
		"3|Chris||2013-01-05 18:49:41|ffff\n"
)

func parseAll(t *testing.T, parser *Parser, input string) []lazyrow.Page {
	it, err := parser.Parse(strings.NewReader(input), colNames, colTypes)
	require.Nil(t, err)
	var pages []lazyrow.Page
	for it.HasNextPage() {
		p, err := it.NextPage()
		require.Nil(t, err)
		pages = append(pages, p)
	}
	return pages
}

func testConf() *ParserConf {
	return &ParserConf{
		PageSize:    2,
		HeaderLines: 1,
		Delimiter:   '|',
		Comment:     '#',
		NilValue:    "null",
		TimeFormat:  "2006-01-02 15:04:05",
	}
}

func TestDSVParser(t *testing.T) {
	parser := CreateParser(testConf())
	require.Equal(t, 2, parser.PageSize())
	pages := parseAll(t, parser, data)
	require.Len(t, pages, 2)
	require.Equal(t, 2, pages[0].PositionCount())
	require.Equal(t, 1, pages[1].PositionCount())

	first, err := row.CreateLazyRow(colTypes, pages[0], 0)
	require.Nil(t, err)
	name, err := lazyrow.GetAs[string](first, 1)
	require.Nil(t, err)
	require.Equal(t, "Sean", name)
	pickup, err := lazyrow.GetAs[time.Time](first, 3)
	require.Nil(t, err)
	require.True(t, time.Date(2013, 1, 1, 15, 11, 48, 0, time.UTC).Equal(pickup))
	code, err := lazyrow.GetAs[[]byte](first, 4)
	require.Nil(t, err)
	require.Equal(t, []byte{0x0a, 0x0b}, code)

	second, err := row.CreateLazyRow(colTypes, pages[0], 1)
	require.Nil(t, err)
	v, err := second.Get(1)
	require.Nil(t, err)
	require.Nil(t, v)
	v, err = second.Get(4)
	require.Nil(t, err)
	require.Nil(t, v)

	// empty fields are nil too
	third, err := row.CreateLazyRow(colTypes, pages[1], 0)
	require.Nil(t, err)
	v, err = third.Get(2)
	require.Nil(t, err)
	require.Nil(t, v)
}

func TestDSVParserDefaults(t *testing.T) {
	parser := CreateParser(&ParserConf{})
	require.Greater(t, parser.PageSize(), 0)
	it, err := parser.Parse(strings.NewReader("4,Phil,1.5,2013-01-05T18:49:41Z,0102\n"), colNames, colTypes)
	require.Nil(t, err)
	p, err := it.NextPage()
	require.Nil(t, err)
	require.Equal(t, 1, p.PositionCount())
	require.False(t, it.HasNextPage())
}

func TestDSVParserErrors(t *testing.T) {
	parser := CreateParser(testConf())
	_, err := parser.Parse(strings.NewReader(data), colNames[:2], colTypes)
	require.IsType(t, errors.InvalidArgumentError{}, err)

	tests := map[string]string{
		"bad integer":   "x|Sean|1.0|2013-01-01 15:11:48|0a0b\n",
		"bad timestamp": "1|Sean|1.0|yesterday|0a0b\n",
		"short bytes":   "1|Sean|1.0|2013-01-01 15:11:48|0a\n",
		"wrong width":   "1|Sean|1.0\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			it, err := CreateParser(&ParserConf{Delimiter: '|', TimeFormat: "2006-01-02 15:04:05"}).Parse(strings.NewReader(input), colNames, colTypes)
			require.Nil(t, err)
			_, err = it.NextPage()
			require.NotNil(t, err)
		})
	}
}
