package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-sif/lazyrow"
	"github.com/go-sif/lazyrow/datasource"
	"github.com/go-sif/lazyrow/datasource/parser/jsonl"
	"github.com/go-sif/lazyrow/row"
	"github.com/stretchr/testify/require"
)

var (
	colNames = []string{"id", "meta.name"}
	colTypes = []lazyrow.ColumnType{&lazyrow.Int64ColumnType{}, &lazyrow.VarStringColumnType{}}
)

func writeFile(t *testing.T, dir string, name string, contents string) {
	require.Nil(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644))
}

func TestFileDataSource(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.jsonl", "{\"id\": 1, \"meta\": {\"name\": \"a\"}}\n{\"id\": 2}\n{\"id\": 3, \"meta\": {\"name\": \"c\"}}\n")
	writeFile(t, dir, "b.jsonl", "{\"id\": 4, \"meta\": {\"name\": \"d\"}}\n")
	writeFile(t, dir, "ignored.txt", "not json")

	source := CreateDataSource(filepath.Join(dir, "*.jsonl"), colNames, colTypes)
	require.Equal(t, colNames, source.ColumnNames())
	require.Equal(t, colTypes, source.ColumnTypes())
	pm, err := source.Analyze()
	require.Nil(t, err)
	parser := jsonl.CreateParser(&jsonl.ParserConf{PageSize: 2})
	totalRows := 0
	loaders := 0
	for pm.HasNext() {
		pl := pm.Next()
		require.Contains(t, pl.ToString(), ".jsonl")
		loaders++
		it, err := pl.Load(parser)
		require.Nil(t, err)
		for it.HasNextPage() {
			p, err := it.NextPage()
			require.Nil(t, err)
			totalRows += p.PositionCount()
		}
	}
	require.False(t, pm.HasNext())
	require.Equal(t, 2, loaders)
	require.Equal(t, 4, totalRows)

	pages, err := datasource.LoadAll(source, parser)
	require.Nil(t, err)
	require.Len(t, pages, 3)
	r, err := row.CreateLazyRow(colTypes, pages[0], 1)
	require.Nil(t, err)
	name, err := r.Get(1)
	require.Nil(t, err)
	require.Nil(t, name)
}

func TestFileDataSourceErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := CreateDataSource(filepath.Join(dir, "*.jsonl"), colNames, colTypes).Analyze()
	require.NotNil(t, err)

	writeFile(t, dir, "bad.jsonl", "{\"id\": \"one\"}\n")
	_, err = datasource.LoadAll(CreateDataSource(filepath.Join(dir, "*.jsonl"), colNames, colTypes), jsonl.CreateParser(&jsonl.ParserConf{}))
	require.NotNil(t, err)
}
