package file

import (
	"fmt"
	"path/filepath"

	"github.com/go-sif/lazyrow"
)

// DataSource is a set of files containing data which will be parsed into Pages
type DataSource struct {
	glob     string
	colNames []string
	colTypes []lazyrow.ColumnType
}

// CreateDataSource is a factory for DataSources
func CreateDataSource(glob string, colNames []string, colTypes []lazyrow.ColumnType) *DataSource {
	return &DataSource{glob: glob, colNames: colNames, colTypes: colTypes}
}

// Analyze returns a PageMap, describing how the source files will be divided into Pages
func (fs *DataSource) Analyze() (lazyrow.PageMap, error) {
	matches, err := filepath.Glob(fs.glob)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("glob %s produced 0 files", fs.glob)
	}
	return &PageMap{
		files:  matches,
		source: fs,
	}, nil
}

// ColumnNames returns the names of the columns parsed from each file
func (fs *DataSource) ColumnNames() []string {
	return fs.colNames
}

// ColumnTypes returns the types of the columns parsed from each file
func (fs *DataSource) ColumnTypes() []lazyrow.ColumnType {
	return fs.colTypes
}
