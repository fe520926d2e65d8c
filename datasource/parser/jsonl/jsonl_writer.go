package jsonl

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-sif/lazyrow"
	errors "github.com/go-sif/lazyrow/errors"
	"github.com/go-sif/lazyrow/row"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WritePage writes every position of a Page as a line of JSON. Column names containing
// dots produce nested objects, mirroring the gjson paths accepted by Parser. Nulls are
// written as JSON null. Each position is read through a LazyRow.
func WritePage(w io.Writer, colNames []string, colTypes []lazyrow.ColumnType, p lazyrow.Page) error {
	if len(colNames) != len(colTypes) {
		return errors.InvalidArgumentError{Msg: "column names and types must have the same length"}
	}
	enc := json.NewEncoder(w)
	for i := 0; i < p.PositionCount(); i++ {
		view, err := row.CreateLazyRow(colTypes, p, i)
		if err != nil {
			return err
		}
		obj := make(map[string]interface{}, len(colNames))
		for c, colName := range colNames {
			v, err := view.Get(c)
			if err != nil {
				return fmt.Errorf("position %d, column %s: %w", i, colName, err)
			}
			if err := setPath(obj, strings.Split(colName, "."), v); err != nil {
				return err
			}
		}
		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("position %d: %w", i, err)
		}
	}
	return nil
}

func setPath(obj map[string]interface{}, path []string, v interface{}) error {
	if len(path) == 1 {
		obj[path[0]] = v
		return nil
	}
	child, ok := obj[path[0]]
	if !ok {
		child = make(map[string]interface{})
		obj[path[0]] = child
	}
	childObj, ok := child.(map[string]interface{})
	if !ok {
		return fmt.Errorf("key component %s holds both a value and a sub-object", path[0])
	}
	return setPath(childObj, path[1:], v)
}
