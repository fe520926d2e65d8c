package row

import (
	"fmt"

	"github.com/go-sif/lazyrow"
	"github.com/go-sif/lazyrow/codec"
	errors "github.com/go-sif/lazyrow/errors"
)

// Record is an eagerly-materialized, mutable row. It is interchangeable with a
// LazyRow wherever a lazyrow.RowView is expected.
type Record struct {
	types  []lazyrow.ColumnType
	values []interface{}
}

// CreateRecord builds a Record in which every field is nil
func CreateRecord(types []lazyrow.ColumnType) *Record {
	return &Record{types: types, values: make([]interface{}, len(types))}
}

// MaterializeRecord decodes every field at position within page into a new Record
func MaterializeRecord(types []lazyrow.ColumnType, page lazyrow.Page, position int) (*Record, error) {
	view, err := CreateLazyRow(types, page, position)
	if err != nil {
		return nil, err
	}
	return CopyRecord(types, view)
}

// CopyRecord copies every field of a RowView into a new Record
func CopyRecord(types []lazyrow.ColumnType, view lazyrow.RowView) (*Record, error) {
	if view.Size() != len(types) {
		return nil, errors.InvalidArgumentError{Msg: fmt.Sprintf("mismatched types for row: %d types, %d fields", len(types), view.Size())}
	}
	rec := CreateRecord(types)
	for i := range types {
		v, err := view.Get(i)
		if err != nil {
			return nil, err
		}
		if err := rec.Set(i, v); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// Size returns the number of fields in this Record
func (r *Record) Size() int {
	return len(r.values)
}

// Get returns the value of field i
func (r *Record) Get(i int) (interface{}, error) {
	if i < 0 || i >= len(r.values) {
		return nil, errors.IndexOutOfRangeError{Index: i, Size: len(r.values)}
	}
	return r.values[i], nil
}

// Set replaces the value of field i, which must be nil or match the field's ColumnType
func (r *Record) Set(i int, value interface{}) error {
	if i < 0 || i >= len(r.values) {
		return errors.IndexOutOfRangeError{Index: i, Size: len(r.values)}
	}
	if err := codec.Check(r.types[i], value); err != nil {
		return err
	}
	r.values[i] = value
	return nil
}

// ToString returns a string representation of this Record
func (r *Record) ToString() string {
	return rowToString(r, r.types)
}
