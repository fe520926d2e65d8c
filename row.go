package lazyrow

import (
	"fmt"
	"reflect"
	"strconv"

	errors "github.com/go-sif/lazyrow/errors"
)

// RowView is random, read-only access to the fields of a single logical row.
// Fields are addressed by index, aligned with the channels of the Page the row
// came from. Null fields are returned as nil.
type RowView interface {
	Size() int                      // Size returns the number of fields in this row
	Get(i int) (interface{}, error) // Get returns the value of field i, 0 <= i < Size()
}

// StructLike is a RowView which may also be modified. Read-only implementations
// return an errors.UnsupportedOperationError from Set.
type StructLike interface {
	RowView
	Set(i int, value interface{}) error // Set replaces the value of field i
}

// GetAs retrieves field i of a RowView as a T. The field is decoded according to its
// own ColumnType; T only declares what the caller expects to receive. If the decoded
// value is not a T, GetAs returns an errors.TypeMismatchError. A null value is returned
// as the zero T when T can hold nil (interfaces, pointers, slices, maps); otherwise GetAs
// returns an errors.NilValueError.
func GetAs[T any](r RowView, i int) (T, error) {
	var zero T
	v, err := r.Get(i)
	if err != nil {
		return zero, err
	}
	if v == nil {
		if isNillable(reflect.TypeOf((*T)(nil)).Elem()) {
			return zero, nil
		}
		return zero, errors.NilValueError{Name: strconv.Itoa(i)}
	}
	res, ok := v.(T)
	if !ok {
		return zero, errors.TypeMismatchError{Expected: fmt.Sprintf("%T", zero), Actual: fmt.Sprintf("%T", v)}
	}
	return res, nil
}

func isNillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return true
	default:
		return false
	}
}
