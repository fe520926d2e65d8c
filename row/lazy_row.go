package row

import (
	"fmt"
	"strings"

	"github.com/go-sif/lazyrow"
	"github.com/go-sif/lazyrow/codec"
	errors "github.com/go-sif/lazyrow/errors"
)

// LazyRow is a read-only view of a single position within a Page. Each field is
// decoded from its Block the first time it is requested, then cached for the
// lifetime of the LazyRow. Fields which are never requested are never decoded.
//
// A LazyRow borrows its Page: the Page must not be modified while the LazyRow is in
// use. A LazyRow is not safe for concurrent use; build one per goroutine instead.
type LazyRow struct {
	types    []lazyrow.ColumnType
	page     lazyrow.Page
	position int
	extract  lazyrow.ValueExtractor
	values   []interface{}
	present  []bool // present[i] is true iff values[i] has been decoded, even if it decoded to nil
}

// CreateLazyRow builds a LazyRow over position within page, decoding values with codec.Decode
func CreateLazyRow(types []lazyrow.ColumnType, page lazyrow.Page, position int) (*LazyRow, error) {
	return CreateLazyRowWithExtractor(types, page, position, codec.Decode)
}

// CreateLazyRowWithExtractor builds a LazyRow over position within page, decoding values with extract
func CreateLazyRowWithExtractor(types []lazyrow.ColumnType, page lazyrow.Page, position int, extract lazyrow.ValueExtractor) (*LazyRow, error) {
	if types == nil {
		return nil, errors.InvalidArgumentError{Msg: "types is nil"}
	}
	if page == nil {
		return nil, errors.InvalidArgumentError{Msg: "page is nil"}
	}
	if extract == nil {
		return nil, errors.InvalidArgumentError{Msg: "extractor is nil"}
	}
	if len(types) != page.ChannelCount() {
		return nil, errors.InvalidArgumentError{Msg: fmt.Sprintf("mismatched types for page: %d types, %d channels", len(types), page.ChannelCount())}
	}
	if position < 0 || position >= page.PositionCount() {
		return nil, errors.InvalidArgumentError{Msg: fmt.Sprintf("page position %d out of range [0, %d)", position, page.PositionCount())}
	}
	return &LazyRow{
		types:    types,
		page:     page,
		position: position,
		extract:  extract,
		values:   make([]interface{}, len(types)),
		present:  make([]bool, len(types)),
	}, nil
}

// Size returns the number of fields in this LazyRow
func (r *LazyRow) Size() int {
	return r.page.ChannelCount()
}

// Position returns the position within the Page which this LazyRow represents
func (r *LazyRow) Position() int {
	return r.position
}

// Get returns the value of field i, decoding it if it hasn't been requested before.
// A failed decode is not cached, and leaves previously decoded fields untouched.
func (r *LazyRow) Get(i int) (interface{}, error) {
	if i < 0 || i >= len(r.types) {
		return nil, errors.IndexOutOfRangeError{Index: i, Size: len(r.types)}
	}
	if r.present[i] {
		return r.values[i], nil
	}
	value, err := r.extract(r.page.Block(i), r.position, r.types[i])
	if err != nil {
		return nil, err
	}
	r.values[i] = value
	r.present[i] = true
	return value, nil
}

// Set always fails, since a LazyRow is read-only
func (r *LazyRow) Set(i int, value interface{}) error {
	return errors.UnsupportedOperationError{Op: "Set"}
}

// ToString returns a string representation of this LazyRow. This decodes every field.
func (r *LazyRow) ToString() string {
	return rowToString(r, r.types)
}

func rowToString(r lazyrow.RowView, types []lazyrow.ColumnType) string {
	var res strings.Builder
	fmt.Fprint(&res, "[")
	for i, colType := range types {
		if i > 0 {
			fmt.Fprint(&res, ", ")
		}
		v, err := r.Get(i)
		if err != nil {
			fmt.Fprintf(&res, "<%s>", err)
		} else if v == nil {
			fmt.Fprint(&res, "nil")
		} else {
			fmt.Fprint(&res, colType.ToString(v))
		}
	}
	fmt.Fprint(&res, "]")
	return res.String()
}
