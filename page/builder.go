package page

import (
	"fmt"

	"github.com/go-sif/lazyrow"
	"github.com/go-sif/lazyrow/codec"
	errors "github.com/go-sif/lazyrow/errors"
	"github.com/hashicorp/go-multierror"
)

// DefaultMaxPositions is the maximum number of positions in a Page produced by a Builder, unless configured otherwise
const DefaultMaxPositions = 1024

// Builder accumulates rows into a Columnar Page
type Builder struct {
	types        []lazyrow.ColumnType
	maxPositions int
	page         *Columnar
}

// CreateBuilder creates a new Builder for Pages with the given channel types. A maxPositions <= 0 means DefaultMaxPositions.
func CreateBuilder(types []lazyrow.ColumnType, maxPositions int) *Builder {
	if maxPositions <= 0 {
		maxPositions = DefaultMaxPositions
	}
	b := &Builder{types: types, maxPositions: maxPositions}
	b.reset()
	return b
}

func (b *Builder) reset() {
	blocks := make([]*columnBlock, len(b.types))
	for i, colType := range b.types {
		blocks[i] = newColumnBlock(colType, b.maxPositions)
	}
	b.page = &Columnar{
		id:     newID(),
		types:  b.types,
		blocks: blocks,
	}
}

// MaxPositions returns the maximum number of positions in a Page produced by this Builder
func (b *Builder) MaxPositions() int {
	return b.maxPositions
}

// PositionCount returns the number of rows appended since the last call to Build
func (b *Builder) PositionCount() int {
	return b.page.positionCount
}

// IsFull returns true iff no further rows can be appended before the next call to Build
func (b *Builder) IsFull() bool {
	return b.page.positionCount >= b.maxPositions
}

// AppendRow adds a row to the end of the Page under construction. nil values are
// stored as nulls. If any value cannot be encoded, the row is not appended and every
// encoding failure is reported.
func (b *Builder) AppendRow(values ...interface{}) error {
	if len(values) != len(b.types) {
		return errors.IncompatibleRowError{Expected: len(b.types), Actual: len(values)}
	}
	if b.IsFull() {
		return errors.PageFullError{}
	}
	var multierr *multierror.Error
	encoded := make([][]byte, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		raw, err := codec.Encode(b.types[i], v)
		if err != nil {
			multierr = multierror.Append(multierr, fmt.Errorf("channel %d: %w", i, err))
			continue
		}
		if raw == nil {
			raw = []byte{}
		}
		encoded[i] = raw
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return err
	}
	for i, raw := range encoded {
		b.page.blocks[i].appendValue(raw)
	}
	b.page.positionCount++
	return nil
}

// AppendView copies every field of a RowView into the Page under construction
func (b *Builder) AppendView(view lazyrow.RowView) error {
	values := make([]interface{}, view.Size())
	for i := range values {
		v, err := view.Get(i)
		if err != nil {
			return err
		}
		values[i] = v
	}
	return b.AppendRow(values...)
}

// Build returns the Page under construction and resets this Builder, so that it
// starts a fresh Page. The returned Page is never modified again.
func (b *Builder) Build() *Columnar {
	res := b.page
	b.reset()
	return res
}
