// Package page provides an in-memory, columnar implementation of lazyrow.Page, along with a
// Builder for producing Pages row-by-row and compressors for storing or transferring them.
package page

import (
	"github.com/go-sif/lazyrow"
	uuid "github.com/gofrs/uuid"
)

const (
	colValueIsNilFlag = 1 << iota
)

// Columnar is lazyrow's in-memory implementation of Page. Each channel is stored
// contiguously in its own block.
type Columnar struct {
	id            string
	types         []lazyrow.ColumnType
	positionCount int
	blocks        []*columnBlock
}

// columnBlock holds one channel. Fixed-width values live in data, at width bytes
// per position. Variable-length values live in varData, one slot per position.
type columnBlock struct {
	width    int
	variable bool
	meta     []byte
	data     []byte
	varData  [][]byte
}

func newID() string {
	id, err := uuid.NewV4()
	if err != nil {
		// the source of randomness is broken; nothing sensible can be done
		panic(err)
	}
	return id.String()
}

func newColumnBlock(colType lazyrow.ColumnType, capacity int) *columnBlock {
	b := &columnBlock{
		width:    colType.Size(),
		variable: lazyrow.IsVariableLength(colType),
		meta:     make([]byte, 0, capacity),
	}
	if b.variable {
		b.varData = make([][]byte, 0, capacity)
	} else {
		b.data = make([]byte, 0, capacity*b.width)
	}
	return b
}

// ID retrieves the ID of this Page
func (p *Columnar) ID() string {
	return p.id
}

// Types returns the ColumnTypes of the channels of this Page
func (p *Columnar) Types() []lazyrow.ColumnType {
	return p.types
}

// ChannelCount returns the number of channels in this Page
func (p *Columnar) ChannelCount() int {
	return len(p.blocks)
}

// PositionCount returns the number of positions in this Page
func (p *Columnar) PositionCount() int {
	return p.positionCount
}

// Block returns the data for a channel
func (p *Columnar) Block(channel int) lazyrow.Block {
	return p.blocks[channel]
}

// PositionCount returns the number of positions in this block
func (b *columnBlock) PositionCount() int {
	return len(b.meta)
}

// IsNull returns true iff the value at position is null
func (b *columnBlock) IsNull(position int) bool {
	return b.meta[position]&colValueIsNilFlag > 0
}

// Value returns the raw value at position
func (b *columnBlock) Value(position int) []byte {
	if b.variable {
		return b.varData[position]
	}
	return b.data[position*b.width : (position+1)*b.width]
}

func (b *columnBlock) appendValue(raw []byte) {
	if raw == nil {
		b.meta = append(b.meta, colValueIsNilFlag)
	} else {
		b.meta = append(b.meta, 0)
	}
	if b.variable {
		b.varData = append(b.varData, raw)
		return
	}
	if raw == nil {
		raw = make([]byte, b.width)
	}
	b.data = append(b.data, raw...)
}
