package page

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/go-sif/lazyrow"
	errors "github.com/go-sif/lazyrow/errors"
)

// ToBytes serializes a Page. ColumnTypes are not included; they must be supplied to FromBytes.
//
// Layout: uvarint channel count, uvarint position count, then per channel the meta byte of
// every position followed by either the fixed-width data area or, for variable-length
// channels, a uvarint length and the bytes of each position.
func ToBytes(p lazyrow.Page) []byte {
	buf := new(bytes.Buffer)
	writeUvarint(buf, uint64(p.ChannelCount()))
	writeUvarint(buf, uint64(p.PositionCount()))
	for c := 0; c < p.ChannelCount(); c++ {
		block := p.Block(c)
		// fast path for our own blocks
		if cb, ok := block.(*columnBlock); ok {
			buf.Write(cb.meta)
			if cb.variable {
				for _, v := range cb.varData {
					writeUvarint(buf, uint64(len(v)))
					buf.Write(v)
				}
			} else {
				buf.Write(cb.data)
			}
			continue
		}
		for i := 0; i < p.PositionCount(); i++ {
			if block.IsNull(i) {
				buf.WriteByte(colValueIsNilFlag)
			} else {
				buf.WriteByte(0)
			}
		}
		for i := 0; i < p.PositionCount(); i++ {
			writeUvarint(buf, uint64(len(block.Value(i))))
			buf.Write(block.Value(i))
		}
	}
	return buf.Bytes()
}

// FromBytes deserializes a Page produced by ToBytes. Foreign Blocks are always written in
// variable-length layout, so they can only be read back with variable-length types.
func FromBytes(buf []byte, types []lazyrow.ColumnType) (*Columnar, error) {
	r := bytes.NewReader(buf)
	channels, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read channel count: %w", err)
	}
	if int(channels) != len(types) {
		return nil, errors.IncompatibleRowError{Expected: len(types), Actual: int(channels)}
	}
	positions, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read position count: %w", err)
	}
	// every position holds at least one meta byte per channel
	if positions > math.MaxInt32 || (channels > 0 && positions > uint64(r.Len())) {
		return nil, fmt.Errorf("position count %d exceeds remaining page data (%d bytes)", positions, r.Len())
	}
	numPositions := int(positions)
	p := &Columnar{
		id:            newID(),
		types:         types,
		positionCount: numPositions,
		blocks:        make([]*columnBlock, len(types)),
	}
	for c, colType := range types {
		block := newColumnBlock(colType, 0)
		block.meta = make([]byte, numPositions)
		if _, err := io.ReadFull(r, block.meta); err != nil {
			return nil, fmt.Errorf("unable to read meta for channel %d: %w", c, err)
		}
		if block.variable {
			block.varData = make([][]byte, numPositions)
			for i := 0; i < numPositions; i++ {
				length, err := binary.ReadUvarint(r)
				if err != nil {
					return nil, fmt.Errorf("unable to read value length for channel %d: %w", c, err)
				}
				if length > uint64(r.Len()) {
					return nil, fmt.Errorf("value length %d for channel %d exceeds remaining page data (%d bytes)", length, c, r.Len())
				}
				v := make([]byte, length)
				if _, err := io.ReadFull(r, v); err != nil {
					return nil, fmt.Errorf("unable to read value for channel %d: %w", c, err)
				}
				block.varData[i] = v
			}
		} else {
			if uint64(numPositions)*uint64(block.width) > uint64(r.Len()) {
				return nil, fmt.Errorf("data for channel %d exceeds remaining page data (%d bytes)", c, r.Len())
			}
			block.data = make([]byte, numPositions*block.width)
			if _, err := io.ReadFull(r, block.data); err != nil {
				return nil, fmt.Errorf("unable to read data for channel %d: %w", c, err)
			}
		}
		p.blocks[c] = block
	}
	if r.Len() > 0 {
		return nil, fmt.Errorf("%d trailing bytes after page data", r.Len())
	}
	return p, nil
}

func writeUvarint(buf *bytes.Buffer, v uint64) {
	var scratch [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(scratch[:], v)
	buf.Write(scratch[:n])
}
