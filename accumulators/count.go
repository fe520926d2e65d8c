package accumulators

import (
	"encoding/binary"
	"fmt"

	"github.com/go-sif/lazyrow"
)

// Counter returns a factory for Count Accumulators over the field at channel
func Counter(channel int) func() lazyrow.Accumulator {
	return func() lazyrow.Accumulator {
		return &Count{channel: channel}
	}
}

// Count counts rows, and the rows in which one field is non-null. Only that field
// is read from each row.
type Count struct {
	channel int
	rows    uint64
	nonNull uint64
}

// GetCount returns the number of rows seen by this Accumulator
func (a *Count) GetCount() uint64 {
	return a.rows
}

// GetNonNullCount returns the number of rows in which the counted field was non-null
func (a *Count) GetNonNullCount() uint64 {
	return a.nonNull
}

// Accumulate reads the counted field of a row
func (a *Count) Accumulate(row lazyrow.RowView) error {
	v, err := row.Get(a.channel)
	if err != nil {
		return err
	}
	a.rows++
	if v != nil {
		a.nonNull++
	}
	return nil
}

// Merge adds the counts of another Count over the same channel
func (a *Count) Merge(o lazyrow.Accumulator) error {
	other, ok := o.(*Count)
	if !ok {
		return fmt.Errorf("cannot merge %T into a Count Accumulator", o)
	} else if other.channel != a.channel {
		return fmt.Errorf("cannot merge a Count over channel %d into a Count over channel %d", other.channel, a.channel)
	}
	a.rows += other.rows
	a.nonNull += other.nonNull
	return nil
}

// ToBytes writes both counts as little-endian uint64s
func (a *Count) ToBytes() ([]byte, error) {
	buff := make([]byte, 16)
	binary.LittleEndian.PutUint64(buff, a.rows)
	binary.LittleEndian.PutUint64(buff[8:], a.nonNull)
	return buff, nil
}

// FromBytes produces a new Count over the same channel from serialized counts
func (a *Count) FromBytes(buff []byte) (lazyrow.Accumulator, error) {
	if len(buff) != 16 {
		return nil, fmt.Errorf("serialized Count Accumulator must be 16 bytes, was %d", len(buff))
	}
	rows := binary.LittleEndian.Uint64(buff)
	nonNull := binary.LittleEndian.Uint64(buff[8:])
	if nonNull > rows {
		return nil, fmt.Errorf("serialized Count Accumulator has %d non-null values in %d rows", nonNull, rows)
	}
	return &Count{channel: a.channel, rows: rows, nonNull: nonNull}, nil
}
