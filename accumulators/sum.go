package accumulators

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-sif/lazyrow"
)

// Adder returns a new Sum Accumulator over the numeric field at channel
func Adder(channel int) func() lazyrow.Accumulator {
	return func() lazyrow.Accumulator {
		return &Sum{channel: channel}
	}
}

// Sum sums a numeric field of records. Null values are skipped, and only the summed
// field is read from each row.
type Sum struct {
	channel int
	sum     float64
}

// GetSum returns the row Sum from this Accumulator
func (a *Sum) GetSum() float64 {
	return a.sum
}

// Accumulate adds a row to this Accumulator
func (a *Sum) Accumulate(row lazyrow.RowView) error {
	v, err := row.Get(a.channel)
	if err != nil {
		return err
	}
	switch v := v.(type) {
	case nil:
	case int8:
		a.sum += float64(v)
	case int16:
		a.sum += float64(v)
	case int32:
		a.sum += float64(v)
	case int64:
		a.sum += float64(v)
	case float32:
		a.sum += float64(v)
	case float64:
		a.sum += v
	default:
		return fmt.Errorf("Sum Accumulator cannot sum field %d of type %T", a.channel, v)
	}
	return nil
}

// Merge merges another Accumulator into this one
func (a *Sum) Merge(o lazyrow.Accumulator) error {
	ca, ok := o.(*Sum)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Sum Accumulator")
	}
	a.sum += ca.sum
	return nil
}

// ToBytes serializes this Accumulator
func (a *Sum) ToBytes() ([]byte, error) {
	buff := make([]byte, 8)
	binary.LittleEndian.PutUint64(buff, math.Float64bits(a.sum))
	return buff, nil
}

// FromBytes produce a new Accumulator from serialized data
func (a *Sum) FromBytes(buff []byte) (lazyrow.Accumulator, error) {
	if len(buff) != 8 {
		return nil, fmt.Errorf("serialized Sum Accumulator must be 8 bytes, was %d", len(buff))
	}
	return &Sum{channel: a.channel, sum: math.Float64frombits(binary.LittleEndian.Uint64(buff))}, nil
}
