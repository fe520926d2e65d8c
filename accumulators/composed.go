package accumulators

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-sif/lazyrow"
	"github.com/hashicorp/go-multierror"
)

// Compose returns a factory for Composed Accumulators, each holding one fresh
// Accumulator per factory. Composed Accumulators share a single RowView per row, so
// a field read by several of them (e.g. a Count and a Sum over the same channel) is
// decoded once when the row is a LazyRow.
func Compose(factories ...func() lazyrow.Accumulator) func() lazyrow.Accumulator {
	return func() lazyrow.Accumulator {
		parts := make([]lazyrow.Accumulator, len(factories))
		for i, newAcc := range factories {
			parts[i] = newAcc()
		}
		return &Composed{parts: parts}
	}
}

// Composed feeds every row to several Accumulators
type Composed struct {
	parts []lazyrow.Accumulator
}

// GetResults returns the contained Accumulators, in the order of their factories
func (c *Composed) GetResults() []lazyrow.Accumulator {
	return c.parts
}

// Accumulate offers a row to every contained Accumulator. A failure in one does not
// stop the others; all failures are returned together.
func (c *Composed) Accumulate(row lazyrow.RowView) error {
	var multierr *multierror.Error
	for i, part := range c.parts {
		if err := part.Accumulate(row); err != nil {
			multierr = multierror.Append(multierr, fmt.Errorf("accumulator %d: %w", i, err))
		}
	}
	return multierr.ErrorOrNil()
}

// Merge merges each Accumulator of another Composed into its counterpart here
func (c *Composed) Merge(o lazyrow.Accumulator) error {
	other, ok := o.(*Composed)
	if !ok {
		return fmt.Errorf("cannot merge %T into a Composed Accumulator", o)
	} else if len(other.parts) != len(c.parts) {
		return fmt.Errorf("cannot merge a Composed of %d Accumulators into one of %d", len(other.parts), len(c.parts))
	}
	for i, part := range c.parts {
		if err := part.Merge(other.parts[i]); err != nil {
			return fmt.Errorf("accumulator %d: %w", i, err)
		}
	}
	return nil
}

// ToBytes writes a uvarint count of Accumulators, then each serialized Accumulator
// prefixed by its uvarint length
func (c *Composed) ToBytes() ([]byte, error) {
	buf := new(bytes.Buffer)
	var scratch [binary.MaxVarintLen64]byte
	buf.Write(scratch[:binary.PutUvarint(scratch[:], uint64(len(c.parts)))])
	for i, part := range c.parts {
		serialized, err := part.ToBytes()
		if err != nil {
			return nil, fmt.Errorf("accumulator %d: %w", i, err)
		}
		buf.Write(scratch[:binary.PutUvarint(scratch[:], uint64(len(serialized)))])
		buf.Write(serialized)
	}
	return buf.Bytes(), nil
}

// FromBytes produces a new Composed from serialized data, using the contained
// Accumulators as templates
func (c *Composed) FromBytes(buff []byte) (lazyrow.Accumulator, error) {
	r := bytes.NewReader(buff)
	count, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read Accumulator count: %w", err)
	} else if count != uint64(len(c.parts)) {
		return nil, fmt.Errorf("serialized Composed holds %d Accumulators, expected %d", count, len(c.parts))
	}
	parts := make([]lazyrow.Accumulator, len(c.parts))
	for i, template := range c.parts {
		length, err := binary.ReadUvarint(r)
		if err != nil {
			return nil, fmt.Errorf("accumulator %d: %w", i, err)
		} else if length > uint64(r.Len()) {
			return nil, fmt.Errorf("accumulator %d: length %d exceeds remaining data", i, length)
		}
		serialized := make([]byte, length)
		if _, err := io.ReadFull(r, serialized); err != nil {
			return nil, fmt.Errorf("accumulator %d: %w", i, err)
		}
		if parts[i], err = template.FromBytes(serialized); err != nil {
			return nil, fmt.Errorf("accumulator %d: %w", i, err)
		}
	}
	if r.Len() > 0 {
		return nil, fmt.Errorf("%d trailing bytes after Composed Accumulator", r.Len())
	}
	return &Composed{parts: parts}, nil
}
