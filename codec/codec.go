// Package codec converts between the raw values stored in a lazyrow.Block and Go values,
// according to the logical lazyrow.ColumnType of the Block's channel. Decode is the default
// lazyrow.ValueExtractor.
package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/go-sif/lazyrow"
	errors "github.com/go-sif/lazyrow/errors"
	uuid "github.com/gofrs/uuid"
)

// Decode returns the Go value stored at position within block. Null positions decode to nil.
//
//	BoolColumnType       -> bool
//	Int8..Int64          -> int8..int64
//	Float32, Float64     -> float32, float64
//	TimestampColumnType  -> time.Time (UTC)
//	UUIDColumnType       -> uuid.UUID
//	FixedBytesColumnType -> []byte
//	VarColumnType        -> whatever Deserialize produces
func Decode(block lazyrow.Block, position int, colType lazyrow.ColumnType) (interface{}, error) {
	if block.IsNull(position) {
		return nil, nil
	}
	raw := block.Value(position)
	if vt, ok := colType.(lazyrow.VarColumnType); ok {
		return vt.Deserialize(raw)
	}
	if len(raw) != colType.Size() {
		return nil, errors.MalformedValueError{Type: colType.Name(), Expected: colType.Size(), Actual: len(raw)}
	}
	switch colType.(type) {
	case *lazyrow.BoolColumnType:
		return raw[0] > 0, nil
	case *lazyrow.Int8ColumnType:
		return int8(raw[0]), nil
	case *lazyrow.Int16ColumnType:
		return int16(binary.LittleEndian.Uint16(raw)), nil
	case *lazyrow.Int32ColumnType:
		return int32(binary.LittleEndian.Uint32(raw)), nil
	case *lazyrow.Int64ColumnType:
		return int64(binary.LittleEndian.Uint64(raw)), nil
	case *lazyrow.Float32ColumnType:
		return math.Float32frombits(binary.LittleEndian.Uint32(raw)), nil
	case *lazyrow.Float64ColumnType:
		return math.Float64frombits(binary.LittleEndian.Uint64(raw)), nil
	case *lazyrow.TimestampColumnType:
		return time.UnixMicro(int64(binary.LittleEndian.Uint64(raw))).UTC(), nil
	case *lazyrow.UUIDColumnType:
		return uuid.FromBytes(raw)
	case *lazyrow.FixedBytesColumnType:
		res := make([]byte, len(raw))
		copy(res, raw)
		return res, nil
	default:
		return nil, fmt.Errorf("Cannot decode value for unknown column type %s", colType.Name())
	}
}

// Encode produces the raw representation of a non-nil value v for a Block of type colType
func Encode(colType lazyrow.ColumnType, v interface{}) ([]byte, error) {
	if err := Check(colType, v); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, errors.NilValueError{Name: colType.Name()}
	}
	if vt, ok := colType.(lazyrow.VarColumnType); ok {
		return vt.Serialize(v)
	}
	buf := make([]byte, colType.Size())
	switch colType.(type) {
	case *lazyrow.BoolColumnType:
		if v.(bool) {
			buf[0] = 1
		}
	case *lazyrow.Int8ColumnType:
		buf[0] = byte(v.(int8))
	case *lazyrow.Int16ColumnType:
		binary.LittleEndian.PutUint16(buf, uint16(v.(int16)))
	case *lazyrow.Int32ColumnType:
		binary.LittleEndian.PutUint32(buf, uint32(v.(int32)))
	case *lazyrow.Int64ColumnType:
		binary.LittleEndian.PutUint64(buf, uint64(v.(int64)))
	case *lazyrow.Float32ColumnType:
		binary.LittleEndian.PutUint32(buf, math.Float32bits(v.(float32)))
	case *lazyrow.Float64ColumnType:
		binary.LittleEndian.PutUint64(buf, math.Float64bits(v.(float64)))
	case *lazyrow.TimestampColumnType:
		binary.LittleEndian.PutUint64(buf, uint64(v.(time.Time).UnixMicro()))
	case *lazyrow.UUIDColumnType:
		id := v.(uuid.UUID)
		copy(buf, id.Bytes())
	case *lazyrow.FixedBytesColumnType:
		copy(buf, v.([]byte))
	}
	return buf, nil
}

// Check returns an errors.TypeMismatchError if v cannot be stored in a column of type colType.
// nil is acceptable for every type. Custom VarColumnTypes are checked by their Serialize method.
func Check(colType lazyrow.ColumnType, v interface{}) error {
	if v == nil {
		return nil
	}
	ok := true
	switch t := colType.(type) {
	case *lazyrow.BoolColumnType:
		_, ok = v.(bool)
	case *lazyrow.Int8ColumnType:
		_, ok = v.(int8)
	case *lazyrow.Int16ColumnType:
		_, ok = v.(int16)
	case *lazyrow.Int32ColumnType:
		_, ok = v.(int32)
	case *lazyrow.Int64ColumnType:
		_, ok = v.(int64)
	case *lazyrow.Float32ColumnType:
		_, ok = v.(float32)
	case *lazyrow.Float64ColumnType:
		_, ok = v.(float64)
	case *lazyrow.TimestampColumnType:
		_, ok = v.(time.Time)
	case *lazyrow.UUIDColumnType:
		_, ok = v.(uuid.UUID)
	case *lazyrow.FixedBytesColumnType:
		var b []byte
		b, ok = v.([]byte)
		ok = ok && len(b) == t.Length
	case *lazyrow.VarStringColumnType:
		_, ok = v.(string)
	case *lazyrow.VarBytesColumnType:
		_, ok = v.([]byte)
	case lazyrow.VarColumnType:
		return nil
	default:
		return fmt.Errorf("Cannot encode value for unknown column type %s", colType.Name())
	}
	if !ok {
		return errors.TypeMismatchError{Expected: colType.Name(), Actual: fmt.Sprintf("%T", v)}
	}
	return nil
}
