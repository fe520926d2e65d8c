package codec

import (
	"math"
	"testing"
	"time"

	"github.com/go-sif/lazyrow"
	errors "github.com/go-sif/lazyrow/errors"
	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
)

// rawBlock is a Block over pre-encoded values. A nil value is null.
type rawBlock [][]byte

func (b rawBlock) PositionCount() int { return len(b) }
func (b rawBlock) IsNull(position int) bool { return b[position] == nil }
func (b rawBlock) Value(position int) []byte { return b[position] }

func roundTrip(t *testing.T, colType lazyrow.ColumnType, v interface{}) interface{} {
	raw, err := Encode(colType, v)
	require.Nil(t, err)
	require.NotNil(t, raw)
	if !lazyrow.IsVariableLength(colType) {
		require.Len(t, raw, colType.Size())
	}
	res, err := Decode(rawBlock{raw}, 0, colType)
	require.Nil(t, err)
	return res
}

func TestRoundTrip(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	tests := []struct {
		colType lazyrow.ColumnType
		value   interface{}
	}{
		{&lazyrow.BoolColumnType{}, true},
		{&lazyrow.BoolColumnType{}, false},
		{&lazyrow.Int8ColumnType{}, int8(math.MinInt8)},
		{&lazyrow.Int16ColumnType{}, int16(math.MaxInt16)},
		{&lazyrow.Int32ColumnType{}, int32(-42)},
		{&lazyrow.Int64ColumnType{}, int64(math.MinInt64)},
		{&lazyrow.Float32ColumnType{}, float32(3.25)},
		{&lazyrow.Float64ColumnType{}, math.Inf(-1)},
		{&lazyrow.UUIDColumnType{}, id},
		{&lazyrow.FixedBytesColumnType{Length: 3}, []byte{1, 2, 3}},
		{&lazyrow.VarStringColumnType{}, "hello, world"},
		{&lazyrow.VarStringColumnType{}, ""},
		{&lazyrow.VarBytesColumnType{}, []byte{9, 8, 7, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.colType.Name(), func(t *testing.T) {
			require.Equal(t, tt.value, roundTrip(t, tt.colType, tt.value))
		})
	}
}

func TestTimestampTruncatesToMicros(t *testing.T) {
	loc := time.FixedZone("test", 3600)
	ts := time.Date(1969, 12, 31, 23, 59, 59, 123456789, loc)
	res := roundTrip(t, &lazyrow.TimestampColumnType{}, ts)
	decoded, ok := res.(time.Time)
	require.True(t, ok)
	require.Equal(t, time.UTC, decoded.Location())
	require.True(t, ts.Truncate(time.Microsecond).Equal(decoded))
}

func TestDecodeNull(t *testing.T) {
	v, err := Decode(rawBlock{nil}, 0, &lazyrow.Int32ColumnType{})
	require.Nil(t, err)
	require.Nil(t, v)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode(rawBlock{[]byte{1, 2}}, 0, &lazyrow.Int32ColumnType{})
	require.Equal(t, errors.MalformedValueError{Type: "integer", Expected: 4, Actual: 2}, err)
}

func TestEncodeTypeMismatch(t *testing.T) {
	_, err := Encode(&lazyrow.Int32ColumnType{}, int64(1))
	require.Equal(t, errors.TypeMismatchError{Expected: "integer", Actual: "int64"}, err)
	_, err = Encode(&lazyrow.FixedBytesColumnType{Length: 4}, []byte{1})
	require.IsType(t, errors.TypeMismatchError{}, err)
	_, err = Encode(&lazyrow.VarStringColumnType{}, []byte("x"))
	require.IsType(t, errors.TypeMismatchError{}, err)
	_, err = Encode(&lazyrow.Int32ColumnType{}, nil)
	require.IsType(t, errors.NilValueError{}, err)
}

func TestCheck(t *testing.T) {
	require.Nil(t, Check(&lazyrow.Float64ColumnType{}, nil))
	require.Nil(t, Check(&lazyrow.Float64ColumnType{}, 1.0))
	require.NotNil(t, Check(&lazyrow.Float64ColumnType{}, float32(1.0)))
	require.Nil(t, Check(&lazyrow.TimestampColumnType{}, time.Now()))
}
