package lazyrow

import (
	"fmt"

	errors "github.com/go-sif/lazyrow/errors"
)

// VarColumnType is an interface which is implemented to define supported variable-length column types. Size() for VarColumnTypes should always return 0.
// Custom VarColumnTypes control their own serialized representation within a Block.
type VarColumnType interface {
	ColumnType
	Serialize(v interface{}) ([]byte, error) // Defines how this type is serialized
	Deserialize([]byte) (interface{}, error) // Defines how this type is deserialized
}

// VarStringColumnType is a column type which stores a variable-length UTF-8 string value
type VarStringColumnType struct{}

// Name of a VarStringColumnType
func (b *VarStringColumnType) Name() string { return "varchar" }

// Size in bytes of the fixed-length portion of a VarStringColumn
func (b *VarStringColumnType) Size() int {
	return 0
}

// ToString produces a string representation of a value of a VarStringColumnType value
func (b *VarStringColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("\"%s\"", v.(string))
}

// Serialize serializes a VarStringColumnType value to binary data
func (b *VarStringColumnType) Serialize(v interface{}) ([]byte, error) {
	s, ok := v.(string)
	if !ok {
		return nil, errors.TypeMismatchError{Expected: b.Name(), Actual: fmt.Sprintf("%T", v)}
	}
	return []byte(s), nil
}

// Deserialize deserializes a VarStringColumnType value from binary data
func (b *VarStringColumnType) Deserialize(ser []byte) (interface{}, error) {
	return string(ser), nil
}

// VarBytesColumnType is a column type which stores variable-length byte arrays
type VarBytesColumnType struct{}

// Name of a VarBytesColumnType
func (b *VarBytesColumnType) Name() string { return "varbinary" }

// Size in bytes of the fixed-length portion of a VarBytesColumn
func (b *VarBytesColumnType) Size() int {
	return 0
}

// ToString produces a string representation of a value of a VarBytesColumnType value
func (b *VarBytesColumnType) ToString(v interface{}) string {
	return bytesToString(v.([]byte))
}

// Serialize serializes a VarBytesColumnType value to binary data
func (b *VarBytesColumnType) Serialize(v interface{}) ([]byte, error) {
	bytes, ok := v.([]byte)
	if !ok {
		return nil, errors.TypeMismatchError{Expected: b.Name(), Actual: fmt.Sprintf("%T", v)}
	}
	return bytes, nil
}

// Deserialize deserializes a VarBytesColumnType value from binary data. The result is a copy,
// so that callers may not modify the underlying Block.
func (b *VarBytesColumnType) Deserialize(ser []byte) (interface{}, error) {
	res := make([]byte, len(ser))
	copy(res, ser)
	return res, nil
}
