package lazyrow

import (
	"fmt"
	"strings"
	"time"
)

// IsVariableLength returns true iff colType is a VarColumnType
func IsVariableLength(colType ColumnType) (isVariableLength bool) {
	_, isVariableLength = colType.(VarColumnType)
	return
}

// ColumnType is an interface which is implemented to define the logical type of a channel.
// lazyrow provides a variety of built-in fixed-width types in this package.
type ColumnType interface {
	Name() string                  // returns the name of this logical type, for errors and logging
	Size() int                     // returns size in bytes of a value of this type. 0 for variable-length types
	ToString(v interface{}) string // produces a string representation of a value of this type
}

// BoolColumnType is a column type which stores a boolean value
type BoolColumnType struct{}

// Name of a BoolColumnType
func (b *BoolColumnType) Name() string { return "boolean" }

// Size in bytes of a BoolColumn
func (b *BoolColumnType) Size() int { return 1 }

// ToString produces a string representation of a value of a BoolColumnType value
func (b *BoolColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%t", v.(bool))
}

// Int8ColumnType is a column type which stores an int8 value
type Int8ColumnType struct{}

// Name of an Int8ColumnType
func (b *Int8ColumnType) Name() string { return "tinyint" }

// Size in bytes of an Int8Column
func (b *Int8ColumnType) Size() int { return 1 }

// ToString produces a string representation of a value of an Int8ColumnType value
func (b *Int8ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int8))
}

// Int16ColumnType is a column type which stores an int16 value
type Int16ColumnType struct{}

// Name of an Int16ColumnType
func (b *Int16ColumnType) Name() string { return "smallint" }

// Size in bytes of an Int16Column
func (b *Int16ColumnType) Size() int { return 2 }

// ToString produces a string representation of a value of an Int16ColumnType value
func (b *Int16ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int16))
}

// Int32ColumnType is a column type which stores an int32 value
type Int32ColumnType struct{}

// Name of an Int32ColumnType
func (b *Int32ColumnType) Name() string { return "integer" }

// Size in bytes of an Int32Column
func (b *Int32ColumnType) Size() int { return 4 }

// ToString produces a string representation of a value of an Int32ColumnType value
func (b *Int32ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int32))
}

// Int64ColumnType is a column type which stores an int64 value
type Int64ColumnType struct{}

// Name of an Int64ColumnType
func (b *Int64ColumnType) Name() string { return "bigint" }

// Size in bytes of an Int64Column
func (b *Int64ColumnType) Size() int { return 8 }

// ToString produces a string representation of a value of an Int64ColumnType value
func (b *Int64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int64))
}

// Float32ColumnType is a column type which stores a float32 value
type Float32ColumnType struct{}

// Name of a Float32ColumnType
func (b *Float32ColumnType) Name() string { return "real" }

// Size in bytes of a Float32Column
func (b *Float32ColumnType) Size() int { return 4 }

// ToString produces a string representation of a value of a Float32ColumnType value
func (b *Float32ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%f", v.(float32))
}

// Float64ColumnType is a column type which stores a float64 value
type Float64ColumnType struct{}

// Name of a Float64ColumnType
func (b *Float64ColumnType) Name() string { return "double" }

// Size in bytes of a Float64Column
func (b *Float64ColumnType) Size() int { return 8 }

// ToString produces a string representation of a value of a Float64ColumnType value
func (b *Float64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%f", v.(float64))
}

// TimestampColumnType is a column type which stores a UTC time.Time with microsecond precision.
// Sub-microsecond precision is truncated when a value is stored.
type TimestampColumnType struct{}

// Name of a TimestampColumnType
func (b *TimestampColumnType) Name() string { return "timestamp" }

// Size in bytes of a TimestampColumn
func (b *TimestampColumnType) Size() int { return 8 }

// ToString produces a string representation of a value of a TimestampColumnType value
func (b *TimestampColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("\"%s\"", v.(time.Time).Format(time.RFC3339Nano))
}

// UUIDColumnType is a column type which stores a 16-byte UUID
type UUIDColumnType struct{}

// Name of a UUIDColumnType
func (b *UUIDColumnType) Name() string { return "uuid" }

// Size in bytes of a UUIDColumn
func (b *UUIDColumnType) Size() int { return 16 }

// ToString produces a string representation of a value of a UUIDColumnType value
func (b *UUIDColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("\"%s\"", v)
}

// FixedBytesColumnType is a column type which stores exactly Length bytes. Useful for hashes, etc.
type FixedBytesColumnType struct {
	Length int
}

// Name of a FixedBytesColumnType
func (b *FixedBytesColumnType) Name() string { return fmt.Sprintf("fixed(%d)", b.Length) }

// Size in bytes of a FixedBytesColumn
func (b *FixedBytesColumnType) Size() int { return b.Length }

// ToString produces a string representation of a value of a FixedBytesColumnType value
func (b *FixedBytesColumnType) ToString(v interface{}) string {
	return bytesToString(v.([]byte))
}

// bytesToString prints at most the first few bytes of a byte slice
func bytesToString(bytes []byte) string {
	var res strings.Builder
	fmt.Fprint(&res, "[")
	for i, v := range bytes {
		// don't print more than 5 entries
		if i > 5 {
			fmt.Fprintf(&res, "... %d more", len(bytes)-i)
			break
		}
		fmt.Fprintf(&res, "%x", v)
	}
	fmt.Fprint(&res, "]")
	return res.String()
}
