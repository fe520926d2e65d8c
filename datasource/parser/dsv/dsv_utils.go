package dsv

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/go-sif/lazyrow"
	uuid "github.com/gofrs/uuid"
)

// Parses a slice of strings into one value per column
func scanRow(conf *ParserConf, names []string, colTypes []lazyrow.ColumnType, rowStrings []string) ([]interface{}, error) {
	values := make([]interface{}, len(rowStrings))
	for i := 0; i < len(rowStrings); i++ {
		colVal := rowStrings[i]
		// check for a nil value
		if len(colVal) == 0 || colVal == conf.NilValue {
			continue
		}
		// otherwise, parse type
		switch colType := colTypes[i].(type) {
		case *lazyrow.BoolColumnType:
			bval, err := strconv.ParseBool(colVal)
			if err != nil {
				return nil, err
			}
			values[i] = bval
		case *lazyrow.Int8ColumnType:
			ival, err := strconv.ParseInt(colVal, 10, 8)
			if err != nil {
				return nil, err
			}
			values[i] = int8(ival)
		case *lazyrow.Int16ColumnType:
			ival, err := strconv.ParseInt(colVal, 10, 16)
			if err != nil {
				return nil, err
			}
			values[i] = int16(ival)
		case *lazyrow.Int32ColumnType:
			ival, err := strconv.ParseInt(colVal, 10, 32)
			if err != nil {
				return nil, err
			}
			values[i] = int32(ival)
		case *lazyrow.Int64ColumnType:
			ival, err := strconv.ParseInt(colVal, 10, 64)
			if err != nil {
				return nil, err
			}
			values[i] = ival
		case *lazyrow.Float32ColumnType:
			fval, err := strconv.ParseFloat(colVal, 32)
			if err != nil {
				return nil, err
			}
			values[i] = float32(fval)
		case *lazyrow.Float64ColumnType:
			fval, err := strconv.ParseFloat(colVal, 64)
			if err != nil {
				return nil, err
			}
			values[i] = fval
		case *lazyrow.TimestampColumnType:
			tval, err := time.Parse(conf.TimeFormat, colVal)
			if err != nil {
				return nil, fmt.Errorf("Column %s could not be parsed as datetime with format %s. Was: %#v", names[i], conf.TimeFormat, colVal)
			}
			values[i] = tval.UTC()
		case *lazyrow.UUIDColumnType:
			id, err := uuid.FromString(colVal)
			if err != nil {
				return nil, fmt.Errorf("Column %s was not a UUID. Was: %#v", names[i], colVal)
			}
			values[i] = id
		case *lazyrow.FixedBytesColumnType:
			bval, err := hex.DecodeString(colVal)
			if err != nil || len(bval) != colType.Length {
				return nil, fmt.Errorf("Column %s was not %d hex-encoded bytes. Was: %#v", names[i], colType.Length, colVal)
			}
			values[i] = bval
		case *lazyrow.VarStringColumnType:
			values[i] = colVal
		case *lazyrow.VarBytesColumnType:
			values[i] = []byte(colVal)
		case lazyrow.VarColumnType:
			v, err := colType.Deserialize([]byte(colVal))
			if err != nil {
				return nil, fmt.Errorf("Column %s: %w", names[i], err)
			}
			values[i] = v
		default:
			return nil, fmt.Errorf("DSV parsing does not support column type %T", colTypes[i])
		}
	}
	return values, nil
}
