package jsonl

import (
	"encoding/base64"
	"fmt"
	"math"
	"time"

	"github.com/go-sif/lazyrow"
	uuid "github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/tidwall/gjson"
)

// ParseJSONRow extracts one value per column from a parsed line of JSON. Missing and null values produce nil.
// Every column which cannot be parsed is reported.
func ParseJSONRow(colNames []string, colTypes []lazyrow.ColumnType, json gjson.Result) ([]interface{}, error) {
	var multierr *multierror.Error
	values := make([]interface{}, len(colNames))
	for i, colName := range colNames {
		v, err := parseValue(json.Get(colName), colName, colTypes[i])
		if err != nil {
			multierr = multierror.Append(multierr, err)
			continue
		}
		values[i] = v
	}
	return values, multierr.ErrorOrNil()
}

func parseValue(val gjson.Result, colName string, colType lazyrow.ColumnType) (interface{}, error) {
	if !val.Exists() || val.Type == gjson.Null {
		return nil, nil
	}
	switch colType.(type) {
	case *lazyrow.BoolColumnType:
		if val.Type != gjson.True && val.Type != gjson.False {
			return nil, fmt.Errorf("Column %s was not a boolean. Was: %s", colName, val.Raw)
		}
		return val.Bool(), nil
	case *lazyrow.Int8ColumnType:
		n, err := parseInt(val, colName, math.MinInt8, math.MaxInt8)
		return int8(n), err
	case *lazyrow.Int16ColumnType:
		n, err := parseInt(val, colName, math.MinInt16, math.MaxInt16)
		return int16(n), err
	case *lazyrow.Int32ColumnType:
		n, err := parseInt(val, colName, math.MinInt32, math.MaxInt32)
		return int32(n), err
	case *lazyrow.Int64ColumnType:
		return parseInt(val, colName, math.MinInt64, math.MaxInt64)
	case *lazyrow.Float32ColumnType:
		if val.Type != gjson.Number {
			return nil, fmt.Errorf("Column %s was not a number. Was: %s", colName, val.Raw)
		}
		return float32(val.Float()), nil
	case *lazyrow.Float64ColumnType:
		if val.Type != gjson.Number {
			return nil, fmt.Errorf("Column %s was not a number. Was: %s", colName, val.Raw)
		}
		return val.Float(), nil
	case *lazyrow.TimestampColumnType:
		switch val.Type {
		case gjson.Number:
			return time.UnixMicro(val.Int()).UTC(), nil
		case gjson.String:
			t, err := time.Parse(time.RFC3339Nano, val.Str)
			if err != nil {
				return nil, fmt.Errorf("Column %s could not be parsed as an RFC3339 timestamp. Was: %s", colName, val.Raw)
			}
			return t.UTC(), nil
		default:
			return nil, fmt.Errorf("Column %s was not a timestamp. Was: %s", colName, val.Raw)
		}
	case *lazyrow.UUIDColumnType:
		id, err := uuid.FromString(val.String())
		if err != nil {
			return nil, fmt.Errorf("Column %s was not a UUID. Was: %s", colName, val.Raw)
		}
		return id, nil
	case *lazyrow.FixedBytesColumnType, *lazyrow.VarBytesColumnType:
		if val.Type != gjson.String {
			return nil, fmt.Errorf("Column %s was not a base64 string. Was: %s", colName, val.Raw)
		}
		b, err := base64.StdEncoding.DecodeString(val.Str)
		if err != nil {
			return nil, fmt.Errorf("Column %s was not a base64 string. Was: %s", colName, val.Raw)
		}
		return b, nil
	case *lazyrow.VarStringColumnType:
		if val.Type != gjson.String {
			return nil, fmt.Errorf("Column %s was not a string. Was: %s", colName, val.Raw)
		}
		return val.Str, nil
	case lazyrow.VarColumnType:
		// custom types receive the generic representation of the JSON value
		return val.Value(), nil
	default:
		return nil, fmt.Errorf("JSONL parsing does not support column type %s", colType.Name())
	}
}

func parseInt(val gjson.Result, colName string, min int64, max int64) (int64, error) {
	if val.Type != gjson.Number {
		return 0, fmt.Errorf("Column %s was not a number. Was: %s", colName, val.Raw)
	}
	n := val.Int()
	if n < min || n > max || float64(n) != val.Float() {
		return 0, fmt.Errorf("Column %s was not an integer in [%d, %d]. Was: %s", colName, min, max, val.Raw)
	}
	return n, nil
}
