package value

import (
	"fmt"
	"math"
)

// FromAny converts a plain Go scalar into a Value. It covers the types
// that generic decoders (yaml.Unmarshal into any, encoding/json with
// UseNumber off) produce for scalar data, so a caller can decode wire
// input and hand the result straight to the accessor layer.
//
// All integer widths map to KindInteger, both float widths to
// KindDouble. A uint64 above the int64 range is an error rather than a
// silent wraparound. Composite types (maps, slices, structs) are
// rejected: nested values are only ever produced by whole-record
// reads, never accepted from outside.
func FromAny(v any) (Value, error) {
	switch t := v.(type) {
	case Value:
		return t, nil
	case int:
		return Integer(int64(t)), nil
	case int8:
		return Integer(int64(t)), nil
	case int16:
		return Integer(int64(t)), nil
	case int32:
		return Integer(int64(t)), nil
	case int64:
		return Integer(t), nil
	case uint:
		return Integer(int64(t)), nil
	case uint8:
		return Integer(int64(t)), nil
	case uint16:
		return Integer(int64(t)), nil
	case uint32:
		return Integer(int64(t)), nil
	case uint64:
		if t > math.MaxInt64 {
			return Value{}, fmt.Errorf("integer %d overflows the value range", t)
		}

		return Integer(int64(t)), nil
	case float32:
		return Double(float64(t)), nil
	case float64:
		return Double(t), nil
	case bool:
		return Bool(t), nil
	case string:
		return Text(t), nil
	default:
		return Value{}, fmt.Errorf("cannot represent %T as a dynamic value", v)
	}
}
