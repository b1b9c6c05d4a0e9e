// Package value defines the dynamic tagged value that crosses the
// string-keyed accessor boundary: a closed union over integer, double,
// bool, text, and (for whole sub-record reads) an ordered nested
// mapping of field name to value.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Entry is a single named entry of a nested value. Nested values keep
// their entries ordered (field declaration order), so a slice of
// entries is used instead of a map.
type Entry struct {
	Name  string
	Value Value
}

// Value is a dynamically typed value. The zero Value is invalid and
// reports a zero Kind; construct values with Integer, Double, Bool,
// Text, or Nested.
type Value struct {
	kind    KindEnum
	integer int64
	double  float64
	boolean bool
	text    string
	nested  []Entry
}

// Integer wraps an int64 into a Value.
func Integer(v int64) Value {
	return Value{kind: KindInteger, integer: v}
}

// Double wraps a float64 into a Value.
func Double(v float64) Value {
	return Value{kind: KindDouble, double: v}
}

// Bool wraps a bool into a Value.
func Bool(v bool) Value {
	return Value{kind: KindBool, boolean: v}
}

// Text wraps a string into a Value.
func Text(v string) Value {
	return Value{kind: KindText, text: v}
}

// Nested wraps ordered entries into a nested Value. The entries slice
// is taken over by the Value and must not be mutated afterwards.
func Nested(entries []Entry) Value {
	return Value{kind: KindNested, nested: entries}
}

// Kind returns the kind tag of the value. Zero means the Value was
// never constructed.
func (v Value) Kind() KindEnum {
	return v.kind
}

// AsInteger returns the integer payload, if the value holds one.
func (v Value) AsInteger() (int64, bool) {
	return v.integer, v.kind == KindInteger
}

// AsDouble returns the double payload, if the value holds one.
func (v Value) AsDouble() (float64, bool) {
	return v.double, v.kind == KindDouble
}

// AsBool returns the bool payload, if the value holds one.
func (v Value) AsBool() (bool, bool) {
	return v.boolean, v.kind == KindBool
}

// AsText returns the text payload, if the value holds one.
func (v Value) AsText() (string, bool) {
	return v.text, v.kind == KindText
}

// AsNested returns the ordered entries of a nested value.
func (v Value) AsNested() ([]Entry, bool) {
	return v.nested, v.kind == KindNested
}

// Lookup finds a named entry inside a nested value.
// Returns false for non-nested values and missing names.
func (v Value) Lookup(name string) (Value, bool) {
	if v.kind != KindNested {
		return Value{}, false
	}

	for _, e := range v.nested {
		if e.Name == name {
			return e.Value, true
		}
	}

	return Value{}, false
}

// Equal reports structural equality: same kind tag and equal payload.
// There is no coercion between kinds, so Integer(3) is never equal to
// Double(3). Doubles compare with ==, which leaves NaN unequal to
// everything including itself.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindInteger:
		return v.integer == other.integer
	case KindDouble:
		return v.double == other.double
	case KindBool:
		return v.boolean == other.boolean
	case KindText:
		return v.text == other.text
	case KindNested:
		if len(v.nested) != len(other.nested) {
			return false
		}

		for i, e := range v.nested {
			o := other.nested[i]
			if e.Name != o.Name || !e.Value.Equal(o.Value) {
				return false
			}
		}

		return true
	default:
		// two invalid values are equal to each other
		return true
	}
}

// String returns a readable single-line form, e.g. `integer(42)` or
// `nested{x: double(3.14)}`. Meant for error messages and test output,
// not for serialization.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return "integer(" + strconv.FormatInt(v.integer, 10) + ")"
	case KindDouble:
		return "double(" + strconv.FormatFloat(v.double, 'g', -1, 64) + ")"
	case KindBool:
		return "bool(" + strconv.FormatBool(v.boolean) + ")"
	case KindText:
		return fmt.Sprintf("text(%q)", v.text)
	case KindNested:
		var sb strings.Builder

		sb.WriteString("nested{")

		for i, e := range v.nested {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(e.Name)
			sb.WriteString(": ")
			sb.WriteString(e.Value.String())
		}

		sb.WriteString("}")

		return sb.String()
	default:
		return "invalid"
	}
}
