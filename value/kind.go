package value

import "reflect"

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInteger
	KindDouble
	KindBool
	KindText
	KindNested

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsLeaf reports whether the kind describes a primitive leaf value
// (anything valid except KindNested).
func (k KindEnum) IsLeaf() bool {
	switch k {
	default:
		return false
	case KindInteger, KindDouble, KindBool, KindText:
		return true
	}
}

// KindOfType classifies a reflect type as a leaf kind.
// Named types are classified by their underlying kind, so
// `type Velocity float64` is a KindDouble leaf.
// Returns the zero KindEnum for anything that is not a supported leaf.
func KindOfType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int64:
		return KindInteger
	case reflect.Float64:
		return KindDouble
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindText
	}
}
