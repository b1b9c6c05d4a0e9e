package access

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"fieldpath/value"
)

// Derived tables are process-lifetime metadata: built once per struct
// type, then shared read-only by every caller.
var (
	derivedMu sync.RWMutex
	derived   = map[reflect.Type]*Table{}
)

// Derive builds (or returns the cached) accessor table for the
// record's struct type. rec must be a non-nil pointer to a struct.
//
// Exported fields become table entries. The path name of a field is
// taken from the `field` tag if present, else from the `json` tag
// name, else from the Go field name verbatim. A tag of "-" skips the
// field.
//
// Fields of underlying type int64, float64, bool, or string become
// leaves; struct-typed fields become nested records with their own
// derived table. Any other field type is a derivation error: slices,
// maps, and pointers have no path semantics here, and narrower
// numerics would need coercion the value model deliberately rejects.
func Derive(rec any) (*Table, error) {
	rt := reflect.TypeOf(rec)
	if rt == nil || rt.Kind() != reflect.Ptr || rt.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("derive requires a non-nil pointer to struct, got %T", rec)
	}

	return deriveType(rt.Elem())
}

// MustDerive is Derive for types known to be well-formed; it panics on
// a derivation error.
func MustDerive(rec any) *Table {
	t, err := Derive(rec)
	if err != nil {
		panic(err)
	}

	return t
}

func deriveType(rt reflect.Type) (*Table, error) {
	derivedMu.RLock()
	t, ok := derived[rt]
	derivedMu.RUnlock()

	if ok {
		return t, nil
	}

	b := NewBuilder(rt.Name())

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		name := fieldName(sf)
		if name == "" {
			continue
		}

		if kind := value.KindOfType(sf.Type); kind != 0 {
			b.Leaf(name, kind, leafGetter(i, kind), leafSetter(i, kind))
			continue
		}

		if sf.Type.Kind() == reflect.Struct {
			sub, err := deriveType(sf.Type)
			if err != nil {
				return nil, err
			}

			b.Nested(name, sub, fieldDescender(i))

			continue
		}

		return nil, fmt.Errorf("field %s.%s: unsupported leaf type %s",
			rt.Name(), sf.Name, sf.Type)
	}

	t, err := b.Build()
	if err != nil {
		return nil, err
	}

	derivedMu.Lock()
	defer derivedMu.Unlock()

	// another goroutine may have derived the same type meanwhile; keep
	// the first table so callers always share one instance
	if prev, ok := derived[rt]; ok {
		return prev, nil
	}

	derived[rt] = t

	return t, nil
}

// fieldName resolves the path name of a struct field: `field` tag,
// then json tag name, then the Go field name. Returns "" for fields
// tagged "-".
func fieldName(sf reflect.StructField) string {
	if tag, ok := sf.Tag.Lookup("field"); ok {
		if tag == "-" {
			return ""
		}

		return tag
	}

	if tag := sf.Tag.Get("json"); tag != "" {
		if idx := strings.IndexByte(tag, ','); idx >= 0 {
			tag = tag[:idx]
		}

		if tag == "-" {
			return ""
		}

		if tag != "" {
			return tag
		}
	}

	return sf.Name
}

func leafGetter(index int, kind value.KindEnum) func(rec any) value.Value {
	return func(rec any) value.Value {
		fv := reflect.ValueOf(rec).Elem().Field(index)

		switch kind {
		case value.KindInteger:
			return value.Integer(fv.Int())
		case value.KindDouble:
			return value.Double(fv.Float())
		case value.KindBool:
			return value.Bool(fv.Bool())
		case value.KindText:
			return value.Text(fv.String())
		default:
			panic("leaf getter built for non-leaf kind " + kind.String())
		}
	}
}

func leafSetter(index int, kind value.KindEnum) func(rec any, v value.Value) error {
	return func(rec any, v value.Value) error {
		// the dispatcher has already matched v's kind against the leaf
		fv := reflect.ValueOf(rec).Elem().Field(index)

		switch kind {
		case value.KindInteger:
			n, _ := v.AsInteger()
			fv.SetInt(n)
		case value.KindDouble:
			d, _ := v.AsDouble()
			fv.SetFloat(d)
		case value.KindBool:
			b, _ := v.AsBool()
			fv.SetBool(b)
		case value.KindText:
			s, _ := v.AsText()
			fv.SetString(s)
		default:
			panic("leaf setter built for non-leaf kind " + kind.String())
		}

		return nil
	}
}

func fieldDescender(index int) func(rec any) any {
	return func(rec any) any {
		return reflect.ValueOf(rec).Elem().Field(index).Addr().Interface()
	}
}

// Get is a convenience that derives the table for the record's type
// and resolves path against it. rec must be a pointer to struct.
func Get(rec any, path string) (value.Value, error) {
	t, err := Derive(rec)
	if err != nil {
		return value.Value{}, err
	}

	return t.Get(rec, path)
}

// Set is a convenience that derives the table for the record's type
// and writes v at path. rec must be a pointer to struct.
func Set(rec any, path string, v value.Value) error {
	t, err := Derive(rec)
	if err != nil {
		return err
	}

	return t.Set(rec, path, v)
}
