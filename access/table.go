package access

import (
	"fmt"

	"fieldpath/value"
)

// Table is the accessor table of one record type: an ordered set of
// named field descriptors. A table is immutable once built and holds
// no instance data, so a single table serves every instance of its
// type, concurrently, without synchronization. Record instances are
// passed in at call time as a pointer to the record struct.
type Table struct {
	typeName string
	fields   []Field
	byName   map[string]int
}

// Field describes one field of a record: either a leaf of some
// primitive kind or a nested record with its own table.
type Field struct {
	name   string
	leaf   *leafField
	nested *nestedField
}

type leafField struct {
	kind value.KindEnum
	get  func(rec any) value.Value
	set  func(rec any, v value.Value) error
}

type nestedField struct {
	table *Table
	// descend maps a record pointer to a pointer to the embedded
	// sub-record.
	descend func(rec any) any
}

// Name returns the field name as addressed in paths.
func (f Field) Name() string {
	return f.name
}

// IsNested reports whether the field is a nested record.
func (f Field) IsNested() bool {
	return f.nested != nil
}

// Kind returns the declared kind of a leaf field, or KindNested for a
// nested-record field.
func (f Field) Kind() value.KindEnum {
	if f.nested != nil {
		return value.KindNested
	}

	return f.leaf.kind
}

// Nested returns the sub-record table of a nested field, or nil for a
// leaf.
func (f Field) Nested() *Table {
	if f.nested == nil {
		return nil
	}

	return f.nested.table
}

// TypeName returns the name of the record type the table describes.
func (t *Table) TypeName() string {
	return t.typeName
}

// Len returns the number of fields.
func (t *Table) Len() int {
	return len(t.fields)
}

// FieldNames returns the field names in declaration order.
func (t *Table) FieldNames() []string {
	names := make([]string, len(t.fields))
	for i, f := range t.fields {
		names[i] = f.name
	}

	return names
}

// Lookup finds a field descriptor by exact, case-sensitive name.
func (t *Table) Lookup(name string) (Field, bool) {
	idx, ok := t.byName[name]
	if !ok {
		return Field{}, false
	}

	return t.fields[idx], true
}

// Builder assembles a Table field by field. Definition mistakes
// (duplicate or empty names, nil closures) are collected and reported
// by Build, before any dispatch can happen.
type Builder struct {
	typeName string
	fields   []Field
}

// NewBuilder starts a table for the named record type.
func NewBuilder(typeName string) *Builder {
	return &Builder{typeName: typeName}
}

// Leaf adds a leaf field. The get closure reads the field from a
// record pointer as a Value of the declared kind; the set closure
// writes a Value whose kind the dispatcher has already checked against
// the declared kind.
func (b *Builder) Leaf(
	name string,
	kind value.KindEnum,
	get func(rec any) value.Value,
	set func(rec any, v value.Value) error,
) *Builder {
	b.fields = append(b.fields, Field{
		name: name,
		leaf: &leafField{kind: kind, get: get, set: set},
	})

	return b
}

// Nested adds a nested-record field backed by the sub-record's own
// table. The descend closure maps a record pointer to a pointer to the
// embedded sub-record.
func (b *Builder) Nested(name string, table *Table, descend func(rec any) any) *Builder {
	b.fields = append(b.fields, Field{
		name:   name,
		nested: &nestedField{table: table, descend: descend},
	})

	return b
}

// Build validates the collected fields and returns the finished table.
// Any definition defect fails here: this is a configuration error of
// the program, not a per-call condition.
func (b *Builder) Build() (*Table, error) {
	byName := make(map[string]int, len(b.fields))

	for i, f := range b.fields {
		if f.name == "" {
			return nil, fmt.Errorf("table %s: field %d has an empty name", b.typeName, i)
		}

		if prev, dup := byName[f.name]; dup {
			return nil, fmt.Errorf("table %s: duplicate field %q (entries %d and %d)",
				b.typeName, f.name, prev, i)
		}

		if f.leaf != nil {
			if !f.leaf.kind.IsLeaf() {
				return nil, fmt.Errorf("table %s: leaf field %q has invalid kind %s",
					b.typeName, f.name, f.leaf.kind)
			}

			if f.leaf.get == nil || f.leaf.set == nil {
				return nil, fmt.Errorf("table %s: leaf field %q needs both get and set closures",
					b.typeName, f.name)
			}
		}

		if f.nested != nil {
			if f.nested.table == nil || f.nested.descend == nil {
				return nil, fmt.Errorf("table %s: nested field %q needs a table and a descend closure",
					b.typeName, f.name)
			}
		}

		byName[f.name] = i
	}

	return &Table{typeName: b.typeName, fields: b.fields, byName: byName}, nil
}

// MustBuild is Build for statically known-good definitions; it panics
// on a definition defect.
func (b *Builder) MustBuild() *Table {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}

	return t
}
