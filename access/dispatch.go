package access

import "fieldpath/value"

// Get resolves path against the record and returns the addressed
// value. A path ending on a nested record yields a KindNested snapshot
// of the whole sub-record, in field declaration order. The record is
// only read. rec must be the pointer type the table was built for.
func (t *Table) Get(rec any, path string) (value.Value, error) {
	p, err := ParsePath(path)
	if err != nil {
		return value.Value{}, err
	}

	return t.getSegments(rec, p.Segments())
}

// Set resolves path against the record and writes v into the addressed
// leaf. The value kind must match the leaf's declared kind. On any
// error the record is untouched; on success exactly that one leaf has
// changed. rec must be the pointer type the table was built for.
func (t *Table) Set(rec any, path string, v value.Value) error {
	p, err := ParsePath(path)
	if err != nil {
		return err
	}

	return t.setSegments(rec, p.Segments(), v)
}

func (t *Table) getSegments(rec any, segments []string) (value.Value, error) {
	head, rest := segments[0], segments[1:]

	f, ok := t.Lookup(head)
	if !ok {
		return value.Value{}, &UnknownFieldError{Segment: head, Available: t.FieldNames()}
	}

	if len(rest) == 0 {
		if f.nested != nil {
			return f.nested.table.snapshot(f.nested.descend(rec)), nil
		}

		return f.leaf.get(rec), nil
	}

	if f.nested == nil {
		return value.Value{}, &PathTooLongError{Leaf: head, Remaining: rest}
	}

	return f.nested.table.getSegments(f.nested.descend(rec), rest)
}

func (t *Table) setSegments(rec any, segments []string, v value.Value) error {
	head, rest := segments[0], segments[1:]

	f, ok := t.Lookup(head)
	if !ok {
		return &UnknownFieldError{Segment: head, Available: t.FieldNames()}
	}

	if len(rest) == 0 {
		if f.nested != nil {
			return &CannotAssignNestedError{Field: head}
		}

		// kind check lives here, not in the write closures, so every
		// table gets the mismatch guarantee
		if v.Kind() != f.leaf.kind {
			return &TypeMismatchError{Field: head, Expected: f.leaf.kind, Actual: v.Kind()}
		}

		return f.leaf.set(rec, v)
	}

	if f.nested == nil {
		return &PathTooLongError{Leaf: head, Remaining: rest}
	}

	return f.nested.table.setSegments(f.nested.descend(rec), rest, v)
}

// snapshot reads every field of the record into a nested Value,
// recursing through nested records, in declaration order.
func (t *Table) snapshot(rec any) value.Value {
	entries := make([]value.Entry, 0, len(t.fields))

	for _, f := range t.fields {
		var v value.Value
		if f.nested != nil {
			v = f.nested.table.snapshot(f.nested.descend(rec))
		} else {
			v = f.leaf.get(rec)
		}

		entries = append(entries, value.Entry{Name: f.name, Value: v})
	}

	return value.Nested(entries)
}
