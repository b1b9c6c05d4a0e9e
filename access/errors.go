package access

import (
	"fmt"
	"strings"

	"fieldpath/internal/match"
	"fieldpath/value"
)

// EmptyPathError reports a path string that produced no segments or
// contained an empty segment (consecutive separators).
type EmptyPathError struct {
	// Input is the original path string.
	Input string
	// Position is the index of the empty segment.
	Position int
}

func (e *EmptyPathError) Error() string {
	if e.Input == "" {
		return "empty path"
	}

	return fmt.Sprintf("invalid path %q: empty segment at position %d", e.Input, e.Position)
}

// UnknownFieldError reports a path segment that matches no field of the
// table being traversed.
type UnknownFieldError struct {
	// Segment is the path segment that failed to resolve.
	Segment string
	// Available lists the field names of the table, in declaration order.
	Available []string
}

func (e *UnknownFieldError) Error() string {
	msg := fmt.Sprintf("unknown field %q (available: %s)",
		e.Segment, strings.Join(e.Available, ", "))

	if suggestion, ok := match.Closest(e.Segment, e.Available); ok {
		msg += fmt.Sprintf(", did you mean %q?", suggestion)
	}

	return msg
}

// PathTooLongError reports a path that continues past a leaf field.
type PathTooLongError struct {
	// Leaf is the name of the leaf field that was reached.
	Leaf string
	// Remaining holds the unconsumed segments after the leaf.
	Remaining []string
}

func (e *PathTooLongError) Error() string {
	return fmt.Sprintf("path continues past leaf field %q: %d segment(s) remaining",
		e.Leaf, len(e.Remaining))
}

// TypeMismatchError reports a write whose value kind does not match the
// destination leaf's declared kind. The field is left unchanged.
type TypeMismatchError struct {
	// Field is the name of the destination leaf.
	Field string
	// Expected is the leaf's declared kind.
	Expected value.KindEnum
	// Actual is the kind of the value that was offered.
	Actual value.KindEnum
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cannot assign %s to field %q of kind %s",
		e.Actual, e.Field, e.Expected)
}

// CannotAssignNestedError reports a set whose final segment names a
// nested record. Only leaf fields can be assigned.
type CannotAssignNestedError struct {
	// Field is the name of the nested-record field.
	Field string
}

func (e *CannotAssignNestedError) Error() string {
	return fmt.Sprintf("field %q is a nested record and cannot be assigned directly", e.Field)
}
