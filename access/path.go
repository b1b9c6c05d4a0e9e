package access

import "strings"

// pathSeparator splits a path string into field-name segments.
// There is no escaping: a separator inside a field name is not
// representable.
const pathSeparator = "."

// Path is a parsed field path: an ordered sequence of non-empty
// segments. Segments share the backing array of the original input
// string. A valid Path has at least one segment; the zero Path is
// only produced alongside an error.
type Path struct {
	segments []string
}

// ParsePath splits input on "." into a Path.
// Supports: "Field", "Nested.Field", and deeper chains.
// An empty input or an empty segment ("a..b", "a.", ".a") is an
// *EmptyPathError carrying the offending segment position. No
// validation against any record type happens here; unknown names are
// only discovered during dispatch.
func ParsePath(input string) (Path, error) {
	if input == "" {
		return Path{}, &EmptyPathError{Input: input}
	}

	segments := strings.Split(input, pathSeparator)

	for i, seg := range segments {
		if seg == "" {
			return Path{}, &EmptyPathError{Input: input, Position: i}
		}
	}

	return Path{segments: segments}, nil
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}

// Segments returns the underlying segment slice. Callers must not
// mutate it.
func (p Path) Segments() []string {
	return p.segments
}

// String returns the path as a string.
func (p Path) String() string {
	return strings.Join(p.segments, pathSeparator)
}
