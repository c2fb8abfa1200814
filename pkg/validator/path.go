package validator

import (
	"strconv"
	"strings"
)

// pathSeparator joins rendered path segments.
const pathSeparator = " --> "

// SegmentKind distinguishes object properties from array indices.
type SegmentKind int

const (
	SegmentProperty SegmentKind = iota
	SegmentIndex
)

// Segment is one step into a nested value.
type Segment struct {
	Kind  SegmentKind
	Name  string
	Index int
}

// Property returns a segment naming an object property.
func Property(name string) Segment {
	return Segment{Kind: SegmentProperty, Name: name}
}

// Index returns a segment naming an array element.
func Index(i int) Segment {
	return Segment{Kind: SegmentIndex, Index: i}
}

// String renders the segment as "Property: name" or "Index: n".
func (s Segment) String() string {
	if s.Kind == SegmentIndex {
		return "Index: " + strconv.Itoa(s.Index)
	}
	return "Property: " + s.Name
}

// Path locates a value inside a nested structure, outermost segment first.
type Path []Segment

// Root returns a single-property path, the usual starting point for
// validating a named value.
func Root(name string) Path {
	return Path{Property(name)}
}

// Append returns a new path with seg added. The receiver is never modified
// and the result never shares its backing array.
func (p Path) Append(seg Segment) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

// String renders the path with " --> " between segments.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, seg := range p {
		parts[i] = seg.String()
	}
	return strings.Join(parts, pathSeparator)
}

// ValidationError is a single problem found at Path. Issue is the rendered
// path followed by the problem, e.g. "Property: eslint --> Property: depNames is not an array".
type ValidationError struct {
	Path  Path
	Issue string
}

// Error implements error.
func (e ValidationError) Error() string {
	return e.Issue
}

// Property returns the property name at the given path depth, if the segment
// there names a property.
func (e ValidationError) Property(depth int) (string, bool) {
	if depth < 0 || depth >= len(e.Path) {
		return "", false
	}
	seg := e.Path[depth]
	if seg.Kind != SegmentProperty {
		return "", false
	}
	return seg.Name, true
}

func newError(path Path, problem string) ValidationError {
	issue := problem
	if len(path) > 0 {
		issue = path.String() + " " + problem
	}
	return ValidationError{Path: path, Issue: issue}
}
