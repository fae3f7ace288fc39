package buffer

import (
	"fmt"
	"sync/atomic"
	"unicode/utf8"
)

// Point represents a line and column position.
// Both Line and Column are 0-indexed.
// Column is measured in characters (runes) from the start of the line.
type Point struct {
	Line   uint32 // 0-indexed line number
	Column uint32 // 0-indexed column (rune index within line)
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Point) After(other Point) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the zero point (0:0).
func (p Point) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}

// EndOf returns the position just past text when it starts at p.
// Any of \n, \r\n and \r counts as one line break.
func EndOf(p Point, text string) Point {
	lines := splitLines(text)
	if len(lines) == 1 {
		return Point{Line: p.Line, Column: p.Column + uint32(utf8.RuneCountInString(text))}
	}
	last := lines[len(lines)-1]
	return Point{
		Line:   p.Line + uint32(len(lines)-1),
		Column: uint32(utf8.RuneCountInString(last)),
	}
}

// RevisionID uniquely identifies a buffer revision.
// Each modification to the buffer creates a new revision.
type RevisionID uint64

// revisionCounter is used to generate unique revision IDs.
var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
// This is thread-safe using atomic operations.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}
