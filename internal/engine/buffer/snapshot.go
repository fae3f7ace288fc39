package buffer

import "unicode/utf8"

// Snapshot provides a read-only view of a buffer at a specific point in time.
// It is safe for concurrent access and will not change even if the original
// buffer is modified.
type Snapshot struct {
	lines      []string
	revisionID RevisionID
	tabWidth   int
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() uint32 {
	return uint32(len(s.lines))
}

// LineText returns the text of a specific line (without newline).
func (s *Snapshot) LineText(line uint32) string {
	if int(line) >= len(s.lines) {
		return ""
	}
	return s.lines[line]
}

// LineLen returns the length of a specific line in characters.
func (s *Snapshot) LineLen(line uint32) uint32 {
	return uint32(utf8.RuneCountInString(s.LineText(line)))
}

// ClampPoint returns the nearest valid cursor position to p.
func (s *Snapshot) ClampPoint(p Point) Point {
	if len(s.lines) == 0 {
		return Point{}
	}
	return clampPoint(s.lines, p)
}

// RevisionID returns the revision ID of this snapshot.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}

// TabWidth returns the snapshot's tab width.
func (s *Snapshot) TabWidth() int {
	return s.tabWidth
}
