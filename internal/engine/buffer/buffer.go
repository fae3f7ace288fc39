package buffer

import (
	"errors"
	"io"
	"strings"
	"sync"
	"unicode/utf8"
)

// Errors returned by buffer operations.
var (
	ErrLineOutOfRange = errors.New("line out of range")
	ErrRangeInvalid   = errors.New("invalid range")
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingLF:
		return "\\n"
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// Buffer holds document text as a list of lines.
// It always contains at least one (possibly empty) line.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	lines      []string
	revisionID RevisionID
	lineEnding LineEnding
	tabWidth   int
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lines:      []string{""},
		revisionID: NewRevisionID(),
		lineEnding: LineEndingLF,
		tabWidth:   4,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content.
// Any mix of \n, \r\n and \r is accepted as a line break.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.lines = splitLines(s)
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	// Read all content first to handle line ending normalization correctly
	// (CRLF sequences may be split across read boundaries)
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return NewBufferFromString(string(data), opts...), nil
}

// splitLines normalizes line endings and splits text into lines.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// Text returns the full buffer content joined with the buffer's line ending.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return strings.Join(b.lines, b.lineEnding.Sequence())
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() uint32 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return uint32(len(b.lines))
}

// LineText returns the text of a specific line (without newline).
// Returns an empty string for lines past the end of the buffer.
func (b *Buffer) LineText(line uint32) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if int(line) >= len(b.lines) {
		return ""
	}
	return b.lines[line]
}

// LineLen returns the length of a specific line in characters.
func (b *Buffer) LineLen(line uint32) uint32 {
	return uint32(utf8.RuneCountInString(b.LineText(line)))
}

// ClampPoint returns the nearest valid cursor position to p.
// The column may sit on the last character but never past it,
// except on empty lines where it is 0.
func (b *Buffer) ClampPoint(p Point) Point {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return clampPoint(b.lines, p)
}

func clampPoint(lines []string, p Point) Point {
	last := uint32(len(lines) - 1)
	if p.Line > last {
		p.Line = last
	}
	n := uint32(utf8.RuneCountInString(lines[p.Line]))
	switch {
	case n == 0:
		p.Column = 0
	case p.Column >= n:
		p.Column = n - 1
	}
	return p
}

// TextRange returns the text covered by r.
// Line breaks inside the range are rendered as "\n".
func (b *Buffer) TextRange(r Range) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.checkRange(r); err != nil {
		return "", err
	}
	return textRange(b.lines, r), nil
}

func textRange(lines []string, r Range) string {
	var sb strings.Builder
	for line := r.Start.Line; line <= r.End.Line; line++ {
		runes := []rune(lines[line])
		from := 0
		if line == r.Start.Line {
			from = clampIndex(int(r.Start.Column), len(runes))
		}
		to := len(runes)
		if line == r.End.Line {
			to = clampIndex(int(r.End.Column), len(runes))
		}
		if from < to {
			sb.WriteString(string(runes[from:to]))
		}
		// The break after this line is covered when the range continues past
		// it, or when the exclusive end lands beyond the last character.
		if line < r.End.Line || (int(r.End.Column) > len(runes) && int(line) < len(lines)-1) {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Delete removes the text covered by r and returns it.
func (b *Buffer) Delete(r Range) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkRange(r); err != nil {
		return "", err
	}

	removed := textRange(b.lines, r)

	end := r.End
	endRunes := []rune(b.lines[end.Line])
	// An exclusive end past the last character swallows the line break.
	if int(end.Column) > len(endRunes) && int(end.Line) < len(b.lines)-1 {
		end = Point{Line: end.Line + 1, Column: 0}
		endRunes = []rune(b.lines[end.Line])
	}

	startRunes := []rune(b.lines[r.Start.Line])
	head := string(startRunes[:clampIndex(int(r.Start.Column), len(startRunes))])
	tail := string(endRunes[clampIndex(int(end.Column), len(endRunes)):])

	lines := make([]string, 0, len(b.lines)-int(end.Line-r.Start.Line))
	lines = append(lines, b.lines[:r.Start.Line]...)
	lines = append(lines, head+tail)
	lines = append(lines, b.lines[end.Line+1:]...)
	b.lines = lines
	b.revisionID = NewRevisionID()

	return removed, nil
}

// Insert places text at p and returns the position just past it.
// Line breaks in text split the line.
func (b *Buffer) Insert(p Point, text string) (Point, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if int(p.Line) >= len(b.lines) {
		return p, ErrLineOutOfRange
	}
	if text == "" {
		return p, nil
	}

	runes := []rune(b.lines[p.Line])
	col := clampIndex(int(p.Column), len(runes))
	head := string(runes[:col])
	tail := string(runes[col:])

	parts := splitLines(text)
	parts[0] = head + parts[0]
	end := EndOf(Point{Line: p.Line, Column: uint32(col)}, text)
	parts[len(parts)-1] += tail

	lines := make([]string, 0, len(b.lines)+len(parts)-1)
	lines = append(lines, b.lines[:p.Line]...)
	lines = append(lines, parts...)
	lines = append(lines, b.lines[p.Line+1:]...)
	b.lines = lines
	b.revisionID = NewRevisionID()

	return end, nil
}

// checkRange validates r against the current content. Caller holds the lock.
func (b *Buffer) checkRange(r Range) error {
	if !r.IsValid() {
		return ErrRangeInvalid
	}
	if int(r.End.Line) >= len(b.lines) {
		return ErrLineOutOfRange
	}
	return nil
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// IsEmpty returns true if the buffer holds a single empty line.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines) == 1 && b.lines[0] == ""
}

// LineEnding returns the buffer's line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// TabWidth returns the buffer's tab width.
func (b *Buffer) TabWidth() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tabWidth
}

// Snapshot returns a read-only view of the current content.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	lines := make([]string, len(b.lines))
	copy(lines, b.lines)
	return &Snapshot{
		lines:      lines,
		revisionID: b.revisionID,
		tabWidth:   b.tabWidth,
	}
}
