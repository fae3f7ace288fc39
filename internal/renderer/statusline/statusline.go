// Package statusline draws the bottom line of the editor.
package statusline

import (
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/dshills/sneak/internal/renderer/backend"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
)

// StatusLine renders the mode, pending keys, message and cursor position.
type StatusLine struct {
	mode     string
	pending  string
	filename string
	modified bool
	line     uint32 // 1-indexed for display
	col      uint32 // 1-indexed for display

	message     string
	messageType MessageType

	width int
}

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{mode: "NORMAL", line: 1, col: 1}
}

func (s *StatusLine) SetMode(mode string) {
	s.mode = mode
}

// SetPending sets the keys of the partially typed command.
func (s *StatusLine) SetPending(keys string) {
	s.pending = keys
}

func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

func (s *StatusLine) SetModified(modified bool) {
	s.modified = modified
}

// SetPosition sets the zero-based cursor position.
func (s *StatusLine) SetPosition(line, col uint32) {
	s.line = line + 1
	s.col = col + 1
}

func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Message returns the current message.
func (s *StatusLine) Message() string {
	return s.message
}

func (s *StatusLine) Resize(width int) {
	s.width = width
}

// Render draws the status line at row.
func (s *StatusLine) Render(b backend.Backend, row int) {
	bar := backend.Cell{Rune: ' ', Attrs: backend.AttrReverse}
	for x := 0; x < s.width; x++ {
		b.SetCell(x, row, bar)
	}

	col := s.draw(b, 0, row, " "+s.mode+" ", backend.AttrReverse|backend.AttrBold)

	left := s.filename
	if left == "" {
		left = "[No Name]"
	}
	if s.modified {
		left += " [+]"
	}
	if s.message != "" {
		left = s.message
	}

	right := s.formatPosition()
	if s.pending != "" {
		right = s.pending + "  " + right
	}
	rightStart := s.width - uniseg.StringWidth(right) - 1

	attrs := backend.AttrReverse
	if s.messageType == MessageError {
		attrs |= backend.AttrBold
	}
	s.drawClipped(b, col+1, row, left, attrs, rightStart-1)
	if rightStart > col {
		s.draw(b, rightStart, row, right, backend.AttrReverse)
	}
}

func (s *StatusLine) formatPosition() string {
	return fmt.Sprintf("%d:%d", s.line, s.col)
}

func (s *StatusLine) draw(b backend.Backend, x, row int, text string, attrs backend.Attr) int {
	return s.drawClipped(b, x, row, text, attrs, s.width)
}

// drawClipped writes text from x and stops before limit. It returns the
// column after the last cell written.
func (s *StatusLine) drawClipped(b backend.Backend, x, row int, text string, attrs backend.Attr, limit int) int {
	state := -1
	var cluster string
	for text != "" {
		var boundaries int
		cluster, text, boundaries, state = uniseg.StepString(text, state)
		w := boundaries >> uniseg.ShiftWidth
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		b.SetCell(x, row, backend.Cell{Rune: []rune(cluster)[0], Attrs: attrs})
		x += w
	}
	return x
}
