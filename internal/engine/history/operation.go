package history

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/dshills/sneak/internal/engine/buffer"
)

// Editor is the buffer surface operations are applied to.
type Editor interface {
	Delete(r buffer.Range) (string, error)
	Insert(p buffer.Point, text string) (buffer.Point, error)
}

// Operation represents a single undoable edit.
type Operation struct {
	// Start is where the edit begins in the document before the edit.
	Start buffer.Point

	OldText string // Text that was replaced (for undo)
	NewText string // Text that was inserted (for redo)

	CursorBefore buffer.Point
	CursorAfter  buffer.Point

	Timestamp time.Time
}

// NewOperation creates a new operation.
func NewOperation(start buffer.Point, oldText, newText string) *Operation {
	return &Operation{
		Start:     start,
		OldText:   oldText,
		NewText:   newText,
		Timestamp: time.Now(),
	}
}

// NewDeleteOperation creates an operation for a deletion of r.
func NewDeleteOperation(r buffer.Range, deletedText string) *Operation {
	return NewOperation(r.Start, deletedText, "")
}

// NewInsertOperation creates an operation for an insertion at p.
func NewInsertOperation(p buffer.Point, text string) *Operation {
	return NewOperation(p, "", text)
}

// IsInsert returns true if this operation is a pure insertion.
func (op *Operation) IsInsert() bool {
	return op.OldText == "" && op.NewText != ""
}

// IsDelete returns true if this operation is a pure deletion.
func (op *Operation) IsDelete() bool {
	return op.OldText != "" && op.NewText == ""
}

// IsNoop returns true if this operation makes no changes.
func (op *Operation) IsNoop() bool {
	return op.OldText == op.NewText
}

// OldRange returns the range the edit replaced.
func (op *Operation) OldRange() buffer.Range {
	return buffer.Range{Start: op.Start, End: buffer.EndOf(op.Start, op.OldText)}
}

// NewRange returns the range of the text after the operation.
func (op *Operation) NewRange() buffer.Range {
	return buffer.Range{Start: op.Start, End: buffer.EndOf(op.Start, op.NewText)}
}

// Invert returns an operation that undoes this one.
func (op *Operation) Invert() *Operation {
	return &Operation{
		Start:        op.Start,
		OldText:      op.NewText,
		NewText:      op.OldText,
		CursorBefore: op.CursorAfter,
		CursorAfter:  op.CursorBefore,
		Timestamp:    time.Now(),
	}
}

// WithCursors sets the cursor state and returns the operation for chaining.
func (op *Operation) WithCursors(before, after buffer.Point) *Operation {
	op.CursorBefore = before
	op.CursorAfter = after
	return op
}

// Apply performs the operation on ed: the old text is removed and the new
// text inserted at Start.
func (op *Operation) Apply(ed Editor) error {
	if op.OldText != "" {
		removed, err := ed.Delete(op.OldRange())
		if err != nil {
			return err
		}
		if removed != op.OldText {
			// Put it back; the document no longer matches this operation.
			if _, err := ed.Insert(op.Start, removed); err != nil {
				return err
			}
			return fmt.Errorf("%w at %s", ErrTextMismatch, op.Start)
		}
	}
	if op.NewText != "" {
		if _, err := ed.Insert(op.Start, op.NewText); err != nil {
			return err
		}
	}
	return nil
}

// Description returns a short human-readable summary.
func (op *Operation) Description() string {
	switch {
	case op.IsDelete():
		return fmt.Sprintf("delete %d characters", utf8.RuneCountInString(op.OldText))
	case op.IsInsert():
		return fmt.Sprintf("insert %d characters", utf8.RuneCountInString(op.NewText))
	case op.IsNoop():
		return "no change"
	default:
		return fmt.Sprintf("replace %d characters", utf8.RuneCountInString(op.OldText))
	}
}

// OperationInfo provides read-only info about an operation.
type OperationInfo struct {
	Description string
	Timestamp   time.Time
}

func (op *Operation) info() OperationInfo {
	return OperationInfo{Description: op.Description(), Timestamp: op.Timestamp}
}
