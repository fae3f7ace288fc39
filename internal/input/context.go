package input

import "github.com/dshills/sneak/internal/input/key"

// Mode names.
const (
	ModeNormal          = "normal"
	ModeOperatorPending = "operator-pending"
)

// Context tracks the state needed while a command is being typed.
type Context struct {
	// Mode is "normal" or "operator-pending".
	Mode string

	// PendingOperator is set when an operator is waiting for a motion.
	PendingOperator string

	// PendingCount is the accumulated count prefix.
	PendingCount int

	// PendingRegister is the selected register for the next operation.
	PendingRegister rune

	// PendingSequence holds the keys of the command being typed.
	PendingSequence *key.Sequence
}

// NewContext creates a new input context in normal mode.
func NewContext() *Context {
	return &Context{Mode: ModeNormal}
}

// Clone returns a deep copy of the context.
func (c *Context) Clone() *Context {
	clone := *c
	if c.PendingSequence != nil {
		clone.PendingSequence = c.PendingSequence.Clone()
	}
	return &clone
}

// ClearPending clears all pending state and returns to normal mode.
func (c *Context) ClearPending() {
	c.Mode = ModeNormal
	c.PendingOperator = ""
	c.PendingCount = 0
	c.PendingRegister = 0
	c.PendingSequence = nil
}

// HasPendingOperator returns true if an operator is pending.
func (c *Context) HasPendingOperator() bool {
	return c.PendingOperator != ""
}

// GetCount returns the pending count, or 1 if no count is set.
func (c *Context) GetCount() int {
	if c.PendingCount <= 0 {
		return 1
	}
	return c.PendingCount
}

// AppendToSequence adds a key event to the pending sequence.
func (c *Context) AppendToSequence(event key.Event) {
	if c.PendingSequence == nil {
		c.PendingSequence = key.NewSequence()
	}
	c.PendingSequence.Add(event)
}
