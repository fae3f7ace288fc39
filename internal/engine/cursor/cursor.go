package cursor

import (
	"fmt"
	"sync"

	"github.com/dshills/sneak/internal/engine/buffer"
)

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// Clamper maps an arbitrary point onto the nearest valid cursor position.
type Clamper interface {
	ClampPoint(p Point) Point
}

// Cursor tracks the primary cursor position.
type Cursor struct {
	mu  sync.RWMutex
	pos Point

	// preferred column for vertical movement
	goal uint32
}

// New creates a cursor at the start of the document.
func New() *Cursor {
	return &Cursor{}
}

// NewAt creates a cursor at the given position.
func NewAt(p Point) *Cursor {
	return &Cursor{pos: p, goal: p.Column}
}

// Get returns the cursor position.
func (c *Cursor) Get() Point {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pos
}

// Set moves the cursor and resets the preferred column.
func (c *Cursor) Set(p Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pos = p
	c.goal = p.Column
}

// SetLine moves the cursor vertically, keeping the preferred column.
// The column is clamped by the supplied clamper.
func (c *Cursor) SetLine(line uint32, clamp Clamper) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := Point{Line: line, Column: c.goal}
	if clamp != nil {
		p = clamp.ClampPoint(p)
	}
	c.pos = p
}

// Clamp pulls the cursor back into the valid area reported by clamp.
func (c *Cursor) Clamp(clamp Clamper) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pos = clamp.ClampPoint(c.pos)
}

// String returns a string representation of the cursor.
func (c *Cursor) String() string {
	return fmt.Sprintf("Cursor%s", c.Get())
}
