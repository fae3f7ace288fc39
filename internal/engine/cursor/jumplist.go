package cursor

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultJumpListSize is the number of jumps kept before the oldest is dropped.
const DefaultJumpListSize = 100

// Jump is a single jump list entry.
type Jump struct {
	// ID uniquely identifies the entry.
	ID string

	// Point is the position the cursor jumped away from.
	Point Point

	// Time is when the jump was recorded.
	Time time.Time
}

// JumpList is a bounded history of cursor positions left by jump motions.
// It behaves like Vim's jumplist: Back walks towards older entries and
// Forward returns towards newer ones. A new jump resets the position to
// the newest entry.
type JumpList struct {
	mu      sync.Mutex
	entries []Jump
	index   int // position within entries; len(entries) means "at the newest"
	max     int
}

// NewJumpList creates a jump list holding at most max entries.
func NewJumpList(max int) *JumpList {
	if max <= 0 {
		max = DefaultJumpListSize
	}
	return &JumpList{max: max}
}

// Push records p as a jump origin and returns the new entry.
// An existing entry on the same line is moved to the end, and the list
// position is reset to the newest entry.
func (j *JumpList) Push(p Point) Jump {
	j.mu.Lock()
	defer j.mu.Unlock()

	entry := j.record(p, false)
	j.index = len(j.entries)
	return entry
}

// record appends p, dropping an older entry on the same line and the
// oldest entries beyond max. With keepNewest the current newest entry
// survives even on p's line. Callers hold mu and fix up index.
func (j *JumpList) record(p Point, keepNewest bool) Jump {
	for i, e := range j.entries {
		if keepNewest && i == len(j.entries)-1 {
			break
		}
		if e.Point.Line == p.Line {
			j.entries = append(j.entries[:i], j.entries[i+1:]...)
			break
		}
	}

	entry := Jump{
		ID:    uuid.New().String(),
		Point: p,
		Time:  time.Now(),
	}
	j.entries = append(j.entries, entry)
	if len(j.entries) > j.max {
		j.entries = j.entries[len(j.entries)-j.max:]
	}
	return entry
}

// Back returns the previous jump target.
// When leaving the newest position, current is recorded so that Forward
// can return to it.
func (j *JumpList) Back(current Point) (Jump, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.index == 0 {
		return Jump{}, false
	}
	if j.index == len(j.entries) {
		// The newest entry is the target, so it stays even on current's line.
		j.record(current, true)
		j.index = len(j.entries) - 1
	}
	if j.index == 0 {
		return Jump{}, false
	}
	j.index--
	return j.entries[j.index], true
}

// Get returns the entry with the given ID.
func (j *JumpList) Get(id string) (Jump, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, e := range j.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Jump{}, false
}

// Forward returns the next newer jump target, if any.
func (j *JumpList) Forward() (Jump, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.index+1 >= len(j.entries) {
		return Jump{}, false
	}
	j.index++
	return j.entries[j.index], true
}

// Len returns the number of entries.
func (j *JumpList) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}

// Entries returns a copy of all entries, oldest first.
func (j *JumpList) Entries() []Jump {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Jump, len(j.entries))
	copy(out, j.entries)
	return out
}
