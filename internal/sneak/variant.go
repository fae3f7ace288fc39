package sneak

import "fmt"

// Variant identifies one of the four sneak motions.
type Variant uint8

const (
	// Forward lands on the next match.
	Forward Variant = iota
	// Backward lands on the previous match.
	Backward
	// TilForward lands just before the next match.
	TilForward
	// TilBackward lands relative to the previous match.
	TilBackward
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case TilForward:
		return "tillForward"
	case TilBackward:
		return "tillBackward"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// Valid reports whether v is one of the four known variants.
func (v Variant) Valid() bool {
	return v <= TilBackward
}

// Direction is the order in which lines and characters are scanned.
type Direction int8

const (
	// Down scans toward increasing line and character indexes.
	Down Direction = 1
	// Up scans toward decreasing line and character indexes.
	Up Direction = -1
)

// Descriptor holds everything that distinguishes one variant from another.
type Descriptor struct {
	Variant Variant

	// Trigger is the key that starts the motion.
	Trigger rune

	Direction Direction

	// Till is set for motions that land beside the match instead of on it.
	Till bool

	// StartOffset is added to the cursor column to get the first eligible
	// match start (forward) or the backward-search anchor on the cursor line.
	StartOffset int

	// MoveDelta is added to the match index for a plain cursor move.
	MoveDelta int

	// OperatorDelta is added to the match index when an operator is pending.
	OperatorDelta int
}

// descriptors is indexed by Variant.
var descriptors = [...]Descriptor{
	Forward: {
		Variant:       Forward,
		Trigger:       'f',
		Direction:     Down,
		StartOffset:   1,
		MoveDelta:     0,
		OperatorDelta: 1,
	},
	Backward: {
		Variant:       Backward,
		Trigger:       'F',
		Direction:     Up,
		StartOffset:   -1,
		MoveDelta:     0,
		OperatorDelta: 0,
	},
	TilForward: {
		Variant:       TilForward,
		Trigger:       't',
		Direction:     Down,
		Till:          true,
		StartOffset:   2,
		MoveDelta:     -1,
		OperatorDelta: 0,
	},
	TilBackward: {
		Variant:       TilBackward,
		Trigger:       'T',
		Direction:     Up,
		Till:          true,
		StartOffset:   -1,
		MoveDelta:     -1,
		OperatorDelta: 1,
	},
}

// triggers maps trigger keys to variants.
var triggers = map[rune]Variant{
	'f': Forward,
	'F': Backward,
	't': TilForward,
	'T': TilBackward,
}

// Descriptor returns the descriptor for v.
// Unknown variants get the Forward descriptor.
func (v Variant) Descriptor() Descriptor {
	if !v.Valid() {
		return descriptors[Forward]
	}
	return descriptors[v]
}

// Trigger returns the key that starts v.
func (v Variant) Trigger() rune {
	return v.Descriptor().Trigger
}

// Lookup returns the variant started by trigger.
func Lookup(trigger rune) (Variant, bool) {
	v, ok := triggers[trigger]
	return v, ok
}

// IsTrigger returns true if r starts a sneak motion.
func IsTrigger(r rune) bool {
	_, ok := triggers[r]
	return ok
}

// Variants returns all variants in declaration order.
func Variants() []Variant {
	return []Variant{Forward, Backward, TilForward, TilBackward}
}

// ParseVariant converts a variant name or trigger key into a Variant.
func ParseVariant(s string) (Variant, bool) {
	if r := []rune(s); len(r) == 1 {
		return Lookup(r[0])
	}
	for _, v := range Variants() {
		if v.String() == s {
			return v, true
		}
	}
	return 0, false
}

// Mirror returns the variant that searches the same way in the opposite
// direction. It is used for the reverse repeat (,).
func Mirror(v Variant) Variant {
	switch v {
	case Forward:
		return Backward
	case Backward:
		return Forward
	case TilForward:
		return TilBackward
	case TilBackward:
		return TilForward
	default:
		return v
	}
}

// SameDirection returns the variant used for the forward repeat (;).
func SameDirection(v Variant) Variant {
	return v
}
