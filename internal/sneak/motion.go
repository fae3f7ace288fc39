package sneak

// State is the context a motion executes in.
type State struct {
	// Document is scanned read-only.
	Document Document

	// Settings is the configuration snapshot for this execution.
	Settings Settings

	// OperatorPending is true when the motion supplies the range of an
	// operator such as delete or change.
	OperatorPending bool

	// Session receives the repeat handles. It may be nil.
	Session *Session
}

// OperatorRange is the span a pending operator acts on.
// Start is always inclusive. End is inclusive for forward motions and
// exclusive for backward ones, where it is the cursor the motion left.
type OperatorRange struct {
	Start     Position
	End       Position
	Inclusive bool
}

// Outcome is the result of executing a motion.
type Outcome struct {
	// Target is the landing position, or the operator endpoint when an
	// operator is pending. It equals the origin when nothing matched.
	Target Position

	// Found reports whether the query matched.
	Found bool

	// Range is set when an operator was pending.
	Range *OperatorRange
}

// Motion is one bound sneak: a variant plus its query characters.
type Motion struct {
	variant  Variant
	first    rune
	second   rune
	isRepeat bool
}

// NewMotion builds a motion from a key sequence [trigger, c1, c2].
// A missing c2 is treated as the Terminator. isRepeat marks replays, which
// never record repeat handles.
func NewMotion(keys []rune, isRepeat bool) (*Motion, error) {
	if len(keys) < 2 {
		return nil, ErrIncompleteKeys
	}
	v, ok := Lookup(keys[0])
	if !ok {
		return nil, ErrUnknownTrigger
	}
	second := Terminator
	if len(keys) > 2 {
		second = keys[2]
	}
	return &Motion{variant: v, first: keys[1], second: second, isRepeat: isRepeat}, nil
}

// Variant returns the motion's variant.
func (m *Motion) Variant() Variant {
	return m.variant
}

// IsRepeat reports whether m is a replay.
func (m *Motion) IsRepeat() bool {
	return m.isRepeat
}

// Query returns the normalized query.
func (m *Motion) Query() Query {
	return NewQuery(m.first, m.second)
}

// Keys returns the key sequence that would start this motion.
func (m *Motion) Keys() []rune {
	return []rune{m.variant.Trigger(), m.first, m.second}
}

// Replay returns a replay of m's query using variant v.
func (m *Motion) Replay(v Variant) *Motion {
	return &Motion{variant: v, first: m.first, second: m.second, isRepeat: true}
}

// CouldApply reports whether m should handle keys in state st.
func (m *Motion) CouldApply(st State, keys []rune) bool {
	trigger := m.variant.Trigger()
	return st.Settings.Enabled &&
		MatchesKeys(trigger, keys) &&
		keys[0] == trigger
}

// MatchesKeys reports whether keys has the shape [trigger, <char>, <char>].
func MatchesKeys(trigger rune, keys []rune) bool {
	if len(keys) != 3 || keys[0] != trigger {
		return false
	}
	return keys[1] != 0 && keys[2] != 0
}

// Exec runs the motion from pos.
// A motion that is not a replay first stores its repeat handles in
// st.Session.
func (m *Motion) Exec(pos Position, st *State) Outcome {
	if !m.isRepeat && st.Session != nil {
		st.Session.Record(m)
	}

	target, found := Search(st.Document, pos, m.Query(), m.variant, st.OperatorPending, st.Settings)

	out := Outcome{Target: target, Found: found}
	if st.OperatorPending {
		out.Range = operatorRange(st.Document, pos, target, m.variant.Descriptor().Direction)
	}
	return out
}

// operatorRange shapes the span by scan direction. An upward range ends
// at the origin, exclusive, and is empty when target is the origin. A
// downward range is inclusive and never reaches past the last character
// of the target line.
func operatorRange(doc Document, origin, target Position, dir Direction) *OperatorRange {
	if dir == Up {
		return &OperatorRange{Start: target, End: origin, Inclusive: false}
	}
	if n := uint32(len([]rune(doc.LineText(target.Line)))); n > 0 && target.Column >= n {
		target.Column = n - 1
	}
	return &OperatorRange{Start: origin, End: target, Inclusive: true}
}

// Session holds the repeat handles left by the last user-initiated sneak.
// It is written by one command at a time and needs no locking.
type Session struct {
	// LastSameDirection repeats the last sneak (;).
	LastSameDirection *Motion

	// LastOppositeDirection repeats the last sneak mirrored (,).
	LastOppositeDirection *Motion
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// Record stores replays of m for both repeat commands.
func (s *Session) Record(m *Motion) {
	s.LastSameDirection = m.Replay(SameDirection(m.variant))
	s.LastOppositeDirection = m.Replay(Mirror(m.variant))
}

// Repeat returns the handle for ; (reverse false) or , (reverse true).
// It returns nil before any sneak has run.
func (s *Session) Repeat(reverse bool) *Motion {
	if reverse {
		return s.LastOppositeDirection
	}
	return s.LastSameDirection
}
