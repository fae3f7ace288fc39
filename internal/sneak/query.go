package sneak

import "unicode"

// Terminator is the key value that stands in for a missing second query
// character. It is what the input layer delivers when Enter is pressed
// right after the first character.
const Terminator = '\n'

// Query is the literal text a sneak looks for. It holds one or two
// characters after normalization.
type Query struct {
	runes []rune
}

// NewQuery builds a query from the two characters typed after the trigger.
// A Terminator (or zero) second character yields a single-character query.
func NewQuery(first, second rune) Query {
	if second == Terminator || second == 0 {
		return Query{runes: []rune{first}}
	}
	return Query{runes: []rune{first, second}}
}

// String returns the query text.
func (q Query) String() string {
	return string(q.runes)
}

// Len returns the number of characters in the query.
func (q Query) Len() int {
	return len(q.runes)
}

// IsSingle reports whether the query was shortened to one character.
func (q Query) IsSingle() bool {
	return len(q.runes) == 1
}

// HasUpper reports whether the query contains an uppercase letter.
func (q Query) HasUpper() bool {
	for _, r := range q.runes {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// Settings carries the configuration a sneak consults.
type Settings struct {
	// Enabled turns the sneak motions on. When false, CouldApply rejects
	// every key sequence.
	Enabled bool

	// UseIgnorecaseAndSmartcase lets the sneak honor IgnoreCase and SmartCase.
	UseIgnorecaseAndSmartcase bool

	// IgnoreCase is the editor-wide case-insensitive search setting.
	IgnoreCase bool

	// SmartCase disables IgnoreCase for queries containing uppercase letters.
	SmartCase bool
}

// Fold reports whether matching q should ignore case.
func (s Settings) Fold(q Query) bool {
	return s.UseIgnorecaseAndSmartcase &&
		s.IgnoreCase &&
		!(s.SmartCase && q.HasUpper())
}

// foldRunes lowercases rs one rune at a time so indexes line up with the
// original text.
func foldRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}
