package sneak

import "github.com/dshills/sneak/internal/engine/buffer"

// Position is a zero-based (line, character) coordinate.
type Position = buffer.Point

// Document is the read-only text a sneak scans.
type Document interface {
	LineCount() uint32
	LineText(line uint32) string
}

// Search scans doc from origin for q in the manner of variant v and
// returns where the cursor should land.
//
// The second result is false when nothing matched; origin is then returned
// unchanged. A zero-line document, or an origin line outside the document,
// never matches.
func Search(doc Document, origin Position, q Query, v Variant, operatorPending bool, s Settings) (Position, bool) {
	if doc == nil || q.Len() == 0 {
		return origin, false
	}
	lineCount := doc.LineCount()
	if lineCount == 0 || origin.Line >= lineCount {
		return origin, false
	}

	d := v.Descriptor()
	fold := s.Fold(q)
	needle := q.runes
	if fold {
		needle = foldRunes(needle)
	}

	delta := d.MoveDelta
	if operatorPending {
		delta = d.OperatorDelta
	}

	if d.Direction == Down {
		for line := origin.Line; line < lineCount; line++ {
			hay := lineRunes(doc, line, fold)
			from := 0
			if line == origin.Line {
				from = int(origin.Column) + d.StartOffset
			}
			if idx := indexFrom(hay, needle, from); idx >= 0 {
				return land(line, idx, delta), true
			}
		}
		return origin, false
	}

	for line := int64(origin.Line); line >= 0; line-- {
		hay := lineRunes(doc, uint32(line), fold)
		anchor := len(hay)
		if uint32(line) == origin.Line {
			anchor = int(origin.Column) + d.StartOffset
			if anchor < 0 {
				continue
			}
		}
		if idx := lastIndexAt(hay, needle, anchor); idx >= 0 {
			return land(uint32(line), idx, delta), true
		}
	}
	return origin, false
}

func lineRunes(doc Document, line uint32, fold bool) []rune {
	rs := []rune(doc.LineText(line))
	if fold {
		return foldRunes(rs)
	}
	return rs
}

// land converts a match index into a cursor position. Columns never go
// below zero.
func land(line uint32, idx, delta int) Position {
	col := idx + delta
	if col < 0 {
		col = 0
	}
	return Position{Line: line, Column: uint32(col)}
}

// indexFrom returns the first index >= from at which needle occurs in hay,
// or -1.
func indexFrom(hay, needle []rune, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(needle) <= len(hay); i++ {
		if hasPrefixAt(hay, needle, i) {
			return i
		}
	}
	return -1
}

// lastIndexAt returns the last index <= anchor at which needle occurs in
// hay, or -1.
func lastIndexAt(hay, needle []rune, anchor int) int {
	start := len(hay) - len(needle)
	if anchor < start {
		start = anchor
	}
	for i := start; i >= 0; i-- {
		if hasPrefixAt(hay, needle, i) {
			return i
		}
	}
	return -1
}

func hasPrefixAt(hay, needle []rune, at int) bool {
	for j, r := range needle {
		if hay[at+j] != r {
			return false
		}
	}
	return true
}
