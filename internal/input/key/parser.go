package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a single key written as a character or in angle-bracket
// notation ("<CR>", "<Esc>", "<C-o>", "<lt>").
func Parse(spec string) (Event, error) {
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseBracket(spec[1 : len(spec)-1])
	}

	r, size := utf8.DecodeRuneInString(spec)
	if size != len(spec) || r == utf8.RuneError {
		return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	}
	return runeEvent(r, ModNone), nil
}

// parseBracket parses the inside of <...> such as "C-o", "CR" or "lt".
func parseBracket(inner string) (Event, error) {
	parts := strings.Split(inner, "-")
	name := parts[len(parts)-1]
	if name == "" {
		// "<C-->" names the minus key.
		if len(parts) < 2 {
			return Event{}, fmt.Errorf("%w: <%s>", ErrInvalidSpec, inner)
		}
		name = "-"
		parts = parts[:len(parts)-1]
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		m, ok := modifierFromPrefix(p)
		if !ok {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(m)
	}

	lower := strings.ToLower(name)
	if k, ok := keyNameMap[lower]; ok {
		return NewSpecialEvent(k, mods), nil
	}
	if r, ok := runeNameMap[lower]; ok {
		return runeEvent(r, mods), nil
	}
	if r, size := utf8.DecodeRuneInString(name); size == len(name) {
		if mods.HasCtrl() {
			r = unicode.ToLower(r)
		}
		return runeEvent(r, mods), nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
}

func runeEvent(r rune, mods Modifier) Event {
	// Uppercase letters carry an implicit Shift.
	if unicode.IsUpper(r) {
		mods = mods.With(ModShift)
	}
	return NewRuneEvent(r, mods)
}

// ParseSequence parses a continuous key string such as "dfa<CR>" or
// "<C-o>fab". Every character outside angle brackets is a key of its own,
// spaces included. A '<' that does not open a known key name is literal.
func ParseSequence(s string) (*Sequence, error) {
	seq := NewSequence()

	for i := 0; i < len(s); {
		if s[i] == '<' {
			if end := strings.IndexByte(s[i:], '>'); end > 1 {
				if ev, err := Parse(s[i : i+end+1]); err == nil {
					seq.Add(ev)
					i += end + 1
					continue
				}
			}
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, fmt.Errorf("%w: invalid UTF-8 at byte %d", ErrInvalidSpec, i)
		}
		seq.Add(runeEvent(r, ModNone))
		i += size
	}

	return seq, nil
}

// MustParseSequence parses a sequence string and panics on error.
// Use only for known-valid sequences in initialization code.
func MustParseSequence(s string) *Sequence {
	seq, err := ParseSequence(s)
	if err != nil {
		panic("invalid key sequence: " + s + ": " + err.Error())
	}
	return seq
}
