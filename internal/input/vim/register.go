package vim

import (
	"strings"
	"sync"
	"unicode"

	"github.com/atotto/clipboard"
)

// Register names with special meaning.
const (
	// RegisterUnnamed receives every yank and delete.
	RegisterUnnamed = '"'

	// RegisterYank holds the most recent yank.
	RegisterYank = '0'

	// RegisterBlackHole discards what is written to it.
	RegisterBlackHole = '_'

	// RegisterClipboard and RegisterSelection are backed by the system
	// clipboard.
	RegisterClipboard = '+'
	RegisterSelection = '*'
)

// Clipboard is the system clipboard behind the + and * registers.
type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}

// SystemClipboard uses the platform clipboard tools.
type SystemClipboard struct{}

func (SystemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

func (SystemClipboard) Read() (string, error) {
	return clipboard.ReadAll()
}

// IsClipboardRegister reports whether r is the + or * register.
func IsClipboardRegister(r rune) bool {
	return r == RegisterClipboard || r == RegisterSelection
}

// IsValidRegister returns true if r names a register.
func IsValidRegister(r rune) bool {
	switch {
	case r == RegisterUnnamed, r == RegisterYank, r == RegisterBlackHole:
		return true
	case IsClipboardRegister(r):
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	}
	return false
}

// RegisterStore holds register contents.
type RegisterStore struct {
	mu        sync.RWMutex
	text      map[rune]string
	clipboard Clipboard
}

// RegisterOption configures a RegisterStore.
type RegisterOption func(*RegisterStore)

// WithClipboard backs the + and * registers with c. Without a clipboard
// they behave like ordinary named registers.
func WithClipboard(c Clipboard) RegisterOption {
	return func(rs *RegisterStore) {
		rs.clipboard = c
	}
}

// NewRegisterStore creates an empty register store.
func NewRegisterStore(opts ...RegisterOption) *RegisterStore {
	rs := &RegisterStore{text: make(map[rune]string)}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

// Get returns the content of a register. Uppercase names read the
// lowercase register. Clipboard registers read the clipboard and fall
// back to the last text written through them.
func (rs *RegisterStore) Get(name rune) string {
	if name == 0 {
		name = RegisterUnnamed
	}
	if IsClipboardRegister(name) && rs.clipboard != nil {
		if text, err := rs.clipboard.Read(); err == nil {
			return text
		}
	}
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.text[unicode.ToLower(name)]
}

// Set stores content for an operator.
// The unnamed register always follows the last write. Yanks also fill
// register 0. Uppercase names append to their lowercase register.
// The returned error is from the clipboard; the registers are updated
// regardless.
func (rs *RegisterStore) Set(name rune, content string, yank bool) error {
	if name == RegisterBlackHole {
		return nil
	}
	if name == 0 {
		name = RegisterUnnamed
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	if unicode.IsUpper(name) {
		lower := unicode.ToLower(name)
		var sb strings.Builder
		sb.WriteString(rs.text[lower])
		sb.WriteString(content)
		content = sb.String()
		name = lower
	}

	rs.text[name] = content
	rs.text[RegisterUnnamed] = content
	if yank {
		rs.text[RegisterYank] = content
	}

	if IsClipboardRegister(name) && rs.clipboard != nil {
		return rs.clipboard.Write(content)
	}
	return nil
}
