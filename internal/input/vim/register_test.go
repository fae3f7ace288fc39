package vim

import (
	"errors"
	"testing"
)

type fakeClipboard struct {
	text     string
	writeErr error
	readErr  error
	writes   int
}

func (c *fakeClipboard) Write(text string) error {
	c.writes++
	if c.writeErr != nil {
		return c.writeErr
	}
	c.text = text
	return nil
}

func (c *fakeClipboard) Read() (string, error) {
	if c.readErr != nil {
		return "", c.readErr
	}
	return c.text, nil
}

func TestClipboardRegisters(t *testing.T) {
	cb := &fakeClipboard{}
	rs := NewRegisterStore(WithClipboard(cb))

	if err := rs.Set(RegisterClipboard, "copied", true); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if cb.text != "copied" {
		t.Errorf("clipboard = %q, want copied", cb.text)
	}
	if got := rs.Get(RegisterUnnamed); got != "copied" {
		t.Errorf("unnamed = %q, want copied", got)
	}

	cb.text = "from outside"
	if got := rs.Get(RegisterSelection); got != "from outside" {
		t.Errorf("* register = %q, want the clipboard text", got)
	}

	rs.Set('a', "plain", false)
	if cb.writes != 1 {
		t.Errorf("named register wrote to the clipboard (%d writes)", cb.writes)
	}
}

func TestClipboardRegisterFailures(t *testing.T) {
	cb := &fakeClipboard{writeErr: errors.New("no clipboard tool"), readErr: errors.New("no clipboard tool")}
	rs := NewRegisterStore(WithClipboard(cb))

	if err := rs.Set(RegisterClipboard, "kept", false); err == nil {
		t.Fatal("Set() should report the clipboard error")
	}
	if got := rs.Get(RegisterClipboard); got != "kept" {
		t.Errorf("+ register = %q, want the stored text on read failure", got)
	}
	if got := rs.Get(RegisterUnnamed); got != "kept" {
		t.Errorf("unnamed = %q, want kept", got)
	}
}

func TestClipboardRegistersWithoutClipboard(t *testing.T) {
	rs := NewRegisterStore()
	if err := rs.Set(RegisterSelection, "local", false); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := rs.Get(RegisterSelection); got != "local" {
		t.Errorf("* register = %q, want local", got)
	}
}

func TestIsValidRegister(t *testing.T) {
	for _, r := range []rune{'"', '0', '_', 'a', 'Z', '+', '*'} {
		if !IsValidRegister(r) {
			t.Errorf("IsValidRegister(%q) = false", r)
		}
	}
	for _, r := range []rune{'1', '!', ' ', 'é'} {
		if IsValidRegister(r) {
			t.Errorf("IsValidRegister(%q) = true", r)
		}
	}
}
