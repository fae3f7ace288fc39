package statusline

import (
	"strings"
	"testing"

	"github.com/dshills/sneak/internal/renderer/backend"
)

func render(s *StatusLine, width int) string {
	b := backend.NewNullBackend(width, 1)
	b.Init()
	s.Resize(width)
	s.Render(b, 0)
	return b.Row(0)
}

func TestStatusLineDefault(t *testing.T) {
	s := New()
	got := render(s, 40)

	if !strings.HasPrefix(got, " NORMAL ") {
		t.Errorf("row = %q, want mode first", got)
	}
	if !strings.Contains(got, "[No Name]") {
		t.Errorf("row = %q, want [No Name]", got)
	}
	if !strings.HasSuffix(got, "1:1") {
		t.Errorf("row = %q, want position 1:1 at the end", got)
	}
}

func TestStatusLinePositionIsOneBased(t *testing.T) {
	s := New()
	s.SetPosition(2, 7)
	if got := render(s, 40); !strings.HasSuffix(got, "3:8") {
		t.Errorf("row = %q, want 3:8", got)
	}
}

func TestStatusLinePendingAndMessage(t *testing.T) {
	s := New()
	s.SetFilename("notes.txt")
	s.SetModified(true)
	s.SetPending("df")
	got := render(s, 60)
	if !strings.Contains(got, "notes.txt [+]") {
		t.Errorf("row = %q, want filename", got)
	}
	if !strings.Contains(got, "df  1:1") {
		t.Errorf("row = %q, want pending keys", got)
	}

	s.SetMessage("not found: zz", MessageInfo)
	got = render(s, 60)
	if !strings.Contains(got, "not found: zz") || strings.Contains(got, "notes.txt") {
		t.Errorf("row = %q, want message in place of filename", got)
	}

	s.ClearMessage()
	if s.Message() != "" {
		t.Error("ClearMessage did not clear")
	}
}

func TestStatusLineClipsLongText(t *testing.T) {
	s := New()
	s.SetMessage(strings.Repeat("x", 100), MessageError)
	got := render(s, 30)
	if !strings.HasSuffix(got, "1:1") {
		t.Errorf("row = %q, position should survive clipping", got)
	}
}
