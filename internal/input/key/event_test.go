package key

import "testing"

func TestEventChar(t *testing.T) {
	tests := []struct {
		name   string
		event  Event
		want   rune
		wantOK bool
	}{
		{"plain rune", NewRuneEvent('a', ModNone), 'a', true},
		{"shifted rune", NewRuneEvent('A', ModShift), 'A', true},
		{"enter", NewSpecialEvent(KeyEnter, ModNone), '\n', true},
		{"tab", NewSpecialEvent(KeyTab, ModNone), '\t', true},
		{"ctrl rune", NewRuneEvent('o', ModCtrl), 0, false},
		{"escape", NewSpecialEvent(KeyEscape, ModNone), 0, false},
		{"zero rune", Event{Key: KeyRune}, 0, false},
	}

	for _, tt := range tests {
		got, ok := tt.event.Char()
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("%s: Char() = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('f', ModNone), "f"},
		{NewRuneEvent('F', ModShift), "F"},
		{NewRuneEvent(' ', ModNone), "<Space>"},
		{NewRuneEvent('o', ModCtrl), "<C-o>"},
		{NewSpecialEvent(KeyEnter, ModNone), "<CR>"},
		{NewSpecialEvent(KeyEscape, ModNone), "<Esc>"},
		{NewSpecialEvent(KeyLeft, ModCtrl|ModShift), "<C-S-Left>"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.event, got, tt.want)
		}
	}
}

func TestEventMatches(t *testing.T) {
	ev := NewRuneEvent('o', ModCtrl)
	if !ev.Matches("<C-o>") {
		t.Error("ctrl-o should match <C-o>")
	}
	if ev.Matches("o") {
		t.Error("ctrl-o should not match plain o")
	}
	if !NewSpecialEvent(KeyEscape, ModNone).IsEscape() {
		t.Error("IsEscape() = false for Esc")
	}
}

func TestEventStringRoundTrip(t *testing.T) {
	for _, spec := range []string{"a", "Z", "<CR>", "<Esc>", "<C-o>", "<Space>", "<lt>", "<Tab>"} {
		ev, err := Parse(spec)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", spec, err)
		}
		if got := ev.String(); got != spec {
			t.Errorf("Parse(%q).String() = %q", spec, got)
		}
	}
}
