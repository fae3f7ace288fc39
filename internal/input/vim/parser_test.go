package vim

import (
	"testing"

	"github.com/dshills/sneak/internal/input/key"
	"github.com/dshills/sneak/internal/sneak"
)

// feed parses a key string and returns the last result.
func feed(t *testing.T, p *Parser, keys string) ParseResult {
	t.Helper()
	seq, err := key.ParseSequence(keys)
	if err != nil {
		t.Fatalf("ParseSequence(%q): %v", keys, err)
	}
	var result ParseResult
	for _, ev := range seq.Events {
		result = p.Parse(ev)
	}
	return result
}

func TestParserSneak(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantAction string
		wantKeys   string
		wantOp     string
	}{
		{"forward", "fab", "sneak.forward", "fab", ""},
		{"backward", "Fab", "sneak.backward", "Fab", ""},
		{"till forward", "tab", "sneak.tillForward", "tab", ""},
		{"till backward", "Tab", "sneak.tillBackward", "Tab", ""},
		{"single character", "fx<CR>", "sneak.forward", "fx\n", ""},
		{"space in query", "f b", "sneak.forward", "f b", ""},
		{"trigger as query", "fff", "sneak.forward", "fff", ""},
		{"delete", "dfab", "sneak.forward", "fab", "delete"},
		{"change till", "ctab", "sneak.tillForward", "tab", "change"},
		{"yank backward", "yFx<CR>", "sneak.backward", "Fx\n", "yank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser()
			result := feed(t, p, tt.input)

			if result.Status != StatusComplete {
				t.Fatalf("status = %v, want complete", result.Status)
			}
			cmd := result.Command
			if cmd.Action != tt.wantAction {
				t.Errorf("action = %q, want %q", cmd.Action, tt.wantAction)
			}
			if string(cmd.Keys) != tt.wantKeys {
				t.Errorf("keys = %q, want %q", string(cmd.Keys), tt.wantKeys)
			}
			gotOp := ""
			if cmd.Operator != nil {
				gotOp = cmd.Operator.Name
			}
			if gotOp != tt.wantOp {
				t.Errorf("operator = %q, want %q", gotOp, tt.wantOp)
			}
			if p.State() != StateInitial {
				t.Errorf("parser state = %v after completion", p.State())
			}
		})
	}
}

func TestParserSneakKeysBuildMotion(t *testing.T) {
	p := NewParser()
	result := feed(t, p, "tx<CR>")

	m, err := sneak.NewMotion(result.Command.Keys, false)
	if err != nil {
		t.Fatalf("NewMotion() error = %v", err)
	}
	if m.Variant() != sneak.TilForward || !m.Query().IsSingle() {
		t.Errorf("motion = %v %q", m.Variant(), m.Query())
	}
}

func TestParserPendingStates(t *testing.T) {
	p := NewParser()

	steps := []struct {
		key     string
		state   ParseState
		display string
	}{
		{"2", StateCount, "2"},
		{`"`, StateRegister, `2"`},
		{"a", StateCount, `2"a`},
		{"d", StateOperator, `2"ad`},
		{"f", StateSneakFirst, `2"adf`},
		{"x", StateSneakSecond, `2"adfx`},
	}

	for _, s := range steps {
		result := feed(t, p, s.key)
		if result.Status != StatusPending {
			t.Fatalf("after %q: status = %v, want pending", s.key, result.Status)
		}
		if p.State() != s.state {
			t.Errorf("after %q: state = %v, want %v", s.key, p.State(), s.state)
		}
		if result.PendingDisplay != s.display {
			t.Errorf("after %q: display = %q, want %q", s.key, result.PendingDisplay, s.display)
		}
	}

	result := feed(t, p, "y")
	if result.Status != StatusComplete {
		t.Fatalf("status = %v, want complete", result.Status)
	}
	cmd := result.Command
	if cmd.Count != 2 || cmd.Register != 'a' || cmd.Operator != &OpDelete {
		t.Errorf("command = %+v", cmd)
	}
}

func TestParserRepeats(t *testing.T) {
	tests := []struct {
		input      string
		wantAction string
		wantOp     *Operator
	}{
		{";", ActionSneakRepeat, nil},
		{",", ActionSneakRepeatReverse, nil},
		{"d;", ActionSneakRepeat, &OpDelete},
		{"y,", ActionSneakRepeatReverse, &OpYank},
	}

	for _, tt := range tests {
		p := NewParser()
		result := feed(t, p, tt.input)
		if result.Status != StatusComplete {
			t.Fatalf("%q: status = %v", tt.input, result.Status)
		}
		if result.Command.Action != tt.wantAction {
			t.Errorf("%q: action = %q, want %q", tt.input, result.Command.Action, tt.wantAction)
		}
		if result.Command.Operator != tt.wantOp {
			t.Errorf("%q: operator = %v", tt.input, result.Command.Operator)
		}
	}
}

func TestParserMotions(t *testing.T) {
	tests := []struct {
		input      string
		wantAction string
		wantCount  int
	}{
		{"h", "cursor.left", 0},
		{"j", "cursor.down", 0},
		{"k", "cursor.up", 0},
		{"l", "cursor.right", 0},
		{"0", "cursor.lineStart", 0},
		{"$", "cursor.lineEnd", 0},
		{"5j", "cursor.down", 5},
		{"10l", "cursor.right", 10},
		{"<C-o>", "cursor.jumpBack", 0},
		{"<Tab>", "cursor.jumpForward", 0},
		{"<Left>", "cursor.left", 0},
		{"3<Down>", "cursor.down", 3},
		{"u", "edit.undo", 0},
		{"2u", "edit.undo", 2},
		{"<C-r>", "edit.redo", 0},
	}

	for _, tt := range tests {
		p := NewParser()
		result := feed(t, p, tt.input)
		if result.Status != StatusComplete {
			t.Fatalf("%q: status = %v, want complete", tt.input, result.Status)
		}
		if result.Command.Action != tt.wantAction {
			t.Errorf("%q: action = %q, want %q", tt.input, result.Command.Action, tt.wantAction)
		}
		if result.Command.Count != tt.wantCount {
			t.Errorf("%q: count = %d, want %d", tt.input, result.Command.Count, tt.wantCount)
		}
	}
}

func TestParserInvalidAndCancel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ParseStatus
	}{
		{"unknown key", "q", StatusPassthrough},
		{"unknown after count", "3q", StatusInvalid},
		{"operator then motion", "dl", StatusInvalid},
		{"operator then undo", "du", StatusInvalid},
		{"bad register", `"!`, StatusInvalid},
		{"enter as first character", "f<CR>", StatusInvalid},
		{"special key mid sneak", "fa<Left>", StatusInvalid},
		{"escape mid sneak", "fa<Esc>", StatusPassthrough},
		{"unmapped special key", "<C-x>", StatusPassthrough},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser()
			result := feed(t, p, tt.input)
			if result.Status != tt.want {
				t.Errorf("status = %v, want %v", result.Status, tt.want)
			}
			if p.State() != StateInitial || p.PendingKeys() != "" {
				t.Errorf("parser not reset: state %v, pending %q", p.State(), p.PendingKeys())
			}
		})
	}
}

func TestRegisterStore(t *testing.T) {
	rs := NewRegisterStore()

	rs.Set(0, "hello", true)
	if got := rs.Get(0); got != "hello" {
		t.Errorf("unnamed = %q, want hello", got)
	}
	if got := rs.Get(RegisterYank); got != "hello" {
		t.Errorf("yank register = %q, want hello", got)
	}

	rs.Set('a', "one", false)
	rs.Set('A', "two", false)
	if got := rs.Get('a'); got != "onetwo" {
		t.Errorf("register a = %q, want onetwo", got)
	}
	if got := rs.Get(RegisterUnnamed); got != "onetwo" {
		t.Errorf("unnamed = %q, want onetwo", got)
	}
	if got := rs.Get(RegisterYank); got != "hello" {
		t.Errorf("delete should not touch register 0, got %q", got)
	}

	rs.Set(RegisterBlackHole, "gone", false)
	if got := rs.Get(0); got != "onetwo" {
		t.Errorf("black hole write changed unnamed to %q", got)
	}
}

func TestCountState(t *testing.T) {
	var c CountState
	if c.AccumulateDigit('0') {
		t.Error("leading zero should be refused")
	}
	c.AccumulateDigit('1')
	c.AccumulateDigit('0')
	if c.Get() != 10 {
		t.Errorf("Get() = %d, want 10", c.Get())
	}
	c.Reset()
	if c.Active || c.Get() != 1 {
		t.Error("Reset() should clear the count")
	}
}
