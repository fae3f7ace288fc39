package lua

import (
	"errors"
	"strings"
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/sneak/internal/engine/buffer"
	"github.com/dshills/sneak/internal/engine/cursor"
	"github.com/dshills/sneak/internal/sneak"
)

type mockHost struct {
	settings sneak.Settings
	pos      buffer.Point

	setPath  string
	setValue bool
	setErr   error

	lastQuery   string
	lastVariant sneak.Variant

	target  buffer.Point
	found   bool
	jumpErr error

	jumps []cursor.Jump
}

func (h *mockHost) Settings() sneak.Settings { return h.settings }

func (h *mockHost) SetSetting(path string, value bool) error {
	h.setPath, h.setValue = path, value
	return h.setErr
}

func (h *mockHost) Find(q sneak.Query, v sneak.Variant) (buffer.Point, bool) {
	h.lastQuery, h.lastVariant = q.String(), v
	return h.target, h.found
}

func (h *mockHost) Jump(q sneak.Query, v sneak.Variant) (buffer.Point, bool, error) {
	h.lastQuery, h.lastVariant = q.String(), v
	if h.jumpErr != nil {
		return buffer.Point{}, false, h.jumpErr
	}
	if h.found {
		h.pos = h.target
	}
	return h.pos, h.found, nil
}

func (h *mockHost) Position() buffer.Point { return h.pos }

func (h *mockHost) Jumps() []cursor.Jump { return h.jumps }

func (h *mockHost) GoToJump(id string) (buffer.Point, bool) {
	for _, j := range h.jumps {
		if j.ID == id {
			h.pos = j.Point
			return j.Point, true
		}
	}
	return buffer.Point{}, false
}

func newModuleState(t *testing.T, h Host) *State {
	t.Helper()
	s := NewState()
	t.Cleanup(func() { s.Close() })
	NewModule(h).Register(s)
	return s
}

func TestModuleSettings(t *testing.T) {
	h := &mockHost{settings: sneak.Settings{Enabled: true, SmartCase: true}}
	s := newModuleState(t, h)

	err := s.DoString(`
		local st = sneak.settings()
		enabled = st.enabled
		smart = st.smartcase
		ignore = st.ignorecase
	`)
	if err != nil {
		t.Fatal(err)
	}
	if s.GetGlobal("enabled") != lua.LTrue {
		t.Error("enabled should be true")
	}
	if s.GetGlobal("smart") != lua.LTrue {
		t.Error("smartcase should be true")
	}
	if s.GetGlobal("ignore") != lua.LFalse {
		t.Error("ignorecase should be false")
	}
}

func TestModuleSet(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		wantPath string
		wantVal  bool
	}{
		{"alias", `sneak.set("enabled", true)`, "sneak.enabled", true},
		{"search alias", `sneak.set("ignorecase", false)`, "search.ignorecase", false},
		{"full path", `sneak.set("search.smartcase", true)`, "search.smartcase", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &mockHost{}
			s := newModuleState(t, h)
			if err := s.DoString(tt.code); err != nil {
				t.Fatal(err)
			}
			if h.setPath != tt.wantPath || h.setValue != tt.wantVal {
				t.Errorf("SetSetting(%q, %v), want (%q, %v)", h.setPath, h.setValue, tt.wantPath, tt.wantVal)
			}
		})
	}
}

func TestModuleSetError(t *testing.T) {
	h := &mockHost{setErr: errors.New("unknown setting")}
	s := newModuleState(t, h)

	err := s.DoString(`sneak.set("bogus", true)`)
	if err == nil || !strings.Contains(err.Error(), "unknown setting") {
		t.Errorf("err = %v, want host error", err)
	}
}

func TestModuleFind(t *testing.T) {
	h := &mockHost{target: buffer.Point{Line: 2, Column: 5}, found: true}
	s := newModuleState(t, h)

	if err := s.DoString(`line, col = sneak.find("ab", "F")`); err != nil {
		t.Fatal(err)
	}
	if h.lastQuery != "ab" || h.lastVariant != sneak.Backward {
		t.Errorf("Find(%q, %v), want (ab, backward)", h.lastQuery, h.lastVariant)
	}
	if s.GetGlobal("line") != lua.LNumber(2) || s.GetGlobal("col") != lua.LNumber(5) {
		t.Errorf("got (%v, %v), want (2, 5)", s.GetGlobal("line"), s.GetGlobal("col"))
	}
	if h.pos != (buffer.Point{}) {
		t.Error("find must not move the cursor")
	}
}

func TestModuleFindDefaults(t *testing.T) {
	h := &mockHost{}
	s := newModuleState(t, h)

	if err := s.DoString(`result = sneak.find("x")`); err != nil {
		t.Fatal(err)
	}
	if h.lastVariant != sneak.Forward {
		t.Errorf("variant = %v, want forward", h.lastVariant)
	}
	if h.lastQuery != "x" {
		t.Errorf("query = %q, want x", h.lastQuery)
	}
	if s.GetGlobal("result") != lua.LNil {
		t.Error("no match should return nil")
	}
}

func TestModuleFindBadArgs(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"empty query", `sneak.find("")`},
		{"long query", `sneak.find("abc")`},
		{"bad variant", `sneak.find("ab", "sideways")`},
		{"missing query", `sneak.find()`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newModuleState(t, &mockHost{})
			if err := s.DoString(tt.code); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestModuleJump(t *testing.T) {
	h := &mockHost{target: buffer.Point{Line: 0, Column: 7}, found: true}
	s := newModuleState(t, h)

	err := s.DoString(`
		line, col = sneak.jump("sa", "tillForward")
		pl, pc = sneak.position()
	`)
	if err != nil {
		t.Fatal(err)
	}
	if h.lastVariant != sneak.TilForward {
		t.Errorf("variant = %v, want tillForward", h.lastVariant)
	}
	if s.GetGlobal("col") != lua.LNumber(7) || s.GetGlobal("pc") != lua.LNumber(7) {
		t.Errorf("col = %v, position col = %v, want 7", s.GetGlobal("col"), s.GetGlobal("pc"))
	}
}

func TestModuleJumpError(t *testing.T) {
	h := &mockHost{jumpErr: errors.New("dispatch failed")}
	s := newModuleState(t, h)

	err := s.DoString(`sneak.jump("ab")`)
	if err == nil || !strings.Contains(err.Error(), "dispatch failed") {
		t.Errorf("err = %v, want dispatch error", err)
	}
}

func TestSettingPath(t *testing.T) {
	tests := map[string]string{
		"enabled":                   "sneak.enabled",
		"useIgnorecaseAndSmartcase": "sneak.useIgnorecaseAndSmartcase",
		"smartcase":                 "search.smartcase",
		"logging.level":             "logging.level",
	}
	for in, want := range tests {
		if got := SettingPath(in); got != want {
			t.Errorf("SettingPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestModuleJumps(t *testing.T) {
	h := &mockHost{jumps: []cursor.Jump{
		{ID: "first", Point: buffer.Point{Line: 1, Column: 2}},
		{ID: "second", Point: buffer.Point{Line: 4}},
	}}
	s := newModuleState(t, h)

	err := s.DoString(`
		local js = sneak.jumps()
		count = #js
		first_id = js[1].id
		first_line, first_col = js[1].line, js[1].col
		line, col = sneak.gotojump(js[1].id)
		missing = sneak.gotojump("nope")
	`)
	if err != nil {
		t.Fatal(err)
	}
	if s.GetGlobal("count") != lua.LNumber(2) {
		t.Errorf("count = %v, want 2", s.GetGlobal("count"))
	}
	if s.GetGlobal("first_id") != lua.LString("first") {
		t.Errorf("first id = %v", s.GetGlobal("first_id"))
	}
	if s.GetGlobal("first_line") != lua.LNumber(1) || s.GetGlobal("first_col") != lua.LNumber(2) {
		t.Errorf("first entry = (%v, %v), want (1, 2)", s.GetGlobal("first_line"), s.GetGlobal("first_col"))
	}
	if h.pos != (buffer.Point{Line: 1, Column: 2}) {
		t.Errorf("cursor = %v, want 1:2 after gotojump", h.pos)
	}
	if s.GetGlobal("missing") != lua.LNil {
		t.Error("unknown jump id should return nil")
	}
}
