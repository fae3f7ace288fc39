package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/sneak/internal/engine/buffer"
	"github.com/dshills/sneak/internal/engine/cursor"
	"github.com/dshills/sneak/internal/sneak"
)

// ModuleName is the global the editor API is installed under.
const ModuleName = "sneak"

// Host is the editor side of the sneak module.
type Host interface {
	// Settings returns the current sneak settings.
	Settings() sneak.Settings

	// SetSetting changes one boolean setting by config path.
	SetSetting(path string, value bool) error

	// Find reports where a sneak would land without moving the cursor.
	Find(q sneak.Query, v sneak.Variant) (buffer.Point, bool)

	// Jump performs a sneak and moves the cursor.
	Jump(q sneak.Query, v sneak.Variant) (buffer.Point, bool, error)

	// Position returns the cursor position.
	Position() buffer.Point

	// Jumps returns the jump list, oldest first.
	Jumps() []cursor.Jump

	// GoToJump moves the cursor to the jump list entry with id.
	GoToJump(id string) (buffer.Point, bool)
}

// settingAliases maps short names to config paths.
var settingAliases = map[string]string{
	"enabled":                   "sneak.enabled",
	"useIgnorecaseAndSmartcase": "sneak.useIgnorecaseAndSmartcase",
	"ignorecase":                "search.ignorecase",
	"smartcase":                 "search.smartcase",
}

// SettingPath resolves a short setting name to its config path. Full
// paths are returned unchanged.
func SettingPath(name string) string {
	if path, ok := settingAliases[name]; ok {
		return path
	}
	return name
}

// Module implements the sneak Lua module.
type Module struct {
	host Host
}

// NewModule creates the module for host.
func NewModule(host Host) *Module {
	return &Module{host: host}
}

// Register installs the module into s.
func (m *Module) Register(s *State) {
	s.RegisterModule(ModuleName, map[string]lua.LGFunction{
		"settings": m.settings,
		"set":      m.set,
		"find":     m.find,
		"jump":     m.jump,
		"position": m.position,
		"jumps":    m.jumps,
		"gotojump": m.gotojump,
	})
}

// settings() -> table
func (m *Module) settings(L *lua.LState) int {
	st := m.host.Settings()
	tbl := L.NewTable()
	tbl.RawSetString("enabled", lua.LBool(st.Enabled))
	tbl.RawSetString("useIgnorecaseAndSmartcase", lua.LBool(st.UseIgnorecaseAndSmartcase))
	tbl.RawSetString("ignorecase", lua.LBool(st.IgnoreCase))
	tbl.RawSetString("smartcase", lua.LBool(st.SmartCase))
	L.Push(tbl)
	return 1
}

// set(name, value)
func (m *Module) set(L *lua.LState) int {
	name := L.CheckString(1)
	value := L.CheckBool(2)
	if err := m.host.SetSetting(SettingPath(name), value); err != nil {
		L.RaiseError("sneak.set(%q): %v", name, err)
	}
	return 0
}

// find(query[, variant]) -> line, col | nil
func (m *Module) find(L *lua.LState) int {
	q, v := checkQuery(L)
	p, ok := m.host.Find(q, v)
	return pushPoint(L, p, ok)
}

// jump(query[, variant]) -> line, col | nil
func (m *Module) jump(L *lua.LState) int {
	q, v := checkQuery(L)
	p, ok, err := m.host.Jump(q, v)
	if err != nil {
		L.RaiseError("sneak.jump: %v", err)
	}
	return pushPoint(L, p, ok)
}

// position() -> line, col
func (m *Module) position(L *lua.LState) int {
	return pushPoint(L, m.host.Position(), true)
}

// jumps() -> {{id, line, col}, ...}
func (m *Module) jumps(L *lua.LState) int {
	tbl := L.NewTable()
	for _, j := range m.host.Jumps() {
		entry := L.NewTable()
		entry.RawSetString("id", lua.LString(j.ID))
		entry.RawSetString("line", lua.LNumber(j.Point.Line))
		entry.RawSetString("col", lua.LNumber(j.Point.Column))
		tbl.Append(entry)
	}
	L.Push(tbl)
	return 1
}

// gotojump(id) -> line, col | nil
func (m *Module) gotojump(L *lua.LState) int {
	p, ok := m.host.GoToJump(L.CheckString(1))
	return pushPoint(L, p, ok)
}

// checkQuery reads the query and optional variant arguments.
func checkQuery(L *lua.LState) (sneak.Query, sneak.Variant) {
	text := []rune(L.CheckString(1))
	if len(text) == 0 || len(text) > 2 {
		L.ArgError(1, "query must be one or two characters")
	}

	v := sneak.Forward
	if name := L.OptString(2, ""); name != "" {
		var ok bool
		if v, ok = sneak.ParseVariant(name); !ok {
			L.ArgError(2, fmt.Sprintf("unknown variant %q", name))
		}
	}

	second := sneak.Terminator
	if len(text) == 2 {
		second = text[1]
	}
	return sneak.NewQuery(text[0], second), v
}

func pushPoint(L *lua.LState, p buffer.Point, ok bool) int {
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(p.Line))
	L.Push(lua.LNumber(p.Column))
	return 2
}
