package app

import (
	"github.com/dshills/sneak/internal/engine/buffer"
	"github.com/dshills/sneak/internal/engine/cursor"
	"github.com/dshills/sneak/internal/input"
	"github.com/dshills/sneak/internal/input/vim"
	"github.com/dshills/sneak/internal/sneak"
)

// luaHost exposes the application to the Lua sneak module.
type luaHost struct {
	app *Application
}

func (h *luaHost) Settings() sneak.Settings {
	return h.app.config.Settings()
}

func (h *luaHost) SetSetting(path string, value bool) error {
	return h.app.config.Set(path, value)
}

// Find runs the search without touching the cursor, the jump list or the
// repeat handles.
func (h *luaHost) Find(q sneak.Query, v sneak.Variant) (buffer.Point, bool) {
	doc := h.app.doc
	return sneak.Search(doc.Buffer, doc.Cursor.Get(), q, v, false, h.app.config.Settings())
}

// Jump dispatches the sneak action the keys would produce, so scripted
// jumps record jumps and repeat handles like typed ones.
func (h *luaHost) Jump(q sneak.Query, v sneak.Variant) (buffer.Point, bool, error) {
	text := []rune(q.String())
	second := sneak.Terminator
	if len(text) > 1 {
		second = text[1]
	}

	action := input.Action{
		Name:   vim.SneakAction(v),
		Source: input.SourcePlugin,
		Count:  1,
		Args:   input.ActionArgs{Keys: []rune{v.Trigger(), text[0], second}},
	}
	res := h.app.dispatchAction(action)
	if res.IsError() {
		return buffer.Point{}, false, res.Error
	}
	return h.app.doc.Cursor.Get(), res.IsOK(), nil
}

func (h *luaHost) Position() buffer.Point {
	return h.app.doc.Cursor.Get()
}

func (h *luaHost) Jumps() []cursor.Jump {
	return h.app.doc.Jumps.Entries()
}

// GoToJump moves to a recorded jump the way <C-o> does, without adding
// a new entry.
func (h *luaHost) GoToJump(id string) (buffer.Point, bool) {
	j, ok := h.app.doc.Jumps.Get(id)
	if !ok {
		return buffer.Point{}, false
	}
	p := h.app.doc.Buffer.ClampPoint(j.Point)
	h.app.doc.Cursor.Set(p)
	return p, true
}
