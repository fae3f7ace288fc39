package edit_test

import (
	"errors"
	"testing"

	"github.com/dshills/sneak/internal/dispatcher/execctx"
	"github.com/dshills/sneak/internal/dispatcher/handler"
	"github.com/dshills/sneak/internal/dispatcher/handlers/edit"
	"github.com/dshills/sneak/internal/engine/buffer"
	"github.com/dshills/sneak/internal/engine/cursor"
	"github.com/dshills/sneak/internal/engine/history"
	"github.com/dshills/sneak/internal/input"
)

type fixture struct {
	buf  *buffer.Buffer
	hist *history.History
	ctx  *execctx.ExecutionContext
}

// newFixture deletes each range in turn, recording it the way the
// operator handler does.
func newFixture(t *testing.T, text string, deletes ...buffer.Range) *fixture {
	t.Helper()
	f := &fixture{
		buf:  buffer.NewBufferFromString(text),
		hist: history.NewHistory(0),
	}
	f.ctx = execctx.New().WithEngine(f.buf).WithCursor(cursor.New()).WithHistory(f.hist)

	for _, r := range deletes {
		removed, err := f.buf.Delete(r)
		if err != nil {
			t.Fatalf("delete %s: %v", r, err)
		}
		f.hist.Push(history.NewDeleteOperation(r, removed).WithCursors(r.End, r.Start))
	}
	return f
}

func rng(line1, col1, line2, col2 uint32) buffer.Range {
	return buffer.Range{
		Start: buffer.Point{Line: line1, Column: col1},
		End:   buffer.Point{Line: line2, Column: col2},
	}
}

func TestUndoRestoresTextAndCursor(t *testing.T) {
	f := newFixture(t, "the cat sat", rng(0, 4, 0, 8))
	h := edit.NewHandler()

	res := h.HandleAction(input.Action{Name: edit.ActionUndo}, f.ctx)
	if res.Status != handler.StatusOK {
		t.Fatalf("status = %s (%v)", res.Status, res.Error)
	}
	if f.buf.Text() != "the cat sat" {
		t.Errorf("text = %q", f.buf.Text())
	}
	if got := f.ctx.Cursor.Get(); got != (buffer.Point{Column: 8}) {
		t.Errorf("cursor = %s, want 0:8", got)
	}

	res = h.HandleAction(input.Action{Name: edit.ActionRedo}, f.ctx)
	if res.Status != handler.StatusOK {
		t.Fatalf("redo status = %s (%v)", res.Status, res.Error)
	}
	if f.buf.Text() != "the sat" {
		t.Errorf("text after redo = %q", f.buf.Text())
	}
	if got := f.ctx.Cursor.Get(); got != (buffer.Point{Column: 4}) {
		t.Errorf("cursor after redo = %s, want 0:4", got)
	}
}

func TestUndoCount(t *testing.T) {
	f := newFixture(t, "abcdef", rng(0, 0, 0, 1), rng(0, 0, 0, 1), rng(0, 0, 0, 1))
	h := edit.NewHandler()

	res := h.HandleAction(input.Action{Name: edit.ActionUndo}, f.ctx.WithCount(2))
	if res.Status != handler.StatusOK {
		t.Fatalf("status = %s (%v)", res.Status, res.Error)
	}
	if f.buf.Text() != "bcdef" {
		t.Errorf("text = %q, want bcdef", f.buf.Text())
	}
	if v, _ := res.GetData("changes"); v != 2 {
		t.Errorf("changes = %v, want 2", v)
	}

	// A count past the end applies what is left.
	res = h.HandleAction(input.Action{Name: edit.ActionUndo}, f.ctx.WithCount(5))
	if res.Status != handler.StatusOK {
		t.Fatalf("status = %s", res.Status)
	}
	if f.buf.Text() != "abcdef" {
		t.Errorf("text = %q, want abcdef", f.buf.Text())
	}
}

func TestExhaustedStacks(t *testing.T) {
	f := newFixture(t, "abc")
	h := edit.NewHandler()

	tests := []struct {
		action  string
		message string
	}{
		{edit.ActionUndo, edit.MessageOldest},
		{edit.ActionRedo, edit.MessageNewest},
	}
	for _, tt := range tests {
		res := h.HandleAction(input.Action{Name: tt.action}, f.ctx)
		if res.Status != handler.StatusNoOp {
			t.Errorf("%s: status = %s, want no-op", tt.action, res.Status)
		}
		if res.Message != tt.message {
			t.Errorf("%s: message = %q, want %q", tt.action, res.Message, tt.message)
		}
	}
}

func TestUndoErrors(t *testing.T) {
	h := edit.NewHandler()

	res := h.HandleAction(input.Action{Name: edit.ActionUndo}, execctx.New())
	if res.Error != execctx.ErrMissingEngine {
		t.Errorf("missing engine error = %v", res.Error)
	}

	ctx := execctx.New().WithEngine(buffer.NewBufferFromString("abc"))
	res = h.HandleAction(input.Action{Name: edit.ActionUndo}, ctx)
	if !errors.Is(res.Error, edit.ErrNoHistory) {
		t.Errorf("missing history error = %v", res.Error)
	}

	if h.CanHandle("edit.paste") {
		t.Error("edit.paste should not be handled")
	}
}
