// Package edit provides the undo and redo handlers.
//
//   - edit.undo (u): revert the last [count] recorded edits
//   - edit.redo (<C-r>): reapply [count] undone edits
//
// Edits are recorded by the operator handlers into the dispatcher's
// history.
package edit

import (
	"errors"
	"fmt"

	"github.com/dshills/sneak/internal/dispatcher/execctx"
	"github.com/dshills/sneak/internal/dispatcher/handler"
	"github.com/dshills/sneak/internal/engine/buffer"
	"github.com/dshills/sneak/internal/engine/history"
	"github.com/dshills/sneak/internal/input"
)

// Action names for history operations.
const (
	ActionUndo = "edit.undo"
	ActionRedo = "edit.redo"
)

// Messages shown when a history stack runs out.
const (
	MessageOldest = "Already at oldest change"
	MessageNewest = "Already at newest change"
)

// ErrNoHistory is returned when no history is attached to the context.
var ErrNoHistory = errors.New("edit: no undo history")

// Handler implements undo and redo.
type Handler struct{}

// NewHandler creates a new edit handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the edit namespace.
func (h *Handler) Namespace() string {
	return "edit"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	return actionName == ActionUndo || actionName == ActionRedo
}

// HandleAction processes an edit action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Engine == nil {
		return handler.Error(execctx.ErrMissingEngine)
	}
	if ctx.History == nil {
		return handler.Error(ErrNoHistory)
	}

	switch action.Name {
	case ActionUndo:
		return h.walk(ctx, "undo", ctx.History.Undo, history.ErrNothingToUndo, MessageOldest, cursorBefore)
	case ActionRedo:
		return h.walk(ctx, "redo", ctx.History.Redo, history.ErrNothingToRedo, MessageNewest, cursorAfter)
	default:
		return handler.Errorf("unknown edit action: %s", action.Name)
	}
}

func cursorBefore(op *history.Operation) buffer.Point { return op.CursorBefore }
func cursorAfter(op *history.Operation) buffer.Point  { return op.CursorAfter }

// walk applies step up to count times and leaves the cursor where the last
// applied operation puts it.
func (h *Handler) walk(
	ctx *execctx.ExecutionContext,
	name string,
	step func(history.Editor) (*history.Operation, error),
	exhausted error,
	message string,
	cursorOf func(*history.Operation) buffer.Point,
) handler.Result {
	var last *history.Operation
	applied := 0
	for i := 0; i < ctx.GetCount(); i++ {
		op, err := step(ctx.Engine)
		if errors.Is(err, exhausted) {
			break
		}
		if err != nil {
			return handler.Error(fmt.Errorf("edit: %s: %w", name, err))
		}
		last = op
		applied++
	}

	if last == nil {
		return handler.NoOpWithMessage(message)
	}

	p := ctx.Engine.ClampPoint(cursorOf(last))
	if ctx.Cursor != nil {
		ctx.Cursor.Set(p)
	}
	ctx.Logger.Debug("%s: %d change(s)", name, applied)

	return handler.Success().WithCursor(p).WithData("changes", applied)
}
