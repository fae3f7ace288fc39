package operator

import (
	"errors"
	"fmt"

	"github.com/dshills/sneak/internal/dispatcher/execctx"
	"github.com/dshills/sneak/internal/dispatcher/handler"
	"github.com/dshills/sneak/internal/engine/buffer"
	"github.com/dshills/sneak/internal/engine/history"
	"github.com/dshills/sneak/internal/input"
	"github.com/dshills/sneak/internal/input/vim"
)

// Action names for operator operations.
const (
	ActionDelete = "operator.delete" // d
	ActionChange = "operator.change" // c
	ActionYank   = "operator.yank"   // y
)

// RangeKey is the Args.Extra key holding the motion range.
const RangeKey = "range"

// ErrMissingRange is returned when an operator runs without a motion range.
var ErrMissingRange = errors.New("operator: no motion range")

// OperatorHandler handles Vim-style operator commands.
type OperatorHandler struct {
	registers *vim.RegisterStore
}

// NewOperatorHandler creates a new operator handler writing to registers.
// A nil store gets a private one.
func NewOperatorHandler(registers *vim.RegisterStore) *OperatorHandler {
	if registers == nil {
		registers = vim.NewRegisterStore()
	}
	return &OperatorHandler{registers: registers}
}

// Registers returns the register store the handler writes to.
func (h *OperatorHandler) Registers() *vim.RegisterStore {
	return h.registers
}

// Namespace returns the operator namespace.
func (h *OperatorHandler) Namespace() string {
	return "operator"
}

// CanHandle returns true if this handler can process the action.
func (h *OperatorHandler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionDelete, ActionChange, ActionYank:
		return true
	}
	return false
}

// HandleAction processes an operator action.
func (h *OperatorHandler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Engine == nil {
		return handler.Error(execctx.ErrMissingEngine)
	}

	r, err := resolveRange(action, ctx)
	if err != nil {
		return handler.Error(err)
	}
	if r.IsEmpty() {
		return handler.NoOp()
	}

	switch action.Name {
	case ActionDelete, ActionChange:
		return h.delete(ctx, r, action.Args.Register)
	case ActionYank:
		return h.yank(ctx, r, action.Args.Register)
	default:
		return handler.Errorf("unknown operator action: %s", action.Name)
	}
}

// resolveRange turns the motion range into an exclusive buffer range.
func resolveRange(action input.Action, ctx *execctx.ExecutionContext) (buffer.Range, error) {
	v, ok := action.Args.Get(RangeKey)
	if !ok {
		return buffer.Range{}, ErrMissingRange
	}
	or, ok := v.(handler.OperatorRange)
	if !ok {
		return buffer.Range{}, fmt.Errorf("%w: unexpected %T", ErrMissingRange, v)
	}

	r := buffer.Range{Start: or.Start, End: or.End}
	if or.Inclusive {
		// A charwise end past the last character would take the line break.
		r.End = ctx.Engine.ClampPoint(r.End)
		r.End.Column++
	}
	if !r.IsValid() {
		return buffer.Range{}, fmt.Errorf("operator: invalid range %s-%s", or.Start, or.End)
	}
	return r, nil
}

func (h *OperatorHandler) delete(ctx *execctx.ExecutionContext, r buffer.Range, register rune) handler.Result {
	before := r.Start
	if ctx.Cursor != nil {
		before = ctx.Cursor.Get()
	}

	removed, err := ctx.Engine.Delete(r)
	if err != nil {
		return handler.Error(fmt.Errorf("operator: delete: %w", err))
	}
	h.storeRegister(ctx, register, removed, false)
	ctx.Logger.Debug("deleted %d bytes at %s", len(removed), r.Start)

	res := h.placeCursor(ctx, r.Start, handler.Success().WithEdit(handler.Edit{Range: r, OldText: removed}))
	if ctx.History != nil {
		ctx.History.Push(history.NewDeleteOperation(r, removed).WithCursors(before, *res.Cursor))
	}
	return res
}

func (h *OperatorHandler) yank(ctx *execctx.ExecutionContext, r buffer.Range, register rune) handler.Result {
	text, err := ctx.Engine.TextRange(r)
	if err != nil {
		return handler.Error(fmt.Errorf("operator: yank: %w", err))
	}
	h.storeRegister(ctx, register, text, true)

	res := handler.Success().WithData("text", text)
	return h.placeCursor(ctx, r.Start, res)
}

// storeRegister writes text to register. A clipboard failure is logged;
// the operator still succeeds.
func (h *OperatorHandler) storeRegister(ctx *execctx.ExecutionContext, register rune, text string, yank bool) {
	if err := h.registers.Set(register, text, yank); err != nil {
		ctx.Logger.Warn("register %q: clipboard: %v", register, err)
	}
}

// placeCursor leaves the cursor at the start of the operated range.
func (h *OperatorHandler) placeCursor(ctx *execctx.ExecutionContext, p buffer.Point, res handler.Result) handler.Result {
	p = ctx.Engine.ClampPoint(p)
	if ctx.Cursor != nil {
		ctx.Cursor.Set(p)
	}
	return res.WithCursor(p)
}
