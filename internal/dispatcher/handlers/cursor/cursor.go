package cursor

import (
	"github.com/dshills/sneak/internal/dispatcher/execctx"
	"github.com/dshills/sneak/internal/dispatcher/handler"
	"github.com/dshills/sneak/internal/engine/buffer"
	"github.com/dshills/sneak/internal/input"
)

// Action names for cursor movements.
const (
	ActionLeft        = "cursor.left"
	ActionRight       = "cursor.right"
	ActionUp          = "cursor.up"
	ActionDown        = "cursor.down"
	ActionLineStart   = "cursor.lineStart"
	ActionLineEnd     = "cursor.lineEnd"
	ActionJumpBack    = "cursor.jumpBack"
	ActionJumpForward = "cursor.jumpForward"
)

// Handler implements namespace-based cursor movement handling.
type Handler struct{}

// NewHandler creates a new cursor handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the cursor namespace.
func (h *Handler) Namespace() string {
	return "cursor"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionLeft, ActionRight, ActionUp, ActionDown,
		ActionLineStart, ActionLineEnd, ActionJumpBack, ActionJumpForward:
		return true
	}
	return false
}

// HandleAction processes a cursor action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Engine == nil {
		return handler.Error(execctx.ErrMissingEngine)
	}
	if ctx.Cursor == nil {
		return handler.Error(execctx.ErrMissingCursor)
	}

	count := ctx.GetCount()

	switch action.Name {
	case ActionLeft:
		return h.moveLeft(ctx, count)
	case ActionRight:
		return h.moveRight(ctx, count)
	case ActionUp:
		return h.moveUp(ctx, count)
	case ActionDown:
		return h.moveDown(ctx, count)
	case ActionLineStart:
		return h.moveTo(ctx, buffer.Point{Line: ctx.Cursor.Get().Line})
	case ActionLineEnd:
		line := ctx.Cursor.Get().Line
		return h.moveTo(ctx, ctx.Engine.ClampPoint(buffer.Point{Line: line, Column: ctx.Engine.LineLen(line)}))
	case ActionJumpBack:
		return h.jumpBack(ctx)
	case ActionJumpForward:
		return h.jumpForward(ctx)
	default:
		return handler.Errorf("unknown cursor action: %s", action.Name)
	}
}

// moveLeft moves the cursor left by count characters, stopping at column 0.
func (h *Handler) moveLeft(ctx *execctx.ExecutionContext, count int) handler.Result {
	p := ctx.Cursor.Get()
	if p.Column == 0 {
		return handler.NoOp()
	}
	if uint32(count) > p.Column {
		p.Column = 0
	} else {
		p.Column -= uint32(count)
	}
	return h.moveTo(ctx, p)
}

// moveRight moves the cursor right by count characters, stopping on the
// last character of the line.
func (h *Handler) moveRight(ctx *execctx.ExecutionContext, count int) handler.Result {
	p := ctx.Cursor.Get()
	next := ctx.Engine.ClampPoint(buffer.Point{Line: p.Line, Column: p.Column + uint32(count)})
	if next == p {
		return handler.NoOp()
	}
	return h.moveTo(ctx, next)
}

// moveUp moves the cursor up by count lines.
func (h *Handler) moveUp(ctx *execctx.ExecutionContext, count int) handler.Result {
	p := ctx.Cursor.Get()
	if p.Line == 0 {
		return handler.NoOp()
	}
	line := uint32(0)
	if uint32(count) < p.Line {
		line = p.Line - uint32(count)
	}
	ctx.Cursor.SetLine(line, ctx.Engine)
	return handler.Success().WithCursor(ctx.Cursor.Get())
}

// moveDown moves the cursor down by count lines.
func (h *Handler) moveDown(ctx *execctx.ExecutionContext, count int) handler.Result {
	p := ctx.Cursor.Get()
	last := ctx.Engine.LineCount() - 1
	if p.Line >= last {
		return handler.NoOp()
	}
	line := p.Line + uint32(count)
	if line > last {
		line = last
	}
	ctx.Cursor.SetLine(line, ctx.Engine)
	return handler.Success().WithCursor(ctx.Cursor.Get())
}

func (h *Handler) jumpBack(ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Jumps == nil {
		return handler.NoOp()
	}
	j, ok := ctx.Jumps.Back(ctx.Cursor.Get())
	if !ok {
		return handler.NoOpWithMessage("at start of jump list")
	}
	ctx.Logger.Debug("jump back to %s (%s)", j.Point, j.ID)
	return h.moveTo(ctx, ctx.Engine.ClampPoint(j.Point)).WithData("jump", j.ID)
}

func (h *Handler) jumpForward(ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Jumps == nil {
		return handler.NoOp()
	}
	j, ok := ctx.Jumps.Forward()
	if !ok {
		return handler.NoOpWithMessage("at end of jump list")
	}
	ctx.Logger.Debug("jump forward to %s (%s)", j.Point, j.ID)
	return h.moveTo(ctx, ctx.Engine.ClampPoint(j.Point)).WithData("jump", j.ID)
}

func (h *Handler) moveTo(ctx *execctx.ExecutionContext, p buffer.Point) handler.Result {
	ctx.Cursor.Set(p)
	return handler.Success().WithCursor(p)
}
