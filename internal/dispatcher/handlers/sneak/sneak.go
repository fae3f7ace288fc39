package sneak

import (
	"github.com/dshills/sneak/internal/dispatcher/execctx"
	"github.com/dshills/sneak/internal/dispatcher/handler"
	"github.com/dshills/sneak/internal/input"
	"github.com/dshills/sneak/internal/sneak"
)

// Action names.
const (
	ActionForward       = "sneak.forward"
	ActionBackward      = "sneak.backward"
	ActionTillForward   = "sneak.tillForward"
	ActionTillBackward  = "sneak.tillBackward"
	ActionRepeat        = "sneak.repeat"
	ActionRepeatReverse = "sneak.repeatReverse"
)

// Handler implements the sneak namespace.
type Handler struct {
	variants map[string]sneak.Variant
}

// NewHandler creates a new sneak handler.
func NewHandler() *Handler {
	h := &Handler{variants: make(map[string]sneak.Variant)}
	for _, v := range sneak.Variants() {
		h.variants["sneak."+v.String()] = v
	}
	return h
}

// Namespace returns the sneak namespace.
func (h *Handler) Namespace() string {
	return "sneak"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	if _, ok := h.variants[actionName]; ok {
		return true
	}
	return actionName == ActionRepeat || actionName == ActionRepeatReverse
}

// HandleAction processes a sneak action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Engine == nil {
		return handler.Error(execctx.ErrMissingEngine)
	}
	if ctx.Cursor == nil {
		return handler.Error(execctx.ErrMissingCursor)
	}
	if ctx.Session == nil {
		return handler.Error(execctx.ErrMissingSession)
	}

	switch action.Name {
	case ActionRepeat:
		return h.repeat(ctx, false)
	case ActionRepeatReverse:
		return h.repeat(ctx, true)
	}

	v, ok := h.variants[action.Name]
	if !ok {
		return handler.Errorf("unknown sneak action: %s", action.Name)
	}

	keys := action.Args.Keys
	m, err := sneak.NewMotion(keys, false)
	if err != nil {
		return handler.Error(err)
	}
	if m.Variant() != v {
		return handler.Errorf("%s: trigger %q does not match", action.Name, keys[0])
	}
	if !m.CouldApply(h.state(ctx), keys) {
		ctx.Logger.Debug("sneak not applicable to %q", string(keys))
		return handler.NoOpWithMessage("sneak is disabled")
	}
	return h.exec(ctx, m)
}

func (h *Handler) repeat(ctx *execctx.ExecutionContext, reverse bool) handler.Result {
	m := ctx.Session.Repeat(reverse)
	if m == nil {
		return handler.NoOpWithMessage("no previous sneak")
	}
	return h.exec(ctx, m)
}

func (h *Handler) state(ctx *execctx.ExecutionContext) sneak.State {
	return sneak.State{
		Document:        ctx.Engine,
		Settings:        ctx.Settings,
		OperatorPending: ctx.PendingOperator() != "",
		Session:         ctx.Session,
	}
}

func (h *Handler) exec(ctx *execctx.ExecutionContext, m *sneak.Motion) handler.Result {
	st := h.state(ctx)
	origin := ctx.Cursor.Get()
	out := m.Exec(origin, &st)

	q := m.Query()
	if !out.Found {
		ctx.Logger.Debug("%s %q: no match from %s", m.Variant(), q.String(), origin)
		return handler.NoOpWithMessage("not found: " + q.String())
	}

	res := handler.Success().WithData("variant", m.Variant().String())
	if out.Range != nil {
		return res.WithRange(handler.OperatorRange{
			Start:     out.Range.Start,
			End:       out.Range.End,
			Inclusive: out.Range.Inclusive,
		})
	}

	if ctx.Jumps != nil {
		ctx.Jumps.Push(origin)
	}
	ctx.Cursor.Set(out.Target)
	return res.WithCursor(out.Target)
}
