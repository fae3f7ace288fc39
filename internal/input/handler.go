package input

import (
	"sync"

	"github.com/dshills/sneak/internal/input/key"
	"github.com/dshills/sneak/internal/input/vim"
)

// Hook allows interception of input handling.
type Hook interface {
	// PreKeyEvent is called before processing a key event.
	// Return true to consume the event.
	PreKeyEvent(event key.Event, ctx *Context) bool
}

// Handler is the entry point for input processing.
type Handler struct {
	mu      sync.Mutex
	parser  *vim.Parser
	context *Context
	hooks   []Hook
}

// NewHandler creates a new input handler.
func NewHandler() *Handler {
	return &Handler{
		parser:  vim.NewParser(),
		context: NewContext(),
	}
}

// AddHook registers a hook.
func (h *Handler) AddHook(hook Hook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

// HandleKeyEvent processes a key event. It returns the action when the
// event completes a command.
func (h *Handler) HandleKeyEvent(event key.Event) (Action, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, hook := range h.hooks {
		if hook.PreKeyEvent(event, h.context) {
			return Action{}, false
		}
	}

	result := h.parser.Parse(event)
	switch result.Status {
	case vim.StatusPending:
		h.context.AppendToSequence(event)
		h.syncPending()
		return Action{}, false
	case vim.StatusComplete:
		h.context.ClearPending()
		return actionFromCommand(result.Command), true
	default:
		h.context.ClearPending()
		return Action{}, false
	}
}

// syncPending copies the parser's pending state into the context.
func (h *Handler) syncPending() {
	h.context.Mode = ModeNormal
	h.context.PendingOperator = ""
	if op := h.parser.OperatorPending(); op != nil {
		h.context.Mode = ModeOperatorPending
		h.context.PendingOperator = op.Name
	}
}

// Context returns a copy of the current input context.
func (h *Handler) Context() *Context {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.context.Clone()
}

// PendingKeys returns the keys of the command being typed.
func (h *Handler) PendingKeys() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.parser.PendingKeys()
}

// Reset discards any partially typed command.
func (h *Handler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.parser.Reset()
	h.context.ClearPending()
}

func actionFromCommand(cmd *vim.Command) Action {
	a := Action{
		Name:   cmd.Action,
		Source: SourceKeyboard,
		Count:  cmd.Count,
		Args: ActionArgs{
			Keys:     cmd.Keys,
			Register: cmd.Register,
		},
	}
	if cmd.Operator != nil {
		a.Args.Operator = cmd.Operator.Name
	}
	return a
}
