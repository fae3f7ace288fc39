package dispatcher

import (
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/dshills/sneak/internal/dispatcher/execctx"
	"github.com/dshills/sneak/internal/dispatcher/handler"
	"github.com/dshills/sneak/internal/input"
	"github.com/dshills/sneak/internal/sneak"
)

// RangeKey is the Args.Extra key carrying the motion range handed to an
// operator action.
const RangeKey = "range"

// Dispatcher routes actions to handlers and manages execution.
type Dispatcher struct {
	mu sync.RWMutex

	router  *Router
	config  Config
	metrics *Metrics

	engine   execctx.EngineInterface
	cursor   execctx.CursorInterface
	jumps    execctx.JumpListInterface
	history  execctx.HistoryInterface
	session  *sneak.Session
	settings func() sneak.Settings
	logger   execctx.Logger

	preHooks  []PreDispatchHook
	postHooks []PostDispatchHook
}

// New creates a new dispatcher with the given configuration.
func New(config Config) *Dispatcher {
	d := &Dispatcher{
		router:  NewRouter(),
		config:  config,
		session: sneak.NewSession(),
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// NewWithDefaults creates a new dispatcher with default configuration.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig())
}

// SetEngine sets the document for action execution.
func (d *Dispatcher) SetEngine(engine execctx.EngineInterface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.engine = engine
}

// SetCursor sets the primary cursor.
func (d *Dispatcher) SetCursor(c execctx.CursorInterface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursor = c
}

// SetJumps sets the jump list.
func (d *Dispatcher) SetJumps(j execctx.JumpListInterface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.jumps = j
}

// SetHistory sets the undo history.
func (d *Dispatcher) SetHistory(h execctx.HistoryInterface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.history = h
}

// SetSession replaces the sneak repeat session.
func (d *Dispatcher) SetSession(s *sneak.Session) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.session = s
}

// Session returns the sneak repeat session.
func (d *Dispatcher) Session() *sneak.Session {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.session
}

// SetSettingsSource sets the function queried for a settings snapshot on
// every dispatch, so configuration reloads apply to the next action.
func (d *Dispatcher) SetSettingsSource(fn func() sneak.Settings) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.settings = fn
}

// SetLogger sets the logger handed to handlers.
func (d *Dispatcher) SetLogger(l execctx.Logger) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.logger = l
}

// RegisterHandler binds a handler to one action name. It takes precedence
// over the action's namespace handler.
func (d *Dispatcher) RegisterHandler(actionName string, h handler.Handler) {
	d.router.Handle(actionName, h)
}

// RegisterHandlerFunc binds a function to one action name.
func (d *Dispatcher) RegisterHandlerFunc(actionName string, fn handler.ActionFunc) {
	d.router.Handle(actionName, handler.NewHandlerFunc(fn))
}

// RegisterNamespace registers a namespace handler.
func (d *Dispatcher) RegisterNamespace(namespace string, h handler.NamespaceHandler) {
	d.router.RegisterNamespace(namespace, h)
}

// AddPreHook adds a pre-dispatch hook.
func (d *Dispatcher) AddPreHook(hook PreDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.preHooks = append(d.preHooks, hook)
}

// AddPostHook adds a post-dispatch hook.
func (d *Dispatcher) AddPostHook(hook PostDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.postHooks = append(d.postHooks, hook)
}

// Dispatch executes an action and returns the result.
func (d *Dispatcher) Dispatch(action input.Action) handler.Result {
	return d.DispatchWithContext(action, d.buildContext(action))
}

// DispatchWithContext executes an action with a caller supplied context.
func (d *Dispatcher) DispatchWithContext(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if action.Name == "" {
		return handler.Error(ErrInvalidAction)
	}

	start := time.Now()

	d.mu.RLock()
	preHooks := d.preHooks
	postHooks := d.postHooks
	d.mu.RUnlock()

	for _, hook := range preHooks {
		if !hook.PreDispatch(&action, ctx) {
			return handler.CancelledWithMessage(ErrActionCancelled.Error())
		}
	}

	result := d.execute(action, ctx)
	if result.Status == handler.StatusOK && result.Range != nil && action.Args.Operator != "" {
		result = d.applyOperator(action, ctx, result)
	}

	for _, hook := range postHooks {
		hook.PostDispatch(&action, ctx, &result)
	}

	if d.metrics != nil {
		d.metrics.RecordDispatch(action.Name, time.Since(start), result.Status)
	}
	return result
}

// applyOperator hands the range a motion produced to the pending operator.
// The merged result keeps the motion's range and the operator's cursor.
func (d *Dispatcher) applyOperator(motion input.Action, ctx *execctx.ExecutionContext, motionResult handler.Result) handler.Result {
	op := input.Action{
		Name:   BuildActionName("operator", motion.Args.Operator),
		Source: motion.Source,
		Args: input.ActionArgs{
			Register: motion.Args.Register,
			Extra:    map[string]interface{}{RangeKey: *motionResult.Range},
		},
	}
	opResult := d.execute(op, ctx)
	if opResult.Range == nil {
		opResult.Range = motionResult.Range
	}
	return opResult
}

func (d *Dispatcher) execute(action input.Action, ctx *execctx.ExecutionContext) (result handler.Result) {
	h := d.findHandler(action.Name)
	if h == nil {
		return handler.Error(fmt.Errorf("%w: %s", ErrNoHandler, action.Name))
	}

	if d.config.RecoverFromPanic {
		defer func() {
			if r := recover(); r != nil {
				ctx.Logger.Error("panic in %s: %v\n%s", action.Name, r, debug.Stack())
				if d.metrics != nil {
					d.metrics.RecordPanic(action.Name)
				}
				result = handler.Error(fmt.Errorf("%w: %s: %v", ErrPanic, action.Name, r))
			}
		}()
	}

	return h.Handle(action, ctx)
}

func (d *Dispatcher) findHandler(actionName string) handler.Handler {
	return d.router.Route(actionName)
}

// buildContext assembles the execution context for one action.
func (d *Dispatcher) buildContext(action input.Action) *execctx.ExecutionContext {
	d.mu.RLock()
	defer d.mu.RUnlock()

	inputCtx := input.NewContext()
	inputCtx.PendingOperator = action.Args.Operator
	inputCtx.PendingRegister = action.Args.Register
	if action.Args.Operator != "" {
		inputCtx.Mode = input.ModeOperatorPending
	}

	ctx := execctx.NewWithInputContext(inputCtx)
	ctx.Engine = d.engine
	ctx.Cursor = d.cursor
	ctx.Jumps = d.jumps
	ctx.History = d.history
	ctx.Session = d.session
	ctx.WithLogger(d.logger)
	if d.settings != nil {
		ctx.Settings = d.settings()
	}

	count := action.Count
	if d.config.MaxRepeatCount > 0 && count > d.config.MaxRepeatCount {
		count = d.config.MaxRepeatCount
	}
	ctx.WithCount(count)
	return ctx
}

// HasHandler returns true if a handler exists for the action.
func (d *Dispatcher) HasHandler(actionName string) bool {
	return d.findHandler(actionName) != nil
}

// Metrics returns the metrics collector, or nil when metrics are disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Router returns the namespace router.
func (d *Dispatcher) Router() *Router {
	return d.router
}

