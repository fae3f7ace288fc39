// Package execctx provides the execution context for action handlers.
package execctx

import (
	"github.com/dshills/sneak/internal/engine/buffer"
	"github.com/dshills/sneak/internal/engine/cursor"
	"github.com/dshills/sneak/internal/engine/history"
	"github.com/dshills/sneak/internal/input"
	"github.com/dshills/sneak/internal/sneak"
)

// EngineReader provides read-only access to the document.
type EngineReader interface {
	LineCount() uint32
	LineText(line uint32) string
	LineLen(line uint32) uint32
	ClampPoint(p buffer.Point) buffer.Point
}

// EngineInterface abstracts the text buffer for handlers.
type EngineInterface interface {
	EngineReader

	TextRange(r buffer.Range) (string, error)
	Delete(r buffer.Range) (string, error)
	Insert(p buffer.Point, text string) (buffer.Point, error)
	RevisionID() buffer.RevisionID
}

// CursorInterface abstracts the primary cursor for handlers.
type CursorInterface interface {
	Get() buffer.Point
	Set(p buffer.Point)
	SetLine(line uint32, clamp cursor.Clamper)
}

// JumpListInterface abstracts the jump list for handlers.
type JumpListInterface interface {
	Push(p buffer.Point) cursor.Jump
	Back(current buffer.Point) (cursor.Jump, bool)
	Forward() (cursor.Jump, bool)
}

// HistoryInterface records edits for undo and redo.
type HistoryInterface interface {
	Push(op *history.Operation)
	Undo(ed history.Editor) (*history.Operation, error)
	Redo(ed history.Editor) (*history.Operation, error)
}

// Logger is the logging surface handlers use.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ExecutionContext provides context for action execution.
type ExecutionContext struct {
	// Engine provides access to the text buffer.
	Engine EngineInterface

	// Cursor is the primary cursor.
	Cursor CursorInterface

	// Jumps records positions left by jump motions.
	Jumps JumpListInterface

	// History records edits. Nil disables undo.
	History HistoryInterface

	// Session holds the sneak repeat handles.
	Session *sneak.Session

	// Settings is the sneak configuration snapshot for this action.
	Settings sneak.Settings

	// Input provides the input context (mode, pending operator).
	Input *input.Context

	// Logger receives handler diagnostics. Never nil after New.
	Logger Logger

	// Count is the repeat count (1 if not specified).
	Count int

	// Data holds handler-specific context data.
	Data map[string]interface{}
}

// New creates a new execution context.
func New() *ExecutionContext {
	return &ExecutionContext{
		Count:  1,
		Logger: nopLogger{},
		Data:   make(map[string]interface{}),
	}
}

// NewWithInputContext creates a new execution context from an input context.
func NewWithInputContext(inputCtx *input.Context) *ExecutionContext {
	ctx := New()
	ctx.Input = inputCtx
	if inputCtx != nil && inputCtx.PendingCount > 0 {
		ctx.Count = inputCtx.PendingCount
	}
	return ctx
}

// WithEngine returns the context with the engine set.
func (ctx *ExecutionContext) WithEngine(engine EngineInterface) *ExecutionContext {
	ctx.Engine = engine
	return ctx
}

// WithCursor returns the context with the cursor set.
func (ctx *ExecutionContext) WithCursor(c CursorInterface) *ExecutionContext {
	ctx.Cursor = c
	return ctx
}

// WithJumps returns the context with the jump list set.
func (ctx *ExecutionContext) WithJumps(j JumpListInterface) *ExecutionContext {
	ctx.Jumps = j
	return ctx
}

// WithHistory returns the context with the undo history set.
func (ctx *ExecutionContext) WithHistory(h HistoryInterface) *ExecutionContext {
	ctx.History = h
	return ctx
}

// WithSettings returns the context with the sneak settings set.
func (ctx *ExecutionContext) WithSettings(s sneak.Settings) *ExecutionContext {
	ctx.Settings = s
	return ctx
}

// WithLogger returns the context with the logger set.
func (ctx *ExecutionContext) WithLogger(l Logger) *ExecutionContext {
	if l != nil {
		ctx.Logger = l
	}
	return ctx
}

// WithCount returns the context with repeat count set.
func (ctx *ExecutionContext) WithCount(count int) *ExecutionContext {
	if count > 0 {
		ctx.Count = count
	}
	return ctx
}

// GetCount returns the repeat count, defaulting to 1.
func (ctx *ExecutionContext) GetCount() int {
	if ctx.Count <= 0 {
		return 1
	}
	return ctx.Count
}

// PendingOperator returns the pending operator, if any.
func (ctx *ExecutionContext) PendingOperator() string {
	if ctx.Input != nil {
		return ctx.Input.PendingOperator
	}
	return ""
}

// PendingRegister returns the pending register, if any.
func (ctx *ExecutionContext) PendingRegister() rune {
	if ctx.Input != nil {
		return ctx.Input.PendingRegister
	}
	return 0
}

// SetData sets a context data value.
func (ctx *ExecutionContext) SetData(key string, value interface{}) {
	if ctx.Data == nil {
		ctx.Data = make(map[string]interface{})
	}
	ctx.Data[key] = value
}

// GetData retrieves a context data value.
func (ctx *ExecutionContext) GetData(key string) (interface{}, bool) {
	if ctx.Data == nil {
		return nil, false
	}
	v, ok := ctx.Data[key]
	return v, ok
}

// Validate checks that the context has all required components.
func (ctx *ExecutionContext) Validate() error {
	if ctx.Engine == nil {
		return ErrMissingEngine
	}
	if ctx.Cursor == nil {
		return ErrMissingCursor
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
