package dispatcher

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dshills/sneak/internal/dispatcher/execctx"
	"github.com/dshills/sneak/internal/dispatcher/handler"
	"github.com/dshills/sneak/internal/dispatcher/handlers/cursor"
	"github.com/dshills/sneak/internal/dispatcher/handlers/operator"
	sneakhandler "github.com/dshills/sneak/internal/dispatcher/handlers/sneak"
	"github.com/dshills/sneak/internal/engine/buffer"
	enginecursor "github.com/dshills/sneak/internal/engine/cursor"
	"github.com/dshills/sneak/internal/input"
	"github.com/dshills/sneak/internal/input/vim"
	"github.com/dshills/sneak/internal/sneak"
)

// recordingLogger captures formatted log lines.
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) log(level, msg string, args ...any) {
	l.lines = append(l.lines, level+" "+fmt.Sprintf(msg, args...))
}

func (l *recordingLogger) Debug(msg string, args ...any) { l.log("DEBUG", msg, args...) }
func (l *recordingLogger) Info(msg string, args ...any)  { l.log("INFO", msg, args...) }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.log("WARN", msg, args...) }
func (l *recordingLogger) Error(msg string, args ...any) { l.log("ERROR", msg, args...) }

type fixture struct {
	d         *Dispatcher
	buf       *buffer.Buffer
	cur       *enginecursor.Cursor
	registers *vim.RegisterStore
	settings  sneak.Settings
}

func newFixture(text string) *fixture {
	f := &fixture{
		d:         New(DefaultConfig().WithMetrics()),
		buf:       buffer.NewBufferFromString(text),
		cur:       enginecursor.New(),
		registers: vim.NewRegisterStore(),
		settings:  sneak.Settings{Enabled: true},
	}
	f.d.SetEngine(f.buf)
	f.d.SetCursor(f.cur)
	f.d.SetJumps(enginecursor.NewJumpList(enginecursor.DefaultJumpListSize))
	f.d.SetSettingsSource(func() sneak.Settings { return f.settings })
	f.d.RegisterNamespace("sneak", sneakhandler.NewHandler())
	f.d.RegisterNamespace("cursor", cursor.NewHandler())
	f.d.RegisterNamespace("operator", operator.NewOperatorHandler(f.registers))
	return f
}

func sneakAction(keys string) input.Action {
	v, _ := sneak.Lookup([]rune(keys)[0])
	return input.Action{Name: vim.SneakAction(v), Args: input.ActionArgs{Keys: []rune(keys)}}
}

func TestDispatchSneakMovesCursor(t *testing.T) {
	f := newFixture("the cat sat")

	res := f.d.Dispatch(sneakAction("fat"))
	if res.Status != handler.StatusOK {
		t.Fatalf("status = %s (%v)", res.Status, res.Error)
	}
	if got := f.cur.Get(); got != (buffer.Point{Column: 5}) {
		t.Errorf("cursor = %s, want 0:5", got)
	}

	res = f.d.Dispatch(input.Action{Name: vim.ActionSneakRepeat})
	if got := f.cur.Get(); got != (buffer.Point{Column: 9}) {
		t.Errorf("after repeat cursor = %s, want 0:9", got)
	}
}

func TestDispatchSettingsSnapshotPerAction(t *testing.T) {
	f := newFixture("the cat sat")
	f.settings.Enabled = false

	if res := f.d.Dispatch(sneakAction("fat")); res.Status != handler.StatusNoOp {
		t.Fatalf("disabled: status = %s, want no-op", res.Status)
	}

	f.settings.Enabled = true
	if res := f.d.Dispatch(sneakAction("fat")); res.Status != handler.StatusOK {
		t.Fatalf("enabled: status = %s, want ok", res.Status)
	}
}

func TestDispatchOperatorChaining(t *testing.T) {
	tests := []struct {
		name     string
		keys     string
		op       string
		from     buffer.Point
		wantText string
		register string
	}{
		{"delete forward", "fat", "delete", buffer.Point{}, " sat", "the cat"},
		{"delete backward", "Fth", "delete", buffer.Point{Column: 4}, "cat sat", "the "},
		{"yank till forward", "tsa", "yank", buffer.Point{}, "the cat sat", "the cat s"},
		{"change till backward", "The", "change", buffer.Point{Column: 8}, "thsat", "e cat "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture("the cat sat")
			f.cur.Set(tt.from)

			res := f.d.Dispatch(sneakAction(tt.keys).WithOperator(tt.op))
			if res.Status != handler.StatusOK {
				t.Fatalf("status = %s (%v)", res.Status, res.Error)
			}
			if res.Range == nil {
				t.Error("merged result should keep the motion range")
			}
			if got := f.buf.Text(); got != tt.wantText {
				t.Errorf("text = %q, want %q", got, tt.wantText)
			}
			if got := f.registers.Get(vim.RegisterUnnamed); got != tt.register {
				t.Errorf("register = %q, want %q", got, tt.register)
			}
		})
	}
}

func TestDispatchOperatorNoMatch(t *testing.T) {
	f := newFixture("the cat sat")

	res := f.d.Dispatch(sneakAction("fzz").WithOperator("delete"))
	if res.Status != handler.StatusNoOp {
		t.Fatalf("status = %s, want no-op", res.Status)
	}
	if f.buf.Text() != "the cat sat" {
		t.Error("buffer changed without a match")
	}
}

func TestDispatchNoHandler(t *testing.T) {
	f := newFixture("x")

	res := f.d.Dispatch(input.Action{Name: "window.split"})
	if !errors.Is(res.Error, ErrNoHandler) {
		t.Errorf("error = %v, want ErrNoHandler", res.Error)
	}

	res = f.d.Dispatch(input.Action{})
	if !errors.Is(res.Error, ErrInvalidAction) {
		t.Errorf("error = %v, want ErrInvalidAction", res.Error)
	}
}

func TestDispatchPanicRecovery(t *testing.T) {
	f := newFixture("x")
	logger := &recordingLogger{}
	f.d.SetLogger(logger)
	f.d.RegisterHandlerFunc("test.panic", func(input.Action, *execctx.ExecutionContext) handler.Result {
		panic("boom")
	})

	res := f.d.Dispatch(input.Action{Name: "test.panic"})
	if !errors.Is(res.Error, ErrPanic) {
		t.Fatalf("error = %v, want ErrPanic", res.Error)
	}
	if f.d.Metrics().TotalPanics() != 1 {
		t.Errorf("panics = %d, want 1", f.d.Metrics().TotalPanics())
	}
	if len(logger.lines) == 0 || !strings.HasPrefix(logger.lines[0], "ERROR panic in test.panic: boom") {
		t.Errorf("log = %v", logger.lines)
	}
}

func TestDispatchHooks(t *testing.T) {
	f := newFixture("the cat sat")

	var seen []string
	f.d.AddPreHook(PreDispatchFunc(func(a *input.Action, ctx *execctx.ExecutionContext) bool {
		seen = append(seen, "pre:"+a.Name)
		return a.Name != vim.ActionSneakRepeatReverse
	}))
	f.d.AddPostHook(PostDispatchFunc(func(a *input.Action, ctx *execctx.ExecutionContext, r *handler.Result) {
		seen = append(seen, "post:"+r.Status.String())
	}))

	f.d.Dispatch(sneakAction("fat"))
	res := f.d.Dispatch(input.Action{Name: vim.ActionSneakRepeatReverse})
	if res.Status != handler.StatusCancelled {
		t.Errorf("cancelled status = %s", res.Status)
	}

	want := []string{"pre:sneak.forward", "post:ok", "pre:sneak.repeatReverse"}
	if strings.Join(seen, ",") != strings.Join(want, ",") {
		t.Errorf("hooks = %v, want %v", seen, want)
	}
}

func TestDispatchLoggingHook(t *testing.T) {
	f := newFixture("the cat sat")
	logger := &recordingLogger{}
	f.d.SetLogger(logger)
	f.d.AddPreHook(LoggingHook{})
	f.d.AddPostHook(LoggingHook{})

	f.d.Dispatch(sneakAction("fzz"))

	joined := strings.Join(logger.lines, "\n")
	if !strings.Contains(joined, "dispatching sneak.forward") {
		t.Errorf("missing dispatch line in %q", joined)
	}
	if !strings.Contains(joined, "sneak.forward -> no-op") {
		t.Errorf("missing result line in %q", joined)
	}
}

func TestDispatchCountClamp(t *testing.T) {
	f := newFixture(strings.Repeat("x", 50))
	f.d.config.MaxRepeatCount = 3

	f.d.Dispatch(input.Action{Name: "cursor.right", Count: 40})
	if got := f.cur.Get(); got.Column != 3 {
		t.Errorf("cursor = %s, want column 3", got)
	}
}

func TestDispatchMetrics(t *testing.T) {
	f := newFixture("the cat sat")

	f.d.Dispatch(sneakAction("fat"))
	f.d.Dispatch(sneakAction("fzz"))
	f.d.Dispatch(input.Action{Name: "nope.nothing"})

	m := f.d.Metrics()
	if m.TotalDispatches() != 3 {
		t.Errorf("dispatches = %d, want 3", m.TotalDispatches())
	}
	if m.TotalErrors() != 1 {
		t.Errorf("errors = %d, want 1", m.TotalErrors())
	}
	stats := m.ActionStats("sneak.forward")
	if stats == nil || stats.DispatchCount != 2 || stats.NoOpCount != 1 {
		t.Fatalf("sneak.forward stats = %+v", stats)
	}
	if rate := stats.MatchRate(); rate != 0.5 {
		t.Errorf("match rate = %v, want 0.5", rate)
	}
	if top := m.TopActions(1); len(top) != 1 || top[0].Name != "sneak.forward" {
		t.Errorf("top actions = %+v", top)
	}
}

func TestHasHandler(t *testing.T) {
	f := newFixture("x")
	if !f.d.HasHandler("sneak.tillBackward") {
		t.Error("sneak.tillBackward should be routed")
	}
	if f.d.HasHandler("sneak.unknown") {
		t.Error("sneak.unknown should not be routed")
	}
}
