package app

import (
	"errors"

	"github.com/dshills/sneak/internal/dispatcher/handler"
	"github.com/dshills/sneak/internal/input"
	"github.com/dshills/sneak/internal/input/key"
	"github.com/dshills/sneak/internal/renderer"
	"github.com/dshills/sneak/internal/renderer/backend"
	"github.com/dshills/sneak/internal/renderer/statusline"
)

// Run starts the display and processes events until quit.
// Blocks until Ctrl-C or Shutdown.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()
	// Unblocks the polling goroutine before the backend goes away.
	defer app.backend.PostEvent(backendInterrupt)

	app.renderer = renderer.New(app.backend, renderer.DefaultOptions())
	app.renderer.StatusLine().SetFilename(app.doc.Name)
	app.render()

	return app.eventLoop()
}

// eventLoop handles backend events one at a time on the calling goroutine.
func (app *Application) eventLoop() error {
	events := app.startInputPolling()
	for {
		select {
		case <-app.done:
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := app.handleBackendEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
			app.render()
		}
	}
}

// startInputPolling reads backend events on a goroutine. PollEvent blocks,
// so the goroutine ends once the backend is shut down or done is closed.
func (app *Application) startInputPolling() <-chan backend.Event {
	events := make(chan backend.Event, 100)

	go func() {
		defer close(events)

		for app.running.Load() {
			ev := app.backend.PollEvent()
			if ev.Type == backend.EventInterrupt || !app.running.Load() {
				return
			}

			select {
			case events <- ev:
			case <-app.done:
				return
			}
		}
	}()

	return events
}

// handleBackendEvent processes a backend event.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.HandleKey(convertToKeyEvent(ev))
	default:
		// Resize needs no work: the next render reads the new size.
		return nil
	}
}

// HandleKey feeds one key to the input handler and dispatches the
// completed command, if any. Ctrl-C returns ErrQuit.
func (app *Application) HandleKey(ev key.Event) error {
	if isQuitKey(ev) {
		return ErrQuit
	}

	action, ok := app.input.HandleKeyEvent(ev)
	if !ok {
		return nil
	}
	app.dispatchAction(action)
	return nil
}

// FeedKeys runs a sequence of keys in Vim notation, e.g. "dfa;<C-o>".
func (app *Application) FeedKeys(keys string) error {
	seq, err := key.ParseSequence(keys)
	if err != nil {
		return NewOperationError("keys", keys, err)
	}
	for _, ev := range seq.Events {
		if err := app.HandleKey(ev); err != nil {
			return err
		}
	}
	return nil
}

// dispatchAction dispatches action and records its result. Handler
// failures are reported on the status line and in the log; they never stop
// the editor.
func (app *Application) dispatchAction(action input.Action) handler.Result {
	result := app.dispatcher.Dispatch(action)

	app.mu.Lock()
	app.lastResult = result
	app.mu.Unlock()

	if result.IsError() {
		app.logger.WithComponent("app").Warn("%s: %v", action.Name, result.Error)
	}
	return result
}

// render draws the current state when a display is attached.
func (app *Application) render() {
	if app.renderer == nil {
		return
	}

	status := app.renderer.StatusLine()
	ctx := app.input.Context()
	if ctx.Mode == input.ModeOperatorPending {
		status.SetMode("OP-PENDING")
	} else {
		status.SetMode("NORMAL")
	}
	status.SetPending(app.input.PendingKeys())
	status.SetModified(app.doc.IsModified())

	res := app.LastResult()
	switch {
	case res.IsError():
		status.SetMessage(res.Error.Error(), statusline.MessageError)
	case res.Message != "":
		status.SetMessage(res.Message, statusline.MessageInfo)
	default:
		status.ClearMessage()
	}

	app.renderer.Render(app.doc.Buffer, app.doc.Cursor.Get())
}

func isQuitKey(ev key.Event) bool {
	return ev.Key == key.KeyRune && ev.Rune == 'c' && ev.Modifiers.HasCtrl()
}

// convertToKeyEvent converts a backend event to a key.Event.
func convertToKeyEvent(ev backend.Event) key.Event {
	mods := key.ModNone
	if ev.Mod.Has(backend.ModCtrl) {
		mods = mods.With(key.ModCtrl)
	}
	if ev.Mod.Has(backend.ModAlt) {
		mods = mods.With(key.ModAlt)
	}
	if ev.Mod.Has(backend.ModShift) {
		mods = mods.With(key.ModShift)
	}
	if ev.Mod.Has(backend.ModMeta) {
		mods = mods.With(key.ModMeta)
	}

	switch ev.Key {
	case backend.KeyRune:
		return key.NewRuneEvent(ev.Rune, mods)
	case backend.KeyCtrlC:
		return key.NewRuneEvent('c', mods.With(key.ModCtrl))
	case backend.KeyCtrlO:
		return key.NewRuneEvent('o', mods.With(key.ModCtrl))
	case backend.KeyCtrlR:
		return key.NewRuneEvent('r', mods.With(key.ModCtrl))
	default:
		return key.NewSpecialEvent(mapBackendKey(ev.Key), mods)
	}
}

// mapBackendKey maps a backend.Key to a key.Key.
func mapBackendKey(bk backend.Key) key.Key {
	switch bk {
	case backend.KeyEscape:
		return key.KeyEscape
	case backend.KeyEnter:
		return key.KeyEnter
	case backend.KeyTab:
		return key.KeyTab
	case backend.KeyBackspace:
		return key.KeyBackspace
	case backend.KeyDelete:
		return key.KeyDelete
	case backend.KeyHome:
		return key.KeyHome
	case backend.KeyEnd:
		return key.KeyEnd
	case backend.KeyUp:
		return key.KeyUp
	case backend.KeyDown:
		return key.KeyDown
	case backend.KeyLeft:
		return key.KeyLeft
	case backend.KeyRight:
		return key.KeyRight
	default:
		return key.KeyNone
	}
}
