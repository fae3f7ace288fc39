package app

import (
	"time"

	"github.com/dshills/sneak/internal/renderer/backend"
)

// Shutdown stops the event loop. It is safe to call from any goroutine.
func (app *Application) Shutdown() {
	app.mu.Lock()
	defer app.mu.Unlock()

	select {
	case <-app.done:
		return
	default:
	}
	close(app.done)

	if app.backend != nil && app.running.Load() {
		app.backend.PostEvent(backendInterrupt)
	}
}

// Close releases the config watcher and the Lua state. It is idempotent.
func (app *Application) Close() error {
	app.Shutdown()

	app.mu.Lock()
	if app.closed {
		app.mu.Unlock()
		return nil
	}
	app.closed = true
	app.mu.Unlock()

	app.logDispatchStats()

	errs := NewErrorList()
	if app.lua != nil {
		errs.Add(app.lua.Close())
	}
	if app.config != nil {
		app.config.Close()
	}
	return errs.AsError()
}

// Save writes the document to its file.
func (app *Application) Save() error {
	if err := app.doc.Save(); err != nil {
		return err
	}
	app.logger.WithComponent("app").Info("wrote %s", app.doc.Path)
	return nil
}

// logDispatchStats writes the most used actions to the debug log.
func (app *Application) logDispatchStats() {
	if app.dispatcher == nil || app.logger == nil {
		return
	}
	m := app.dispatcher.Metrics()
	if m == nil || m.TotalDispatches() == 0 {
		return
	}

	log := app.logger.WithComponent("dispatcher")
	log.Debug("%d actions, %d errors, %d panics", m.TotalDispatches(), m.TotalErrors(), m.TotalPanics())
	for _, am := range m.TopActions(5) {
		log.Debug("%s: %d dispatches, %.0f%% matched, avg %s",
			am.Name, am.DispatchCount, am.MatchRate()*100, am.TotalDuration/time.Duration(am.DispatchCount))
	}
}

var backendInterrupt = backend.Event{Type: backend.EventInterrupt}
