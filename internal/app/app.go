// Package app wires the editor together: configuration, the document, the
// dispatcher and its handlers, key input, Lua scripts and the display.
package app

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/dshills/sneak/internal/config"
	"github.com/dshills/sneak/internal/dispatcher"
	"github.com/dshills/sneak/internal/dispatcher/handler"
	"github.com/dshills/sneak/internal/engine/buffer"
	"github.com/dshills/sneak/internal/input"
	"github.com/dshills/sneak/internal/input/vim"
	luaplugin "github.com/dshills/sneak/internal/plugin/lua"
	"github.com/dshills/sneak/internal/renderer"
	"github.com/dshills/sneak/internal/renderer/backend"
)

// Application is the central coordinator for all editor components.
type Application struct {
	mu sync.Mutex

	logger *Logger
	config *config.Config

	doc        *Document
	registers  *vim.RegisterStore
	dispatcher *dispatcher.Dispatcher
	input      *input.Handler
	lua        *luaplugin.State

	backend  backend.Backend
	renderer *renderer.Renderer

	lastResult handler.Result

	running atomic.Bool
	done    chan struct{}
	closed  bool

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the TOML or YAML config file. Empty means no file.
	ConfigPath string

	// EnvPrefix overrides the environment variable prefix. Empty keeps
	// the default.
	EnvPrefix string

	// WatchConfig reloads the config file when it changes.
	WatchConfig bool

	// File is the file to edit. When empty, Text fills a scratch buffer.
	File string
	Text string

	// Start is the initial cursor position. It is clamped to the document.
	Start buffer.Point

	// LogLevel overrides the logging.level setting when non-empty.
	LogLevel string

	// LogOutput receives log lines. Defaults to os.Stderr.
	LogOutput io.Writer

	// Backend is the display. Headless runs leave it nil.
	Backend backend.Backend

	// NoScripts skips init.lua.
	NoScripts bool

	// Clipboard backs the + and * registers. Nil keeps them in memory.
	Clipboard vim.Clipboard
}

// New creates an Application and starts every component except the display.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		done:    make(chan struct{}),
		backend: opts.Backend,
	}

	if err := app.bootstrap(); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Config returns the configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Document returns the document being edited.
func (app *Application) Document() *Document {
	return app.doc
}

// Dispatcher returns the action dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Registers returns the register store shared by the operators.
func (app *Application) Registers() *vim.RegisterStore {
	return app.registers
}

// Position returns the cursor position.
func (app *Application) Position() buffer.Point {
	return app.doc.Cursor.Get()
}

// LastResult returns the result of the most recent dispatched action.
func (app *Application) LastResult() handler.Result {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.lastResult
}

// IsRunning reports whether the event loop is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}
