package app

import (
	"context"
	"path/filepath"

	"github.com/dshills/sneak/internal/config"
	"github.com/dshills/sneak/internal/dispatcher"
	cursorhandler "github.com/dshills/sneak/internal/dispatcher/handlers/cursor"
	edithandler "github.com/dshills/sneak/internal/dispatcher/handlers/edit"
	"github.com/dshills/sneak/internal/dispatcher/handlers/operator"
	sneakhandler "github.com/dshills/sneak/internal/dispatcher/handlers/sneak"
	"github.com/dshills/sneak/internal/input"
	"github.com/dshills/sneak/internal/input/vim"
	luaplugin "github.com/dshills/sneak/internal/plugin/lua"
)

// InitScript is the Lua file run from the config directory at startup.
const InitScript = "init.lua"

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Logger
	logCfg := DefaultLoggerConfig()
	if app.opts.LogOutput != nil {
		logCfg.Output = app.opts.LogOutput
	}
	app.logger = NewLogger(logCfg)

	// 2. Config. A bad config file is not fatal; defaults still apply.
	var cfgOpts []config.Option
	if app.opts.ConfigPath != "" {
		cfgOpts = append(cfgOpts, config.WithFile(app.opts.ConfigPath))
	}
	if app.opts.EnvPrefix != "" {
		cfgOpts = append(cfgOpts, config.WithEnvPrefix(app.opts.EnvPrefix))
	}
	cfgOpts = append(cfgOpts, config.WithWatcher(app.opts.WatchConfig))
	app.config = config.New(cfgOpts...)
	if err := app.config.Load(context.Background()); err != nil {
		app.logger.WithComponent("config").Warn("using defaults: %v", err)
	}
	app.applyLogLevel()

	// 3. Document
	if err := app.openDocument(); err != nil {
		return &InitError{Component: "document", Err: err}
	}

	// 4. Dispatcher and handlers
	var regOpts []vim.RegisterOption
	if app.opts.Clipboard != nil {
		regOpts = append(regOpts, vim.WithClipboard(app.opts.Clipboard))
	}
	app.registers = vim.NewRegisterStore(regOpts...)
	app.dispatcher = dispatcher.New(dispatcher.DefaultConfig().WithMetrics())
	app.dispatcher.SetEngine(app.doc.Buffer)
	app.dispatcher.SetCursor(app.doc.Cursor)
	app.dispatcher.SetJumps(app.doc.Jumps)
	app.dispatcher.SetHistory(app.doc.History)
	app.dispatcher.SetSettingsSource(app.config.Settings)
	app.dispatcher.SetLogger(app.logger.WithComponent("dispatcher"))
	app.dispatcher.AddPreHook(dispatcher.LoggingHook{})
	app.dispatcher.AddPostHook(dispatcher.LoggingHook{})
	app.dispatcher.RegisterNamespace("sneak", sneakhandler.NewHandler())
	app.dispatcher.RegisterNamespace("cursor", cursorhandler.NewHandler())
	app.dispatcher.RegisterNamespace("operator", operator.NewOperatorHandler(app.registers))
	app.dispatcher.RegisterNamespace("edit", edithandler.NewHandler())

	// 5. Input
	app.input = input.NewHandler()

	// 6. Config subscriptions
	app.config.OnChange(app.onConfigChange)

	// 7. Lua
	app.lua = luaplugin.NewState(luaplugin.WithLogger(app.logger.WithComponent("lua")))
	luaplugin.NewModule(&luaHost{app: app}).Register(app.lua)
	if !app.opts.NoScripts {
		app.runInitScript()
	}

	return nil
}

// openDocument loads the file or scratch text and places the cursor.
func (app *Application) openDocument() error {
	if app.opts.File != "" {
		doc, err := OpenDocument(app.opts.File)
		if err != nil {
			return err
		}
		app.doc = doc
	} else {
		app.doc = NewScratchDocument(app.opts.Text)
	}
	app.doc.Cursor.Set(app.doc.Buffer.ClampPoint(app.opts.Start))
	return nil
}

// applyLogLevel sets the log level from the option, falling back to the
// logging.level setting.
func (app *Application) applyLogLevel() {
	name := app.opts.LogLevel
	if name == "" {
		name = app.config.Logging().Level
	}
	level, ok := LookupLogLevel(name)
	if !ok {
		app.logger.Warn("unknown log level %q, using %s", name, level)
	}
	app.logger.SetLevel(level)
}

// onConfigChange runs after every config reload or runtime Set.
func (app *Application) onConfigChange(cfg *config.Config) {
	if app.opts.LogLevel == "" {
		app.applyLogLevel()
	}
	st := cfg.Settings()
	app.logger.WithComponent("config").Info("settings changed: enabled=%v useIgnorecaseAndSmartcase=%v ignorecase=%v smartcase=%v",
		st.Enabled, st.UseIgnorecaseAndSmartcase, st.IgnoreCase, st.SmartCase)
}

// runInitScript runs init.lua from the config file's directory.
func (app *Application) runInitScript() {
	path := app.config.Path()
	if path == "" {
		return
	}
	script := filepath.Join(filepath.Dir(path), InitScript)

	log := app.logger.WithComponent("lua")
	ran, err := app.lua.RunFile(script)
	switch {
	case err != nil:
		log.Warn("%v", err)
	case ran:
		log.Debug("ran %s", script)
	}
}
