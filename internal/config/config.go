package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dshills/sneak/internal/config/loader"
	"github.com/dshills/sneak/internal/config/watcher"
)

// Config provides unified access to the sneak configuration.
// It manages loading, live reloading and change notification.
type Config struct {
	mu sync.RWMutex

	layers layerStack

	path          string
	envPrefix     string
	fs            loader.FileSystem
	enableWatcher bool
	watcher       *watcher.Watcher

	subscribers []func(*Config)

	// lastErr is the most recent reload failure. The previous file layer
	// stays active when a reload fails.
	lastErr error

	// configErrors records type problems found by the typed accessors.
	configErrors map[string]error
}

// Option configures a Config instance.
type Option func(*Config)

// WithFile sets the TOML file to load. An empty path skips the file layer.
func WithFile(path string) Option {
	return func(c *Config) {
		c.path = path
	}
}

// WithEnvPrefix sets the environment variable prefix. An empty prefix
// disables the environment layer.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// WithWatcher enables file watching for live reload.
func WithWatcher(enable bool) Option {
	return func(c *Config) {
		c.enableWatcher = enable
	}
}

// WithFileSystem sets the file system the file layer is read from.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fsys
	}
}

// New creates a new Config holding only the built-in defaults.
// Call Load to read the file and environment layers.
func New(opts ...Option) *Config {
	c := &Config{
		envPrefix: "SNEAK_",
		fs:        loader.DefaultFS(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.layers.set(&Layer{Name: LayerDefaults, Priority: PriorityDefaults, Data: defaultConfig()})
	return c
}

// DefaultPath returns the default config file location,
// $XDG_CONFIG_HOME/sneak/config.toml or ~/.config/sneak/config.toml.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sneak", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "sneak", "config.toml")
}

// Load reads the file and environment layers and starts the watcher.
// A missing config file is not an error.
func (c *Config) Load(_ context.Context) error {
	c.mu.Lock()

	if err := c.loadFile(); err != nil {
		c.mu.Unlock()
		return err
	}
	if err := c.loadEnvironment(); err != nil {
		c.mu.Unlock()
		return err
	}

	startWatcher := c.enableWatcher && c.path != "" && c.watcher == nil
	c.mu.Unlock()

	// Watcher callbacks take c.mu, so start it outside the lock.
	if startWatcher {
		w, err := watcher.New(watcher.WithErrorHandler(c.recordReloadError))
		if err != nil {
			return fmt.Errorf("config watcher: %w", err)
		}
		if err := w.Watch(c.path); err != nil {
			w.Stop()
			return fmt.Errorf("config watcher: %w", err)
		}
		w.OnChange(c.handleFileChange)
		w.Start()

		c.mu.Lock()
		c.watcher = w
		c.mu.Unlock()
	}
	return nil
}

// Close shuts down the configuration system.
func (c *Config) Close() {
	c.mu.Lock()
	w := c.watcher
	c.watcher = nil
	c.mu.Unlock()

	if w != nil {
		w.Stop()
	}
}

// Path returns the config file path, or "" when there is none.
func (c *Config) Path() string {
	return c.path
}

// Reload re-reads the config file and notifies subscribers.
func (c *Config) Reload() error {
	c.mu.Lock()
	err := c.loadFile()
	c.lastErr = err
	c.mu.Unlock()

	if err != nil {
		return err
	}
	c.notify()
	return nil
}

// LastError returns the most recent reload failure, if any.
func (c *Config) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

// OnChange registers fn to run after every reload and every Set.
func (c *Config) OnChange(fn func(*Config)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// Layers returns the active layer names, lowest priority first.
func (c *Config) Layers() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.layers.names()
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return getPath(c.layers.merge(), path)
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetBool returns a boolean value at the given path.
func (c *Config) GetBool(path string) (bool, error) {
	v, ok := c.Get(path)
	if !ok {
		return false, ErrSettingNotFound
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
	}
	return b, nil
}

// Set sets a value in the runtime layer and notifies subscribers.
// Only known settings with the right type are accepted.
func (c *Config) Set(path string, value any) error {
	kind, ok := settingKinds[path]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSetting, path)
	}
	if actual := typeName(value); actual != kind {
		return &TypeError{Path: path, Expected: kind, Actual: actual}
	}

	c.mu.Lock()
	rt := c.layers.get(LayerRuntime)
	if rt == nil {
		rt = &Layer{Name: LayerRuntime, Priority: PriorityRuntime, Data: make(map[string]any)}
	}
	if err := setPath(rt.Data, path, value); err != nil {
		c.mu.Unlock()
		return err
	}
	c.layers.set(rt)
	c.mu.Unlock()

	c.notify()
	return nil
}

// Merged returns a copy of the fully merged configuration.
func (c *Config) Merged() map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return loader.Clone(c.layers.merge())
}

// loadFile replaces the file layer. Caller holds c.mu.
func (c *Config) loadFile() error {
	if c.path == "" {
		return nil
	}
	data, err := loader.ForPath(c.fs, c.path).Load()
	if err != nil {
		return err
	}
	if data == nil {
		c.layers.remove(LayerFile)
		return nil
	}
	c.layers.set(&Layer{Name: LayerFile, Priority: PriorityFile, Data: data})
	return nil
}

// loadEnvironment replaces the environment layer. Caller holds c.mu.
func (c *Config) loadEnvironment() error {
	if c.envPrefix == "" {
		return nil
	}
	data, err := loader.NewEnvLoader(c.envPrefix).Load()
	if err != nil {
		return err
	}
	if len(data) > 0 {
		c.layers.set(&Layer{Name: LayerEnv, Priority: PriorityEnv, Data: data})
	}
	return nil
}

// handleFileChange reloads the file layer after a watcher event.
func (c *Config) handleFileChange(event watcher.Event) {
	c.mu.Lock()
	var err error
	switch event.Op {
	case watcher.OpRemove, watcher.OpRename:
		c.layers.remove(LayerFile)
	default:
		err = c.loadFile()
	}
	c.lastErr = err
	c.mu.Unlock()

	if err == nil {
		c.notify()
	}
}

func (c *Config) recordReloadError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = err
}

func (c *Config) notify() {
	c.mu.RLock()
	subs := make([]func(*Config), len(c.subscribers))
	copy(subs, c.subscribers)
	c.mu.RUnlock()

	for _, fn := range subs {
		fn(c)
	}
}

// settingKinds lists every known setting and its value type.
var settingKinds = map[string]string{
	"sneak.enabled":                   "bool",
	"sneak.useIgnorecaseAndSmartcase": "bool",
	"search.ignorecase":               "bool",
	"search.smartcase":                "bool",
	"logging.level":                   "string",
}

// IsSetting reports whether path names a known setting.
func IsSetting(path string) bool {
	_, ok := settingKinds[path]
	return ok
}

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	return map[string]any{
		"sneak": map[string]any{
			"enabled":                   false,
			"useIgnorecaseAndSmartcase": false,
		},
		"search": map[string]any{
			"ignorecase": false,
			"smartcase":  false,
		},
		"logging": map[string]any{
			"level": "info",
		},
	}
}

// getPath retrieves a value from a nested map using a dot-separated path.
func getPath(m map[string]any, path string) (any, bool) {
	parts := splitPath(path)
	if len(parts) == 0 {
		return nil, false
	}

	current := any(m)
	for _, part := range parts {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = cm[part]; !ok {
			return nil, false
		}
	}
	return current, true
}

// setPath sets a value in a nested map using a dot-separated path.
func setPath(m map[string]any, path string, value any) error {
	parts := splitPath(path)
	if len(parts) == 0 {
		return ErrInvalidPath
	}

	current := m
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part]
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		nextMap, ok := next.(map[string]any)
		if !ok {
			return ErrInvalidPath
		}
		current = nextMap
	}

	current[parts[len(parts)-1]] = value
	return nil
}

// splitPath splits a dot-separated path, dropping empty segments.
func splitPath(path string) []string {
	var parts []string
	start := 0
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == '.' {
			if i > start {
				parts = append(parts, path[start:i])
			}
			start = i + 1
		}
	}
	return parts
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case map[string]any:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}
