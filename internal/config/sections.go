package config

import "github.com/dshills/sneak/internal/sneak"

// SneakConfig holds the plugin switches.
type SneakConfig struct {
	// Enabled turns the sneak motions on.
	Enabled bool

	// UseIgnorecaseAndSmartcase makes sneak honor the search case settings.
	UseIgnorecaseAndSmartcase bool
}

// SearchConfig holds the editor-wide search case settings.
type SearchConfig struct {
	IgnoreCase bool
	SmartCase  bool
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string
}

// Sneak returns type-safe access to sneak settings.
func (c *Config) Sneak() SneakConfig {
	return SneakConfig{
		Enabled:                   c.getBoolOr("sneak.enabled", false),
		UseIgnorecaseAndSmartcase: c.getBoolOr("sneak.useIgnorecaseAndSmartcase", false),
	}
}

// Search returns type-safe access to search settings.
func (c *Config) Search() SearchConfig {
	return SearchConfig{
		IgnoreCase: c.getBoolOr("search.ignorecase", false),
		SmartCase:  c.getBoolOr("search.smartcase", false),
	}
}

// Logging returns type-safe access to logging settings.
func (c *Config) Logging() LoggingConfig {
	return LoggingConfig{
		Level: c.getStringOr("logging.level", "info"),
	}
}

// Settings returns the snapshot the sneak motions read.
func (c *Config) Settings() sneak.Settings {
	sn := c.Sneak()
	search := c.Search()
	return sneak.Settings{
		Enabled:                   sn.Enabled,
		UseIgnorecaseAndSmartcase: sn.UseIgnorecaseAndSmartcase,
		IgnoreCase:                search.IgnoreCase,
		SmartCase:                 search.SmartCase,
	}
}

// These accessors return the default for ErrSettingNotFound. Type errors
// also return the default but are recorded for ConfigErrors.

func (c *Config) getStringOr(path string, defaultValue string) string {
	v, err := c.GetString(path)
	if err != nil {
		if err != ErrSettingNotFound {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getBoolOr(path string, defaultValue bool) bool {
	v, err := c.GetBool(path)
	if err != nil {
		if err != ErrSettingNotFound {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

// recordConfigError keeps the first error seen for each path.
func (c *Config) recordConfigError(path string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.configErrors == nil {
		c.configErrors = make(map[string]error)
	}
	if _, exists := c.configErrors[path]; !exists {
		c.configErrors[path] = err
	}
}

// ConfigErrors returns a copy of the configuration errors encountered
// during access.
func (c *Config) ConfigErrors() map[string]error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.configErrors == nil {
		return nil
	}
	result := make(map[string]error, len(c.configErrors))
	for k, v := range c.configErrors {
		result[k] = v
	}
	return result
}
