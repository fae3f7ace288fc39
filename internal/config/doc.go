// Package config provides the configuration system for sneak.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Runtime (Set, Lua)      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment (SNEAK_*)   │
//	├─────────────────────────────┤
//	│  2. Config file (TOML)      │  ← ~/.config/sneak/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Settings:
//
//	sneak.enabled                    bool   false
//	sneak.useIgnorecaseAndSmartcase  bool   false
//	search.ignorecase                bool   false
//	search.smartcase                 bool   false
//	logging.level                    string "info"
//
// # Basic Usage
//
//	cfg := config.New(config.WithFile(path))
//	if err := cfg.Load(ctx); err != nil {
//	    return err
//	}
//	defer cfg.Close()
//
//	settings := cfg.Settings() // sneak.Settings snapshot
//
// # Live Reload
//
// With WithWatcher(true) the config file is watched and reloaded on
// change. Subscribers registered with OnChange run after every reload
// and every Set.
package config
