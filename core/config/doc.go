// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides configuration management for toolkit
//              commands and packages with TOML and YAML support.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-10-19 v0.2.0: Struct decoding and fsnotify watching

/*
Package config provides configuration management for toolkit applications.

Key Features:
  • Multi-format support (TOML, YAML) with automatic detection
  • Environment variable override with optional prefix
  • Dot-notation access to nested values
  • Struct binding of sections via mapstructure
  • Hot-reloading with change notification callbacks
  • Thread-safe concurrent access

# Basic Configuration Loading

	cfg, err := config.Load("toolkit.toml")
	if err != nil {
		return err
	}

	host := cfg.GetString("server.host", "localhost")
	timeout := cfg.GetDuration("server.timeout", 30*time.Second)

# Environment Overrides

With LoadOptions.EnvPrefix set to "TOOLKIT", the key server.host is
overridden by TOOLKIT_SERVER_HOST. Without a prefix, SERVER_HOST is used.

# Struct Binding

	var query struct {
		Defaults map[string]string `config:"defaults"`
		Timeout  time.Duration     `config:"timeout"`
	}
	if err := cfg.Decode("query", &query); err != nil {
		return err
	}

# Watching

	cfg, err := config.LoadWithOptions(path, config.LoadOptions{Watch: true})
	if err != nil {
		return err
	}
	defer cfg.Close()

	cfg.OnChange(func(old, updated *config.Config) {
		// react to the new values
	})

Errors are *tkerror.Error values with codes CONFIG_ERROR, MISSING_CONFIG or
INVALID_CONFIG.
*/
package config
