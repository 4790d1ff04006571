// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML parsing, environment overrides, struct
//              decoding and file watching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2025-10-19 v0.2.0: testify assertions, decode and watch tests

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	tkerror "github.com/msto63/toolkit/core/error"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const tomlContent = `
[database]
host = "localhost"
port = 5432
ssl = true

[server]
timeout = "30s"
workers = 4
ratio = 0.75
features = ["auth", "logging", "metrics"]

[query.defaults]
format = "json"
limit = "50"
`

const yamlContent = `
database:
  host: db.example.com
  port: 3306
server:
  timeout: 1m
  features:
    - a
    - b
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("TOML", func(t *testing.T) {
		cfg, err := Load(writeFile(t, "test.toml", tomlContent))
		require.NoError(t, err)

		assert.Equal(t, FormatTOML, cfg.Format())
		assert.Equal(t, "localhost", cfg.GetString("database.host"))
		assert.Equal(t, 5432, cfg.GetInt("database.port"))
		assert.True(t, cfg.GetBool("database.ssl"))
		assert.Equal(t, 30*time.Second, cfg.GetDuration("server.timeout"))
		assert.InDelta(t, 0.75, cfg.GetFloat("server.ratio"), 1e-9)
		assert.Equal(t, []string{"auth", "logging", "metrics"}, cfg.GetStringSlice("server.features"))
	})

	t.Run("YAML", func(t *testing.T) {
		cfg, err := Load(writeFile(t, "test.yaml", yamlContent))
		require.NoError(t, err)

		assert.Equal(t, FormatYAML, cfg.Format())
		assert.Equal(t, "db.example.com", cfg.GetString("database.host"))
		assert.Equal(t, 3306, cfg.GetInt("database.port"))
		assert.Equal(t, time.Minute, cfg.GetDuration("server.timeout"))
		assert.Equal(t, []string{"a", "b"}, cfg.GetStringSlice("server.features"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
		assert.Equal(t, tkerror.CodeMissingConfig, tkerror.GetCode(err))
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		require.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Load(writeFile(t, "bad.toml", "[database\nhost="))
		require.Error(t, err)
		assert.Equal(t, tkerror.CodeInvalidConfig, tkerror.GetCode(err))
	})
}

func TestDefaults(t *testing.T) {
	path := writeFile(t, "test.toml", tomlContent)
	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"database": map[string]interface{}{"host": "default", "user": "admin"},
			"log":      map[string]interface{}{"level": "info"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.GetString("database.host"))
	assert.Equal(t, "admin", cfg.GetString("database.user"))
	assert.Equal(t, "info", cfg.GetString("log.level"))
}

func TestGetterDefaults(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "fallback", cfg.GetString("missing.key", "fallback"))
	assert.Equal(t, 7, cfg.GetInt("missing.key", 7))
	assert.True(t, cfg.GetBool("missing.key", true))
	assert.Equal(t, time.Second, cfg.GetDuration("missing.key", time.Second))
	assert.Nil(t, cfg.GetStringSlice("missing.key"))
	assert.False(t, cfg.Has("missing.key"))
	assert.True(t, cfg.Has("database.host"))
}

func TestEnvOverride(t *testing.T) {
	cfg, err := LoadWithOptions(writeFile(t, "test.toml", tomlContent), LoadOptions{EnvPrefix: "tktest"})
	require.NoError(t, err)

	t.Setenv("TKTEST_DATABASE_HOST", "override")
	t.Setenv("TKTEST_DATABASE_PORT", "6543")

	assert.Equal(t, "override", cfg.GetString("database.host"))
	assert.Equal(t, 6543, cfg.GetInt("database.port"))
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TKENV_SERVER_PORT", "8080")
	t.Setenv("TKENV_SERVER_DEBUG", "true")
	t.Setenv("TKENV_NAME", "toolkit")

	cfg := LoadFromEnv("TKENV")

	assert.Equal(t, 8080, cfg.GetInt("server.port"))
	assert.True(t, cfg.GetBool("server.debug"))
	assert.Equal(t, "toolkit", cfg.GetString("name"))
}

func TestSetAndGetAll(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	require.NoError(t, err)

	cfg.Set("server.workers", 8)
	cfg.Set("new.nested.key", "value")
	assert.Equal(t, 8, cfg.GetInt("server.workers"))
	assert.Equal(t, "value", cfg.GetString("new.nested.key"))

	all := cfg.GetAll()
	all["database"].(map[string]interface{})["host"] = "mutated"
	assert.Equal(t, "localhost", cfg.GetString("database.host"))
}

func TestSubAndKeys(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, []string{"database", "query", "server"}, cfg.Keys(""))
	assert.Equal(t, []string{"format", "limit"}, cfg.Keys("query.defaults"))
	assert.Nil(t, cfg.Keys("database.host"))

	sub := cfg.Sub("query.defaults")
	require.NotNil(t, sub)
	assert.Equal(t, "json", sub["format"])
	assert.Nil(t, cfg.Sub("database.host"))
}

func TestDecode(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	require.NoError(t, err)

	var server struct {
		Timeout  time.Duration `config:"timeout"`
		Workers  int           `config:"workers"`
		Features []string      `config:"features"`
	}
	require.NoError(t, cfg.Decode("server", &server))
	assert.Equal(t, 30*time.Second, server.Timeout)
	assert.Equal(t, 4, server.Workers)
	assert.Equal(t, []string{"auth", "logging", "metrics"}, server.Features)

	var query struct {
		Defaults map[string]string `config:"defaults"`
	}
	require.NoError(t, cfg.Decode("query", &query))
	assert.Equal(t, "50", query.Defaults["limit"])

	err = cfg.Decode("missing", &query)
	require.Error(t, err)
	assert.Equal(t, tkerror.CodeNotFound, tkerror.GetCode(err))

	var port int
	require.NoError(t, cfg.Decode("database.port", &port))
	assert.Equal(t, 5432, port)
}

func TestWatch(t *testing.T) {
	path := writeFile(t, "watch.toml", "[app]\nname = \"one\"\n")
	cfg, err := LoadWithOptions(path, LoadOptions{
		Watch:    true,
		Defaults: map[string]interface{}{"app": map[string]interface{}{"port": 8080}},
	})
	require.NoError(t, err)
	defer cfg.Close()
	assert.Equal(t, 8080, cfg.GetInt("app.port"))

	changed := make(chan string, 1)
	cfg.OnChange(func(old, updated *Config) {
		if updated.GetString("app.name") != "two" {
			return
		}
		select {
		case changed <- updated.GetString("app.name"):
		default:
		}
	})

	require.NoError(t, os.WriteFile(path, []byte("[app]\nname = \"two\"\n"), 0o644))

	select {
	case got := <-changed:
		assert.Equal(t, "two", got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}
	assert.Equal(t, "two", cfg.GetString("app.name"))
	assert.True(t, cfg.Has("app.port"), "defaults survive a reload")
	assert.Equal(t, 8080, cfg.GetInt("app.port"))
}

func TestCloseWithoutWatch(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	require.NoError(t, err)
	assert.NoError(t, cfg.Close())
	assert.NoError(t, cfg.Watch())
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "toml", FormatTOML.String())
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "auto", FormatAuto.String())
	assert.Equal(t, "unknown", Format(42).String())
}
