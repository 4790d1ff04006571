// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for loading and reading
//              configuration data from TOML and YAML files with environment
//              variable overrides and dot-notation access.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-10-19 v0.2.0: Dropped env cache and request context, Sub and
//                       Keys accessors, fsnotify based watching

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	tkerror "github.com/msto63/toolkit/core/error"
	tkerrors "github.com/msto63/toolkit/core/errors"
	"github.com/msto63/toolkit/core/log"
	"github.com/msto63/toolkit/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
	defaults  map[string]interface{}
	logger    *log.Logger

	watchMu  sync.Mutex
	watchers []ChangeHandler
	watch    *watcher
}

// ChangeHandler is called after the file was reloaded
type ChangeHandler func(oldConfig, newConfig *Config)

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values, overridden by the file
	Watch     bool                   // Reload on file changes
	Logger    *log.Logger            // Receives reload failures
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, tkerrors.InvalidInput(tkerrors.ModuleConfig, "load", filePath, "config file path")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, tkerrors.NotFound(tkerrors.ModuleConfig, "load", filePath).
			WithCode(tkerror.CodeMissingConfig).
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, tkerror.Wrap(err, "failed to read config file").
			WithCode(tkerror.CodeConfigError).
			WithOperation("config.load").
			WithDetail("filePath", filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, tkerror.Wrap(err, "failed to parse config file").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	logger := options.Logger
	if logger == nil {
		logger = log.NewNop()
	}

	config := &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
		defaults:  options.Defaults,
		logger:    logger.WithName("config"),
	}

	if options.Watch {
		if err := config.startWatching(); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, tkerror.Wrap(err, "failed to parse config from string").
			WithDetail("format", format.String())
	}

	return &Config{data: data, format: format, logger: log.NewNop()}, nil
}

// LoadFromEnv builds a configuration from environment variables with the
// given prefix. MYAPP_DATABASE_HOST becomes database.host.
func LoadFromEnv(envPrefix string) *Config {
	data := make(map[string]interface{})
	prefix := ""
	if envPrefix != "" {
		prefix = strings.ToUpper(envPrefix) + "_"
	}

	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(key, prefix) {
			continue
		}
		configKey := strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(key, prefix), "_", "."))
		setNestedValue(data, configKey, parseEnvValue(value))
	}

	return &Config{data: data, format: FormatAuto, envPrefix: envPrefix, logger: log.NewNop()}
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, tkerror.Wrap(err, "TOML parse error").
				WithCode(tkerror.CodeInvalidConfig).
				WithOperation("config.parse")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, tkerror.Wrap(err, "YAML parse error").
				WithCode(tkerror.CodeInvalidConfig).
				WithOperation("config.parse")
		}
	default:
		return nil, tkerrors.NotSupported(tkerrors.ModuleConfig, "parse", fmt.Sprintf("format %s", format))
	}

	return data, nil
}

func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(defaults)+len(data))
	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range data {
		if dm, ok := result[k].(map[string]interface{}); ok {
			if vm, ok := v.(map[string]interface{}); ok {
				result[k] = mergeDefaults(vm, dm)
				continue
			}
		}
		result[k] = v
	}
	return result
}

func parseEnvValue(value string) interface{} {
	if b, err := strconv.ParseBool(value); err == nil && (value == "true" || value == "false") {
		return b
	}
	if i, err := strconv.Atoi(value); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}

func setNestedValue(data map[string]interface{}, key string, value interface{}) {
	keys := strings.Split(key, ".")
	current := data
	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		return envValue
	}

	switch v := c.getValue(key).(type) {
	case nil:
		return first(defaultValue, "")
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if i, err := strconv.Atoi(envValue); err == nil {
			return i
		}
	}

	switch v := c.getValue(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return first(defaultValue, 0)
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if b, err := strconv.ParseBool(envValue); err == nil {
			return b
		}
	}

	switch v := c.getValue(key).(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return first(defaultValue, false)
}

// GetFloat returns a float64 configuration value with optional default
func (c *Config) GetFloat(key string, defaultValue ...float64) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if f, err := strconv.ParseFloat(envValue, 64); err == nil {
			return f
		}
	}

	switch v := c.getValue(key).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return first(defaultValue, 0)
}

// GetDuration returns a time.Duration configuration value with optional default
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if d, err := time.ParseDuration(envValue); err == nil {
			return d
		}
	}

	switch v := c.getValue(key).(type) {
	case string:
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	case time.Duration:
		return v
	case int:
		return time.Duration(v)
	case int64:
		return time.Duration(v)
	}
	return first(defaultValue, 0)
}

// GetStringSlice returns a string slice configuration value with optional default
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch v := c.getValue(key).(type) {
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result
	case string:
		return []string{v}
	}
	return first(defaultValue, nil)
}

// Sub returns a deep copy of the map stored under key, or nil
func (c *Config) Sub(key string) map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if m, ok := c.getValue(key).(map[string]interface{}); ok {
		return deepCopyMap(m)
	}
	return nil
}

// Keys returns the sorted child keys of the map stored under key. An empty
// key lists the top level.
func (c *Config) Keys(key string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	m := c.data
	if key != "" {
		var ok bool
		if m, ok = c.getValue(key).(map[string]interface{}); !ok {
			return nil
		}
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c *Config) getValue(key string) interface{} {
	keys := strings.Split(key, ".")
	current := c.data
	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

func (c *Config) getEnvValue(key string) string {
	return os.Getenv(c.formatEnvKey(key))
}

// formatEnvKey maps database.host to DATABASE_HOST, or PREFIX_DATABASE_HOST
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

// Has checks if a configuration key exists
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.getValue(key) != nil
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		c.data = make(map[string]interface{})
	}
	setNestedValue(c.data, key, value)
}

// GetAll returns a deep copy of all configuration data
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deepCopyMap(c.data)
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = deepCopyMap(val)
		case []interface{}:
			dst[k] = append([]interface{}(nil), val...)
		default:
			dst[k] = v
		}
	}
	return dst
}

func first[T any](values []T, fallback T) T {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}
