// File: level.go
// Title: Log Level Definitions
// Description: Log levels, their names and their zap equivalents. One table
//              drives String, ShortString, ParseLevel and ZapLevel.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-10-26
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2025-10-19 v0.2.0: Dropped console colors
// - 2025-10-26 v0.3.0: Table driven names, zap mapping and zap level parsing

package log

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError

	// LevelFatal only serves as a minimum level that silences a logger.
	// Nothing in this module exits the process.
	LevelFatal

	// LevelAudit is always logged regardless of the minimum level
	LevelAudit
)

type levelSpec struct {
	name    string
	short   string
	zap     zapcore.Level
	aliases []string
}

// zap's fatal and panic levels end the program, so the top levels map to
// zap's error level.
var levelSpecs = [...]levelSpec{
	LevelTrace: {"trace", "TRC", zapcore.DebugLevel, nil},
	LevelDebug: {"debug", "DBG", zapcore.DebugLevel, nil},
	LevelInfo:  {"info", "INF", zapcore.InfoLevel, []string{"information"}},
	LevelWarn:  {"warn", "WRN", zapcore.WarnLevel, []string{"warning"}},
	LevelError: {"error", "ERR", zapcore.ErrorLevel, []string{"dpanic", "panic"}},
	LevelFatal: {"fatal", "FTL", zapcore.ErrorLevel, nil},
	LevelAudit: {"audit", "AUD", zapcore.InfoLevel, nil},
}

var levelsByName = func() map[string]Level {
	m := make(map[string]Level)
	for i, spec := range levelSpecs {
		level := Level(i)
		m[spec.name] = level
		m[strings.ToLower(spec.short)] = level
		for _, alias := range spec.aliases {
			m[alias] = level
		}
	}
	return m
}()

func (l Level) spec() (levelSpec, bool) {
	if l < 0 || int(l) >= len(levelSpecs) {
		return levelSpec{}, false
	}
	return levelSpecs[l], true
}

// String returns the lower case level name, e.g. "warn"
func (l Level) String() string {
	if s, ok := l.spec(); ok {
		return s.name
	}
	return "unknown"
}

// ShortString returns a three letter representation of the log level
func (l Level) ShortString() string {
	if s, ok := l.spec(); ok {
		return s.short
	}
	return "???"
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	if l == LevelAudit {
		return true
	}
	return l >= minLevel
}

// ZapLevel maps a toolkit level onto the closest zap level. Unknown levels
// map to zap's error level.
func ZapLevel(level Level) zapcore.Level {
	if s, ok := level.spec(); ok {
		return s.zap
	}
	return zapcore.ErrorLevel
}

// ParseLevel reads a level name, its three letter form or a zap level name
func ParseLevel(level string) (Level, error) {
	if l, ok := levelsByName[strings.ToLower(strings.TrimSpace(level))]; ok {
		return l, nil
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}
