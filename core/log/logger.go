// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type: leveled structured logging with
//              immutable contextual clones and pluggable emitters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-10-19 v0.2.0: Emitter abstraction (writer or zap), uuid correlation
//                       IDs, async mode removed

package log

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/google/uuid"

	tkerror "github.com/msto63/toolkit/core/error"
)

// Emitter receives entries that passed the level filter
type Emitter interface {
	Emit(entry *Entry) error
}

// writerEmitter formats entries and writes them to an io.Writer
type writerEmitter struct {
	mu        sync.Mutex
	formatter Formatter
	output    io.Writer
}

func (w *writerEmitter) Emit(entry *Entry) error {
	data, err := w.formatter.Format(entry)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err = w.output.Write(data)
	return err
}

// Logger represents a structured logger with contextual information
type Logger struct {
	level         Level
	formatter     Formatter
	output        io.Writer
	emitter       Emitter
	name          string
	contextFields Fields
	correlationID string
	enableCaller  bool
	callerSkip    int

	mutex sync.RWMutex
}

// Config represents logger configuration
type Config struct {
	Level        Level
	Format       Format
	Output       io.Writer
	Name         string
	EnableCaller bool
}

// New creates a new logger writing JSON to stdout at the default level
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatJSON})
}

// NewNop creates a logger that discards everything. Library packages use it
// as their default so that they stay silent unless a logger is injected.
func NewNop() *Logger {
	return NewWithConfig(Config{Level: LevelFatal, Output: io.Discard})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stdout
	}

	l := &Logger{
		level:         config.Level,
		formatter:     GetFormatter(config.Format),
		output:        output,
		name:          config.Name,
		contextFields: make(Fields),
		enableCaller:  config.EnableCaller,
	}
	l.emitter = &writerEmitter{formatter: l.formatter, output: l.output}
	return l
}

// NewWithEmitter creates a logger that hands entries to a custom emitter
func NewWithEmitter(level Level, emitter Emitter) *Logger {
	return &Logger{
		level:         level,
		formatter:     NewJSONFormatter(),
		output:        io.Discard,
		emitter:       emitter,
		contextFields: make(Fields),
	}
}

// WithLevel returns a copy with the minimum log level changed
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithFormat returns a copy writing in the given format
func (l *Logger) WithFormat(format Format) *Logger {
	clone := l.clone()
	clone.formatter = GetFormatter(format)
	clone.emitter = &writerEmitter{formatter: clone.formatter, output: clone.output}
	return clone
}

// WithOutput returns a copy writing to output
func (l *Logger) WithOutput(output io.Writer) *Logger {
	clone := l.clone()
	clone.output = output
	clone.emitter = &writerEmitter{formatter: clone.formatter, output: output}
	return clone
}

// WithName returns a copy with the logger name set
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithField returns a copy that adds a field to all entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields returns a copy that adds fields to all entries
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// WithCorrelationID returns a copy tagging entries with a correlation ID
func (l *Logger) WithCorrelationID(correlationID string) *Logger {
	clone := l.clone()
	clone.correlationID = correlationID
	return clone
}

// WithNewCorrelationID returns a copy tagged with a fresh random UUID
func (l *Logger) WithNewCorrelationID() *Logger {
	return l.WithCorrelationID(uuid.NewString())
}

// WithCaller returns a copy that records the calling file and line
func (l *Logger) WithCaller(skip int) *Logger {
	clone := l.clone()
	clone.enableCaller = true
	clone.callerSkip = skip
	return clone
}

// CorrelationID returns the correlation ID attached to this logger
func (l *Logger) CorrelationID() string {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.correlationID
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Audit logs an audit message, regardless of the minimum level
func (l *Logger) Audit(message string, fields ...Fields) {
	l.log(LevelAudit, message, nil, fields...)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs a warning with an error object
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// LogError logs err at a level derived from its severity. Code, severity,
// operation and details of a toolkit error become fields.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	te, ok := err.(*tkerror.Error)
	if !ok {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     te.Code(),
		"error_severity": te.Severity().String(),
	}
	if te.Operation() != "" {
		fields["error_operation"] = te.Operation()
	}
	for k, v := range te.Details() {
		fields["error_"+k] = v
	}

	level := LevelError
	switch te.Severity() {
	case tkerror.SeverityLow:
		level = LevelInfo
	case tkerror.SeverityMedium:
		level = LevelWarn
	}
	l.log(level, te.Message(), err, fields)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return level.ShouldLog(l.level)
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.mutex.RLock()
	if !level.ShouldLog(l.level) {
		l.mutex.RUnlock()
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Error = err
	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	emitter := l.emitter
	withCaller, skip := l.enableCaller, l.callerSkip
	l.mutex.RUnlock()

	for _, set := range fields {
		for k, v := range set {
			entry.Fields[k] = v
		}
	}

	if withCaller {
		// log, public method, user code
		if pc, file, line, ok := runtime.Caller(2 + skip); ok {
			fn := "unknown"
			if f := runtime.FuncForPC(pc); f != nil {
				fn = f.Name()
				if idx := strings.LastIndex(fn, "."); idx != -1 {
					fn = fn[idx+1:]
				}
			}
			entry.Caller = &CallerInfo{Function: fn, File: filepath.Base(file), Line: line}
		}
	}

	_ = emitter.Emit(entry)
}

func (l *Logger) clone() *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		emitter:       l.emitter,
		name:          l.name,
		correlationID: l.correlationID,
		enableCaller:  l.enableCaller,
		callerSkip:    l.callerSkip,
		contextFields: make(Fields, len(l.contextFields)),
	}
	for k, v := range l.contextFields {
		clone.contextFields[k] = v
	}
	return clone
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New()
)

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// Debug logs a debug message using the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Info logs an info message using the default logger
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Warn logs a warning message using the default logger
func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

// Error logs an error message using the default logger
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}
