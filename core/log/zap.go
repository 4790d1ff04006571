// File: zap.go
// Title: Zap Bridge
// Description: Routes toolkit log entries into a zap logger so applications
//              built on zap receive toolkit output through their own cores.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package log

import (
	"go.uber.org/zap"
)

type zapEmitter struct {
	z *zap.Logger
}

// FromZap creates a Logger that emits through z. Level filtering happens in
// both the Logger and the zap core; the stricter of the two wins.
func FromZap(z *zap.Logger, level Level) *Logger {
	return NewWithEmitter(level, &zapEmitter{z: z})
}

func (e *zapEmitter) Emit(entry *Entry) error {
	ce := e.z.Check(ZapLevel(entry.Level), entry.Message)
	if ce == nil {
		return nil
	}

	fields := make([]zap.Field, 0, len(entry.Fields)+4)
	if entry.Logger != "" {
		fields = append(fields, zap.String("logger", entry.Logger))
	}
	if entry.CorrelationID != "" {
		fields = append(fields, zap.String("correlation_id", entry.CorrelationID))
	}
	if entry.Level == LevelAudit {
		fields = append(fields, zap.Bool("audit", true))
	}
	for _, k := range entry.Fields.Keys() {
		fields = append(fields, zap.Any(k, entry.Fields[k]))
	}
	if entry.Error != nil {
		fields = append(fields, zap.Error(entry.Error))
	}

	ce.Write(fields...)
	return nil
}
