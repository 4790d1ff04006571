// File: doc.go
// Title: Package Documentation for log
// Description: Structured logging for the toolkit.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial documentation
// - 2025-10-19 v0.2.0: Emitters and zap bridge

// Package log provides structured, leveled logging.
//
// A Logger is immutable from the caller's point of view: every With* method
// returns a configured copy, so loggers can be handed to packages and
// specialized without affecting the original.
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatLogfmt}).
//	    WithName("enumx").
//	    WithNewCorrelationID()
//	logger.Info("table built", log.Field("members", 4))
//
// Entries reach an Emitter. The default emitter formats entries as JSON,
// text or logfmt and writes them to an io.Writer; FromZap forwards them to a
// *zap.Logger instead.
//
// Toolkit packages never log on their own: they default to NewNop and accept
// an injected logger.
package log
