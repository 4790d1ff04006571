// File: standards.go
// Title: Error Standards for Toolkit Packages
// Description: Module identifiers and standardized error codes so that every
//              toolkit package reports failures in the same shape.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-10-19 v0.2.0: Module set of the toolkit, enum specific codes

package errors

import (
	"strings"

	tkerror "github.com/msto63/toolkit/core/error"
)

// Module identifiers for error categorization
const (
	ModuleEnumx    = "enumx"
	ModuleStringx  = "stringx"
	ModuleReflectx = "reflectx"
	ModuleDisposex = "disposex"
	ModuleUrlx     = "urlx"
	ModuleLockx    = "lockx"
	ModuleConfig   = "config"
)

// Standardized error codes shared by all modules
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeNotFound        = "NOT_FOUND"
	CodeNotSupported    = "NOT_SUPPORTED"
	CodeOperationFailed = "OPERATION_FAILED"

	CodeStringxLengthExceeded = "STRINGX_LENGTH_EXCEEDED"
	CodeStringxInvalidFormat  = "STRINGX_INVALID_FORMAT"

	CodeReflectxInvalidType = "REFLECTX_INVALID_TYPE"
	CodeReflectxNotSettable = "REFLECTX_NOT_SETTABLE"
	CodeReflectxOverflow    = "REFLECTX_OVERFLOW"

	CodeDisposexCloseFailed = "DISPOSEX_CLOSE_FAILED"

	CodeUrlxInvalidURL = "URLX_INVALID_URL"

	CodeLockxTimeout = "LOCKX_TIMEOUT"
)

// getModuleErrorCode derives a code from module and operation names
func getModuleErrorCode(module, operation string) string {
	switch module {
	case ModuleStringx:
		switch {
		case strings.Contains(operation, "length"), strings.Contains(operation, "truncate"):
			return CodeStringxLengthExceeded
		case strings.Contains(operation, "format"):
			return CodeStringxInvalidFormat
		}
	case ModuleReflectx:
		switch {
		case strings.Contains(operation, "set"):
			return CodeReflectxNotSettable
		case strings.Contains(operation, "convert"):
			return CodeReflectxOverflow
		case strings.Contains(operation, "type"):
			return CodeReflectxInvalidType
		}
	case ModuleDisposex:
		return CodeDisposexCloseFailed
	case ModuleUrlx:
		if strings.Contains(operation, "parse") || strings.Contains(operation, "append") {
			return CodeUrlxInvalidURL
		}
	case ModuleLockx:
		if strings.Contains(operation, "try") {
			return CodeLockxTimeout
		}
	case ModuleEnumx:
		switch {
		case strings.Contains(operation, "parse"):
			return string(tkerror.CodeEnumParse)
		case strings.Contains(operation, "flag"):
			return string(tkerror.CodeEnumNotFlags)
		}
	case ModuleConfig:
		return string(tkerror.CodeConfigError)
	}
	return CodeOperationFailed
}

// getSeverityFromError determines a severity from a foreign cause
func getSeverityFromError(cause error) tkerror.Severity {
	if cause == nil {
		return tkerror.SeverityLow
	}

	var te *tkerror.Error
	if As(cause, &te) {
		return te.Severity()
	}

	errStr := cause.Error()
	switch {
	case strings.Contains(errStr, "permission"), strings.Contains(errStr, "overflow"):
		return tkerror.SeverityHigh
	case strings.Contains(errStr, "not found"), strings.Contains(errStr, "missing"):
		return tkerror.SeverityMedium
	case strings.Contains(errStr, "invalid"), strings.Contains(errStr, "format"):
		return tkerror.SeverityLow
	default:
		return tkerror.SeverityMedium
	}
}
