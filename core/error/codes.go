// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the toolkit packages.
//              Codes classify failures so that callers can branch on them
//              without parsing error messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-10-19 v0.2.0: Reduced to library codes, added enum codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL"
	CodeNotFound         Code = "NOT_FOUND"
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeNotSupported     Code = "NOT_SUPPORTED"
	CodeTimeout          Code = "TIMEOUT"
	CodeInvalidOperation Code = "INVALID_OPERATION"
	CodeResourceLocked   Code = "RESOURCE_LOCKED"
	CodeDuplicateEntry   Code = "DUPLICATE_ENTRY"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength    Code = "INVALID_LENGTH"

	// Enumerations
	CodeEnumNegativeValue  Code = "ENUM_NEGATIVE_VALUE"
	CodeEnumDuplicateValue Code = "ENUM_DUPLICATE_VALUE"
	CodeEnumUndefined      Code = "ENUM_UNDEFINED"
	CodeEnumParse          Code = "ENUM_PARSE"
	CodeEnumNotFlags       Code = "ENUM_NOT_FLAGS"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeNotSupported,
		CodeTimeout, CodeInvalidOperation, CodeResourceLocked, CodeDuplicateEntry,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength,
		CodeEnumNegativeValue, CodeEnumDuplicateValue, CodeEnumUndefined, CodeEnumParse, CodeEnumNotFlags:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength, CodeInvalidInput:
		return "validation"
	case CodeEnumNegativeValue, CodeEnumDuplicateValue, CodeEnumUndefined, CodeEnumParse, CodeEnumNotFlags:
		return "enum"
	case CodeTimeout, CodeResourceLocked:
		return "concurrency"
	default:
		return "generic"
	}
}
