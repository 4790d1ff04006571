// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that callers and log
//              sinks can prioritize them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-10-19 v0.2.0: Severity mapping for library codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad input that the caller can correct
	SeverityLow Severity = iota

	// SeverityMedium indicates an operation failure with a workaround
	SeverityMedium

	// SeverityHigh indicates a programming or environment error
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the default severity for a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	// Unsupported enum shapes are declaration mistakes, not input mistakes.
	case CodeEnumNegativeValue, CodeEnumDuplicateValue, CodeNotSupported, CodeInvalidConfig:
		return SeverityHigh

	case CodeTimeout, CodeResourceLocked, CodeConfigError, CodeMissingConfig, CodeInvalidOperation:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound, CodeValidationFailed, CodeInvalidFormat,
		CodeValueOutOfRange, CodeInvalidLength, CodeDuplicateEntry,
		CodeEnumUndefined, CodeEnumParse, CodeEnumNotFlags:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
