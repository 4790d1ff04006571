// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Fluent builder and standard constructors used by every
//              toolkit package, plus extractors for module and operation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function with "validation failed:" prefix
// - 2025-10-19 v0.2.0: NotSupported, std errors re-exports, toolkit modules

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	tkerror "github.com/msto63/toolkit/core/error"
)

// Re-exports so that callers importing this package do not also need the
// standard errors package.
var (
	Is     = stderrors.Is
	As     = stderrors.As
	Join   = stderrors.Join
	Unwrap = stderrors.Unwrap
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  tkerror.Severity
	code      string
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: tkerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity tkerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *tkerror.Error {
	if eb.code == "" {
		eb.code = getModuleErrorCode(eb.module, eb.operation)
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *tkerror.Error
	if eb.cause != nil {
		err = tkerror.Wrap(eb.cause, eb.message)
	} else {
		err = tkerror.New(eb.message)
	}

	op := eb.module
	if eb.operation != "" {
		op = eb.module + "." + eb.operation
	}

	return err.
		WithSeverity(eb.severity).
		WithCode(tkerror.Code(eb.code)).
		WithOperation(op).
		WithDetails(eb.details)
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS
// =============================================================================

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s: expected %s", module, operation, expected)).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(tkerror.SeverityLow).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module, operation string, input interface{}, expectedFormat string) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid format in %s.%s: expected %s", module, operation, expectedFormat)).
		Code(CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(tkerror.SeverityLow).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s operation failed", module, operation)).
		Cause(cause).
		Severity(getSeverityFromError(cause)).
		Build()
}

// ValidationFailed creates a standardized validation error
func ValidationFailed(module, field string, value interface{}, reason string) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation("validate_" + field).
		Message(fmt.Sprintf("%s.validate_%s: validation failed for field %s: %s", module, field, field, reason)).
		Code(fmt.Sprintf("%s_VALIDATION_FAILED", strings.ToUpper(module))).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Severity(tkerror.SeverityLow).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("validation failed: value out of range in %s.%s", module, operation)).
		Code(CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%v not found in %s.%s", identifier, module, operation)).
		Code(CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// NotSupported creates an error for conditions the module rejects by design
func NotSupported(module, operation, what string) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s is not currently supported", what)).
		Code(CodeNotSupported).
		Detail("unsupported", what).
		Severity(tkerror.SeverityHigh).
		Build()
}

// =============================================================================
// EXTRACTORS
// =============================================================================

// ExtractDetails extracts all details from the outermost toolkit error
func ExtractDetails(err error) map[string]interface{} {
	var te *tkerror.Error
	if As(err, &te) {
		return te.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
