// File: doc.go
// Title: Package Documentation for error
// Description: Structured error type shared by all toolkit packages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial documentation
// - 2025-10-19 v0.2.0: Rewritten for the toolkit error codes

// Package error provides the structured Error type used by the toolkit.
//
// An Error carries a Code for programmatic handling, a Severity for
// prioritization, free-form details and the stack at creation time:
//
//	err := tkerror.New("member value is negative").
//	    WithCode(tkerror.CodeEnumNegativeValue).
//	    WithDetail("member", "Broken")
//
// Wrap keeps code, severity and details of a wrapped *Error so that the
// classification survives added context. HasCode walks the whole chain;
// GetCode and GetSeverity use the outermost *Error found by errors.As.
//
// The package name shadows the predeclared error type, so importers alias
// it, conventionally as tkerror.
package error
