// File: doc.go
// Title: Package Documentation for errors
// Description: Standard error constructors for toolkit packages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial documentation
// - 2025-10-19 v0.2.0: Toolkit module identifiers

// Package errors provides the standard constructors every toolkit package
// uses to report failures.
//
// All constructors return *tkerror.Error values whose details carry the
// originating "module" and "operation", so a caller can ask where an error
// came from without parsing messages:
//
//	if errors.IsModuleError(err, errors.ModuleEnumx) { ... }
//
// Use these helpers instead of fmt.Errorf or errors.New inside the toolkit.
package errors
