// File: validate.go
// Title: String Validation
// Description: Validation helpers returning standardized stringx errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation as part of stringx.go
// - 2025-10-19 v0.2.0: Moved to its own file, field names in errors

package stringx

import (
	"fmt"
	"unicode/utf8"

	tkerrors "github.com/msto63/toolkit/core/errors"
)

// ValidateRequired fails when s is empty
func ValidateRequired(field, s string) error {
	if IsEmpty(s) {
		return tkerrors.ValidationFailed(tkerrors.ModuleStringx, field, s, "must not be empty")
	}
	return nil
}

// ValidateNotBlank fails when s is empty or whitespace only
func ValidateNotBlank(field, s string) error {
	if IsBlank(s) {
		return tkerrors.ValidationFailed(tkerrors.ModuleStringx, field, s, "must not be blank")
	}
	return nil
}

// ValidateLength fails when the rune count of s is outside [minLen, maxLen].
// A non-positive bound is not checked.
func ValidateLength(field, s string, minLen, maxLen int) error {
	length := utf8.RuneCountInString(s)

	if minLen > 0 && length < minLen {
		return tkerrors.ValidationFailed(tkerrors.ModuleStringx, field, s,
			fmt.Sprintf("length %d is below minimum %d", length, minLen))
	}
	if maxLen > 0 && length > maxLen {
		return tkerrors.ValidationFailed(tkerrors.ModuleStringx, field, s,
			fmt.Sprintf("length %d exceeds maximum %d", length, maxLen))
	}
	return nil
}
