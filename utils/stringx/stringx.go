// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements essential string operations that extend the Go
//              standard library. All length and index arguments count runes,
//              never bytes, so multi-byte characters are never split.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2025-10-19 v0.2.0: Exact-length Truncate, substring helpers, quoting,
//                       whitespace and newline normalization; interning removed

package stringx

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	tkerrors "github.com/msto63/toolkit/core/errors"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotEmpty returns true if the string is not empty.
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsNotBlank returns true if the string contains non-whitespace characters.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// DefaultIfEmpty returns s, or defaultValue when s is empty
func DefaultIfEmpty(s, defaultValue string) string {
	if IsEmpty(s) {
		return defaultValue
	}
	return s
}

// DefaultIfBlank returns s, or defaultValue when s is blank
func DefaultIfBlank(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}

// FirstNonEmpty returns the first non-empty string from the provided strings.
func FirstNonEmpty(values ...string) string {
	for _, s := range values {
		if IsNotEmpty(s) {
			return s
		}
	}
	return ""
}

// FirstNonBlank returns the first non-blank string from the provided strings.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// Truncate shortens s to at most maxLen runes. A string longer than maxLen
// comes back with exactly maxLen runes. A negative maxLen yields "".
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen])
}

// TruncateWithEllipsis shortens s to at most maxLen runes including the
// ellipsis. If the ellipsis does not fit, s is cut without it.
func TruncateWithEllipsis(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// TruncateE is Truncate with input validation
func TruncateE(s string, maxLen int) (string, error) {
	if maxLen < 0 {
		return "", tkerrors.InvalidInput(tkerrors.ModuleStringx, "truncate", maxLen, "non-negative length")
	}
	return Truncate(s, maxLen), nil
}

// MustTruncate is TruncateE panicking on invalid input
func MustTruncate(s string, maxLen int) string {
	result, err := TruncateE(s, maxLen)
	if err != nil {
		panic(err)
	}
	return result
}

// Left returns the first n runes of s
func Left(s string, n int) string {
	return Truncate(s, n)
}

// Right returns the last n runes of s
func Right(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if n >= len(runes) {
		return s
	}
	return string(runes[len(runes)-n:])
}

// SafeSubstring returns the runes in [start, end). Indices are clamped to
// the string, so it never panics; an empty range yields "".
func SafeSubstring(s string, start, end int) string {
	runes := []rune(s)
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if start >= end {
		return ""
	}
	return string(runes[start:end])
}

// Reverse reverses a string while preserving Unicode characters.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Repeat returns s repeated count times; a non-positive count yields ""
func Repeat(s string, count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(s, count)
}

// PadLeft pads s to width runes by prepending pad.
// If s is already at least width runes long, it is returned unchanged.
func PadLeft(s string, width int, pad rune) string {
	missing := width - utf8.RuneCountInString(s)
	if missing <= 0 {
		return s
	}
	return strings.Repeat(string(pad), missing) + s
}

// PadRight pads s to width runes by appending pad.
func PadRight(s string, width int, pad rune) string {
	missing := width - utf8.RuneCountInString(s)
	if missing <= 0 {
		return s
	}
	return s + strings.Repeat(string(pad), missing)
}

// Center centers s within width runes. An odd amount of padding puts the
// extra rune on the right.
func Center(s string, width int, pad rune) string {
	missing := width - utf8.RuneCountInString(s)
	if missing <= 0 {
		return s
	}
	left := missing / 2
	return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), missing-left)
}

// NormalizeNewlines converts \r\n and \r line endings to \n
func NormalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// SplitLines splits a string into lines, handling \n, \r\n and \r endings.
func SplitLines(s string) []string {
	return strings.Split(NormalizeNewlines(s), "\n")
}

// CollapseWhitespace trims s and replaces every run of whitespace with a
// single space
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// JoinNonEmpty joins the non-empty parts with sep
func JoinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if IsNotEmpty(p) {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// Quote returns s as a double-quoted Go string literal
func Quote(s string) string {
	return strconv.Quote(s)
}

// Unquote interprets s as a single-quoted, double-quoted or backquoted Go
// string literal.
func Unquote(s string) (string, error) {
	out, err := strconv.Unquote(s)
	if err != nil {
		return "", tkerrors.InvalidFormat(tkerrors.ModuleStringx, "unquote", s, "quoted string literal")
	}
	return out, nil
}

// TrimQuotes removes one pair of matching surrounding quotes (", ' or `)
// without interpreting escapes.
func TrimQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'' || first == '`') {
		return s[1 : len(s)-1]
	}
	return s
}
