// File: text.go
// Title: Unicode Aware Text Helpers
// Description: Case folding, title casing and diacritics removal built on
//              golang.org/x/text, plus the case-insensitive comparisons
//              that use them.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldCase returns the Unicode case folded form of s, suitable as a map key
// for case-insensitive lookups.
func FoldCase(s string) string {
	return cases.Fold().String(s)
}

// ToTitleCase capitalizes the first letter of each word and lowercases the
// rest.
// Example: "hello WORLD" -> "Hello World"
func ToTitleCase(s string) string {
	// title casers keep state, so one per call
	return cases.Title(language.Und).String(s)
}

// RemoveDiacritics strips combining marks: "Crème Brûlée" -> "Creme Brulee"
func RemoveDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// EqualsIgnoreCase reports whether a and b are equal under case folding
func EqualsIgnoreCase(a, b string) bool {
	return FoldCase(a) == FoldCase(b)
}

// ContainsIgnoreCase reports whether substr is within s, ignoring case
func ContainsIgnoreCase(s, substr string) bool {
	return strings.Contains(FoldCase(s), FoldCase(substr))
}

// StartsWithIgnoreCase reports whether s begins with prefix, ignoring case
func StartsWithIgnoreCase(s, prefix string) bool {
	return strings.HasPrefix(FoldCase(s), FoldCase(prefix))
}

// EndsWithIgnoreCase reports whether s ends with suffix, ignoring case
func EndsWithIgnoreCase(s, suffix string) bool {
	return strings.HasSuffix(FoldCase(s), FoldCase(suffix))
}
