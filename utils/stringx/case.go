// File: case.go
// Title: String Case Conversion Utilities
// Description: Implements word splitting and case conversion for the naming
//              conventions used across Go code and configuration files.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2025-10-19 v0.2.0: Acronym aware word splitting shared by all
//                       conversions, strings.Title replaced by x/text

package stringx

import (
	"strings"
	"unicode"
)

// SplitCamelCase splits s into words at case changes and at any rune that
// is neither a letter nor a digit. Acronyms stay together and digits stick
// to the preceding word.
// Example: "parseHTTPRequest2Fast" -> ["parse", "HTTP", "Request2", "Fast"]
func SplitCamelCase(s string) []string {
	runes := []rune(s)
	var words []string
	start := -1

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			if start >= 0 {
				words = append(words, string(runes[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
			continue
		}

		prev := runes[i-1]
		boundary := false
		if unicode.IsUpper(r) {
			switch {
			case unicode.IsLower(prev), unicode.IsDigit(prev):
				boundary = true
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				// last capital of an acronym starts the next word
				boundary = true
			}
		}
		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}

	if start >= 0 {
		words = append(words, string(runes[start:]))
	}
	return words
}

// ToSnakeCase converts a string to snake_case.
// Example: "MyHTTPServer" -> "my_http_server"
func ToSnakeCase(s string) string {
	return joinLower(s, "_")
}

// ToKebabCase converts a string to kebab-case.
// Example: "MyVariableName" -> "my-variable-name"
func ToKebabCase(s string) string {
	return joinLower(s, "-")
}

// ToCamelCase converts a string to camelCase.
// Example: "my_variable_name" -> "myVariableName"
func ToCamelCase(s string) string {
	words := SplitCamelCase(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// ToPascalCase converts a string to PascalCase.
// Example: "my_variable_name" -> "MyVariableName"
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, w := range SplitCamelCase(s) {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

func joinLower(s, sep string) string {
	words := SplitCamelCase(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, sep)
}

func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
