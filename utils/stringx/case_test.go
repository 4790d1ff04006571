// File: case_test.go
// Title: Unit Tests for Case Conversion and Unicode Helpers
// Description: Tests for word splitting, case conversion and the x/text
//              based folding and diacritics helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2025-10-19 v0.2.0: Acronym cases, folding and diacritics

package stringx

import (
	"reflect"
	"testing"
)

func TestSplitCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"hello", []string{"hello"}},
		{"helloWorld", []string{"hello", "World"}},
		{"HelloWorld", []string{"Hello", "World"}},
		{"parseHTTPRequest", []string{"parse", "HTTP", "Request"}},
		{"userID", []string{"user", "ID"}},
		{"myVar2Name", []string{"my", "Var2", "Name"}},
		{"snake_case_name", []string{"snake", "case", "name"}},
		{"  kebab--case  ", []string{"kebab", "case"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SplitCamelCase(tt.input); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitCamelCase(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCaseConversion(t *testing.T) {
	tests := []struct {
		input  string
		snake  string
		kebab  string
		camel  string
		pascal string
	}{
		{"MyVariableName", "my_variable_name", "my-variable-name", "myVariableName", "MyVariableName"},
		{"my_variable_name", "my_variable_name", "my-variable-name", "myVariableName", "MyVariableName"},
		{"parseHTTPRequest", "parse_http_request", "parse-http-request", "parseHttpRequest", "ParseHttpRequest"},
		{"user id", "user_id", "user-id", "userId", "UserId"},
		{"", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToSnakeCase(tt.input); got != tt.snake {
				t.Errorf("ToSnakeCase(%q) = %q; want %q", tt.input, got, tt.snake)
			}
			if got := ToKebabCase(tt.input); got != tt.kebab {
				t.Errorf("ToKebabCase(%q) = %q; want %q", tt.input, got, tt.kebab)
			}
			if got := ToCamelCase(tt.input); got != tt.camel {
				t.Errorf("ToCamelCase(%q) = %q; want %q", tt.input, got, tt.camel)
			}
			if got := ToPascalCase(tt.input); got != tt.pascal {
				t.Errorf("ToPascalCase(%q) = %q; want %q", tt.input, got, tt.pascal)
			}
		})
	}
}

func TestToTitleCase(t *testing.T) {
	if got := ToTitleCase("hello WORLD"); got != "Hello World" {
		t.Errorf("ToTitleCase = %q", got)
	}
}

func TestUnicodeHelpers(t *testing.T) {
	if got := RemoveDiacritics("Crème Brûlée"); got != "Creme Brulee" {
		t.Errorf("RemoveDiacritics = %q", got)
	}
	if got := FoldCase("HeLLo ÄÖÜ"); got != "hello äöü" {
		t.Errorf("FoldCase = %q", got)
	}
	if !EqualsIgnoreCase("Hello", "hELLO") || EqualsIgnoreCase("Hello", "Help") {
		t.Error("EqualsIgnoreCase mismatch")
	}
	if !ContainsIgnoreCase("Hello World", "WORLD") {
		t.Error("ContainsIgnoreCase mismatch")
	}
	if !StartsWithIgnoreCase("Hello", "hE") || StartsWithIgnoreCase("Hello", "lo") {
		t.Error("StartsWithIgnoreCase mismatch")
	}
	if !EndsWithIgnoreCase("Hello", "LO") || EndsWithIgnoreCase("Hello", "he") {
		t.Error("EndsWithIgnoreCase mismatch")
	}
}
