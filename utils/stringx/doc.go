// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides extended string operations for the
//              toolkit, offering Unicode-safe manipulation and commonly
//              needed utilities that extend Go's standard library.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2025-10-19 v0.3.0: x/text based folding and diacritics, random strings removed

// Package stringx provides extended string operations.
//
// # Overview
//
// Every length, width and index argument counts runes, so multi-byte
// characters are never split:
//
//	stringx.Truncate("héllo wörld", 5)                 // "héllo"
//	stringx.TruncateWithEllipsis("héllo wörld", 8, "…") // "héllo w…"
//	stringx.PadLeft("42", 5, '0')                       // "00042"
//
// # Case Conversion
//
// All conversions share SplitCamelCase, which keeps acronyms together:
//
//	stringx.ToSnakeCase("parseHTTPRequest")  // "parse_http_request"
//	stringx.ToPascalCase("user-id")          // "UserId"
//
// # Unicode
//
// FoldCase, RemoveDiacritics and ToTitleCase are built on golang.org/x/text.
// The *IgnoreCase comparisons use full case folding rather than ToLower.
//
// # Validation
//
// ValidateRequired, ValidateNotBlank and ValidateLength return errors with
// code STRINGX_VALIDATION_FAILED carrying the field name, value and reason.
package stringx
