// File: doc.go
// Title: Package Documentation for reflectx
// Description: Package reflectx wraps package reflect with the type queries
//              and field accessors used across the toolkit.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

// Package reflectx provides small reflection helpers.
//
// Type queries are nil-safe and answer the questions other packages keep
// asking reflect: is this a nil pointer hiding in an interface, is this an
// integer type and how wide is it, does this value implement an interface.
//
//	reflectx.IsNil((*os.File)(nil))             // true
//	reflectx.BitSize(reflectx.TypeOf[int16]())  // 16
//	reflectx.Implements[io.Closer](f)           // true
//
// ConvertInteger converts between integer types and reports overflow
// instead of silently truncating:
//
//	v, err := reflectx.ConvertInteger[uint8](300) // err code REFLECTX_OVERFLOW
//
// Fields, FieldByTag, GetField and SetField work on exported struct fields,
// including fields promoted from embedded structs. SetField converts
// between numeric types when the value fits.
//
// All errors are *error.Error values carrying REFLECTX_* codes.
package reflectx
