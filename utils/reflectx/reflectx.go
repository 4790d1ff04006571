// File: reflectx.go
// Title: Reflection Helpers
// Description: Type inspection, nil and zero checks, numeric kind queries
//              and checked integer conversion on top of package reflect.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package reflectx

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	tkerror "github.com/msto63/toolkit/core/error"
	tkerrors "github.com/msto63/toolkit/core/errors"
)

// Integer is the set of integer types accepted by ConvertInteger
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// TypeOf returns the reflect.Type of T, also for interface types
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// TypeName returns the package qualified type name of v, e.g. "*http.Request"
// or "[]string". A nil interface yields "<nil>".
func TypeName(v interface{}) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}

// Zero returns the zero value of T
func Zero[T any]() T {
	var zero T
	return zero
}

// DefaultValue returns the zero value of t as an interface, nil for a nil type
func DefaultValue(t reflect.Type) interface{} {
	if t == nil {
		return nil
	}
	return reflect.Zero(t).Interface()
}

// Indirect follows pointers and interfaces until it reaches a non-pointer
// value or a nil one.
func Indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return v
		}
		v = v.Elem()
	}
	return v
}

// IndirectType strips all pointer levels from t
func IndirectType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// IsNil reports whether v is a nil interface or holds a nil pointer, map,
// slice, channel, function or interface.
func IsNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// IsZero reports whether v is nil or the zero value of its type
func IsZero(v interface{}) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}

// Implements reports whether the dynamic type of v implements interface I
func Implements[I any](v interface{}) bool {
	iface := TypeOf[I]()
	if iface.Kind() != reflect.Interface || v == nil {
		return false
	}
	return reflect.TypeOf(v).Implements(iface)
}

// IsInteger reports whether t is a signed or unsigned integer type
func IsInteger(t reflect.Type) bool {
	return IsSigned(t) || IsUnsigned(t)
}

// IsSigned reports whether t is a signed integer type
func IsSigned(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

// IsUnsigned reports whether t is an unsigned integer type
func IsUnsigned(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

// IsNumeric reports whether t is an integer, float or complex type
func IsNumeric(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if IsInteger(t) {
		return true
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// BitSize returns the size of a numeric type in bits, 0 for other types
func BitSize(t reflect.Type) int {
	if !IsNumeric(t) {
		return 0
	}
	return t.Bits()
}

// ConvertInteger converts any integer value to T, failing when the value
// does not fit.
func ConvertInteger[T Integer](v interface{}) (T, error) {
	rv := reflect.ValueOf(v)
	target := TypeOf[T]()

	switch {
	case rv.IsValid() && IsSigned(rv.Type()):
		i := rv.Int()
		out := T(i)
		if int64(out) != i || (out < 0) != (i < 0) {
			return 0, overflowError(v, target)
		}
		return out, nil
	case rv.IsValid() && IsUnsigned(rv.Type()):
		u := rv.Uint()
		out := T(u)
		if uint64(out) != u || out < 0 {
			return 0, overflowError(v, target)
		}
		return out, nil
	default:
		return 0, tkerrors.NewErrorBuilder(tkerrors.ModuleReflectx).
			Operation("convert_type").
			Code(tkerrors.CodeReflectxInvalidType).
			Messagef("cannot convert %s to %s", TypeName(v), target).
			Detail("source_type", TypeName(v)).
			Detail("target_type", target.String()).
			Severity(tkerror.SeverityLow).
			Build()
	}
}

func overflowError(v interface{}, target reflect.Type) error {
	return tkerrors.OutOfRange(tkerrors.ModuleReflectx, "convert", v, fmt.Sprintf("min(%s)", target), fmt.Sprintf("max(%s)", target)).
		WithCode(tkerror.Code(tkerrors.CodeReflectxOverflow)).
		WithDetail("target_type", target.String())
}

// FuncName returns the short name of a function value, e.g. "stringx.Truncate"
func FuncName(fn interface{}) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return ""
	}
	if f := runtime.FuncForPC(rv.Pointer()); f != nil {
		return shortFuncName(f.Name())
	}
	return ""
}

// CallerName returns the short name of the function skip frames above the
// caller of CallerName. CallerName(0) names the calling function itself.
func CallerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	if f := runtime.FuncForPC(pc); f != nil {
		return shortFuncName(f.Name())
	}
	return ""
}

// shortFuncName drops the import path: "github.com/a/b.(*T).M" -> "b.(*T).M"
func shortFuncName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
