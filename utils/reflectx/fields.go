// File: fields.go
// Title: Struct Field Helpers
// Description: Enumerates exported struct fields including promoted ones and
//              reads or writes them by name or tag.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package reflectx

import (
	"reflect"
	"strings"

	tkerror "github.com/msto63/toolkit/core/error"
	tkerrors "github.com/msto63/toolkit/core/errors"
)

// Field describes an exported struct field
type Field struct {
	Name  string
	Type  reflect.Type
	Tag   reflect.StructTag
	Index []int
}

// TagName returns the name part of tag key, before any comma options
func (f Field) TagName(key string) string {
	name, _, _ := strings.Cut(f.Tag.Get(key), ",")
	return name
}

// Fields returns the exported fields of the struct v, or the struct it
// points to. Fields of embedded structs are flattened in; the embedded
// struct fields themselves are not listed.
func Fields(v interface{}) []Field {
	t := IndirectType(reflect.TypeOf(v))
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	var out []Field
	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() {
			continue
		}
		if sf.Anonymous && IndirectType(sf.Type).Kind() == reflect.Struct {
			continue
		}
		out = append(out, Field{Name: sf.Name, Type: sf.Type, Tag: sf.Tag, Index: sf.Index})
	}
	return out
}

// FieldByTag finds the exported field whose tag key has the given name,
// e.g. FieldByTag(v, "json", "user_id").
func FieldByTag(v interface{}, key, name string) (Field, bool) {
	for _, f := range Fields(v) {
		if f.TagName(key) == name {
			return f, true
		}
	}
	return Field{}, false
}

// GetField returns the value of the exported field name of the struct v
func GetField(v interface{}, name string) (interface{}, error) {
	rv := Indirect(reflect.ValueOf(v))
	if !rv.IsValid() || rv.Kind() != reflect.Struct {
		return nil, invalidTypeError("get_field", v, "struct or pointer to struct")
	}

	fv, err := fieldByName(rv, name, "get_field")
	if err != nil {
		return nil, err
	}
	return fv.Interface(), nil
}

// SetField assigns value to the exported field name of the struct v points
// to. Numeric values are converted when the field has a different numeric
// type and the value fits.
func SetField(v interface{}, name string, value interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return tkerrors.NewErrorBuilder(tkerrors.ModuleReflectx).
			Operation("set_field").
			Messagef("cannot set field %s on non-pointer %s", name, TypeName(v)).
			Detail("field", name).
			Detail("type", TypeName(v)).
			Build()
	}
	rv = Indirect(rv)
	if rv.Kind() != reflect.Struct {
		return invalidTypeError("set_field", v, "pointer to struct")
	}

	fv, err := fieldByName(rv, name, "set_field")
	if err != nil {
		return err
	}
	if !fv.CanSet() {
		return tkerrors.NewErrorBuilder(tkerrors.ModuleReflectx).
			Operation("set_field").
			Messagef("field %s is not settable", name).
			Detail("field", name).
			Build()
	}

	if value == nil {
		fv.Set(reflect.Zero(fv.Type()))
		return nil
	}

	val := reflect.ValueOf(value)
	switch {
	case val.Type().AssignableTo(fv.Type()):
		fv.Set(val)
	case IsNumeric(val.Type()) && IsNumeric(fv.Type()) && val.Type().ConvertibleTo(fv.Type()):
		converted := val.Convert(fv.Type())
		if !converted.Convert(val.Type()).Equal(val) {
			return overflowError(value, fv.Type())
		}
		fv.Set(converted)
	default:
		return tkerrors.NewErrorBuilder(tkerrors.ModuleReflectx).
			Operation("set_field_type").
			Code(tkerrors.CodeReflectxInvalidType).
			Messagef("cannot assign %s to field %s of type %s", TypeName(value), name, fv.Type()).
			Detail("field", name).
			Detail("value_type", TypeName(value)).
			Detail("field_type", fv.Type().String()).
			Build()
	}
	return nil
}

func fieldByName(rv reflect.Value, name, operation string) (reflect.Value, error) {
	sf, ok := rv.Type().FieldByName(name)
	if !ok || !sf.IsExported() {
		return reflect.Value{}, tkerrors.NotFound(tkerrors.ModuleReflectx, operation, name).
			WithDetail("type", rv.Type().String())
	}
	fv, err := rv.FieldByIndexErr(sf.Index)
	if err != nil {
		// nil embedded pointer on the path
		return reflect.Value{}, tkerror.Wrap(err, "field not reachable").
			WithCode(tkerror.CodeInvalidOperation).
			WithOperation("reflectx." + operation).
			WithDetail("field", name)
	}
	return fv, nil
}

func invalidTypeError(operation string, v interface{}, expected string) error {
	return tkerrors.NewErrorBuilder(tkerrors.ModuleReflectx).
		Operation(operation).
		Code(tkerrors.CodeReflectxInvalidType).
		Messagef("expected %s, got %s", expected, TypeName(v)).
		Detail("expected", expected).
		Detail("type", TypeName(v)).
		Severity(tkerror.SeverityLow).
		Build()
}
