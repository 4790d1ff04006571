// File: query.go
// Title: Query String Builder
// Description: Ordered query string construction with repeated keys,
//              typed adders and RFC 3986 percent-encoding.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package urlx

import (
	"encoding"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/msto63/toolkit/utils/reflectx"
	"github.com/msto63/toolkit/utils/stringx"

	tkerrors "github.com/msto63/toolkit/core/errors"
)

type param struct {
	key   string
	value string
}

// QueryBuilder builds a query string whose parameters keep insertion
// order. A key may occur more than once. Methods return the builder so
// calls can be chained. A QueryBuilder is not safe for concurrent use.
type QueryBuilder struct {
	params []param
	err    error
}

// NewQueryBuilder returns an empty builder
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

// Add appends key=value. An empty key is not added; the first such
// failure is kept and reported by Err.
func (q *QueryBuilder) Add(key, value string) *QueryBuilder {
	if !q.validKey(key, "add") {
		return q
	}
	q.params = append(q.params, param{key: key, value: value})
	return q
}

// AddInt appends an integer value in decimal
func (q *QueryBuilder) AddInt(key string, value int64) *QueryBuilder {
	return q.Add(key, strconv.FormatInt(value, 10))
}

// AddBool appends "true" or "false"
func (q *QueryBuilder) AddBool(key string, value bool) *QueryBuilder {
	return q.Add(key, strconv.FormatBool(value))
}

// AddTime appends t formatted as RFC 3339
func (q *QueryBuilder) AddTime(key string, t time.Time) *QueryBuilder {
	return q.Add(key, t.Format(time.RFC3339))
}

// AddIf appends key=value only when cond is true
func (q *QueryBuilder) AddIf(cond bool, key, value string) *QueryBuilder {
	if !cond {
		return q
	}
	return q.Add(key, value)
}

// AddIfNotEmpty appends key=value only when value is not empty
func (q *QueryBuilder) AddIfNotEmpty(key, value string) *QueryBuilder {
	return q.AddIf(stringx.IsNotEmpty(value), key, value)
}

// AddValues appends one parameter per value, all under key
func (q *QueryBuilder) AddValues(key string, values ...string) *QueryBuilder {
	for _, v := range values {
		q.Add(key, v)
	}
	return q
}

// AddAny appends v formatted as text. Nil values are skipped, slices and
// arrays add one parameter per element. Times use RFC 3339; types
// implementing encoding.TextMarshaler or fmt.Stringer format themselves.
// Maps, structs and functions are rejected.
func (q *QueryBuilder) AddAny(key string, v interface{}) *QueryBuilder {
	if reflectx.IsNil(v) {
		return q
	}

	rv := reflect.ValueOf(v)
	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() != reflect.Uint8 {
		for i := 0; i < rv.Len(); i++ {
			q.AddAny(key, rv.Index(i).Interface())
		}
		return q
	}

	s, err := formatValue(v)
	if err != nil {
		q.setErr(tkerrors.InvalidInput(tkerrors.ModuleUrlx, "add_any", reflectx.TypeName(v), "scalar, time, text marshaler or slice").
			WithDetail("key", key))
		return q
	}
	return q.Add(key, s)
}

// Set replaces all values of key. The first new value takes the position
// of the first old one; a new key is appended.
func (q *QueryBuilder) Set(key string, values ...string) *QueryBuilder {
	if !q.validKey(key, "set") {
		return q
	}

	pos := -1
	kept := q.params[:0]
	for _, p := range q.params {
		if p.key == key {
			if pos < 0 {
				pos = len(kept)
			}
			continue
		}
		kept = append(kept, p)
	}
	if pos < 0 {
		pos = len(kept)
	}

	added := make([]param, len(values))
	for i, v := range values {
		added[i] = param{key: key, value: v}
	}
	out := make([]param, 0, len(kept)+len(added))
	out = append(out, kept[:pos]...)
	out = append(out, added...)
	out = append(out, kept[pos:]...)
	q.params = out
	return q
}

// Del removes every value of key
func (q *QueryBuilder) Del(key string) *QueryBuilder {
	kept := q.params[:0]
	for _, p := range q.params {
		if p.key != key {
			kept = append(kept, p)
		}
	}
	q.params = kept
	return q
}

// Has reports whether key has at least one value
func (q *QueryBuilder) Has(key string) bool {
	for _, p := range q.params {
		if p.key == key {
			return true
		}
	}
	return false
}

// Get returns the first value of key, or "" when key is absent
func (q *QueryBuilder) Get(key string) string {
	for _, p := range q.params {
		if p.key == key {
			return p.value
		}
	}
	return ""
}

// GetAll returns all values of key in insertion order
func (q *QueryBuilder) GetAll(key string) []string {
	var out []string
	for _, p := range q.params {
		if p.key == key {
			out = append(out, p.value)
		}
	}
	return out
}

// Keys returns the distinct keys in order of first appearance
func (q *QueryBuilder) Keys() []string {
	seen := make(map[string]bool, len(q.params))
	var out []string
	for _, p := range q.params {
		if !seen[p.key] {
			seen[p.key] = true
			out = append(out, p.key)
		}
	}
	return out
}

// Len returns the number of parameters, counting repeated keys
func (q *QueryBuilder) Len() int {
	return len(q.params)
}

// Clone returns an independent copy including the recorded error
func (q *QueryBuilder) Clone() *QueryBuilder {
	return &QueryBuilder{
		params: append([]param(nil), q.params...),
		err:    q.err,
	}
}

// Err returns the first error recorded by an adder
func (q *QueryBuilder) Err() error {
	return q.err
}

// Values returns the parameters as url.Values. Order between keys is
// lost; the order of values within a key is kept.
func (q *QueryBuilder) Values() url.Values {
	values := make(url.Values, len(q.params))
	for _, p := range q.params {
		values[p.key] = append(values[p.key], p.value)
	}
	return values
}

// Encode returns the parameters as "k=v&k2=v2" in insertion order.
// Keys and values are percent-encoded per RFC 3986, spaces as %20.
func (q *QueryBuilder) Encode() string {
	if len(q.params) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, p := range q.params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(Escape(p.key))
		sb.WriteByte('=')
		sb.WriteString(Escape(p.value))
	}
	return sb.String()
}

// String returns Encode prefixed with "?", or "" for an empty builder
func (q *QueryBuilder) String() string {
	if len(q.params) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// Escape percent-encodes s for use as a query key or value. Unlike
// url.QueryEscape a space becomes %20.
func Escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func (q *QueryBuilder) validKey(key, operation string) bool {
	if key != "" {
		return true
	}
	q.setErr(tkerrors.InvalidInput(tkerrors.ModuleUrlx, operation, key, "non-empty parameter name"))
	return false
}

func (q *QueryBuilder) setErr(err error) {
	if q.err == nil {
		q.err = err
	}
}

func formatValue(v interface{}) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	case bool:
		return strconv.FormatBool(t), nil
	case time.Time:
		return t.Format(time.RFC3339), nil
	case *time.Time:
		return t.Format(time.RFC3339), nil
	case time.Duration:
		return t.String(), nil
	case encoding.TextMarshaler:
		b, err := t.MarshalText()
		return string(b), err
	case fmt.Stringer:
		return t.String(), nil
	}

	rv := reflect.ValueOf(v)
	switch {
	case reflectx.IsSigned(rv.Type()):
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflectx.IsUnsigned(rv.Type()):
		return strconv.FormatUint(rv.Uint(), 10), nil
	case rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, rv.Type().Bits()), nil
	case rv.Kind() == reflect.String:
		return rv.String(), nil
	case rv.Kind() == reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	}
	return "", fmt.Errorf("unsupported value type %s", rv.Type())
}
