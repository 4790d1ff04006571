// File: ops.go
// Title: Typed Enum Operations
// Description: Queries, bit composition and decomposition, formatting and
//              parsing on Type[E], plus package level shortcuts and the
//              Named text codec wrapper.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package enumx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Name returns the Go type name, e.g. "perm.Mode"
func (t *Type[E]) Name() string { return t.table.Name() }

// ReflectType returns the reflected type of E
func (t *Type[E]) ReflectType() reflect.Type { return t.rtype }

// BitSize returns the size of E in bits
func (t *Type[E]) BitSize() int { return t.bits }

// IsSigned reports whether E has a signed underlying type
func (t *Type[E]) IsSigned() bool { return t.signed }

// IsFlags reports whether values of E combine bitwise
func (t *Type[E]) IsFlags() bool { return t.table.IsFlags() }

// Table returns the untyped table backing this type
func (t *Type[E]) Table() *Table { return t.table }

// Len returns the number of members
func (t *Type[E]) Len() int { return t.table.Len() }

// Values returns the member values in ascending order
func (t *Type[E]) Values() []E {
	return t.fromAll(t.table.Values())
}

// Names returns the member names in ascending value order
func (t *Type[E]) Names() []string { return t.table.Names() }

// Members returns name/value pairs in ascending value order
func (t *Type[E]) Members() []Member[E] {
	entries := t.table.Entries()
	out := make([]Member[E], len(entries))
	for i, e := range entries {
		out[i] = Member[E]{Name: e.Name, Value: E(e.Value)}
	}
	return out
}

// IsDefined reports whether v is exactly a member value
func (t *Type[E]) IsDefined(v E) bool { return t.table.IsDefined(t.raw(v)) }

// IsDefinedName reports whether name is a member name (case-sensitive)
func (t *Type[E]) IsDefinedName(name string) bool { return t.table.IsDefinedName(name) }

// NameOf returns the name of the member equal to v
func (t *Type[E]) NameOf(v E) (string, bool) { return t.table.NameOf(t.raw(v)) }

// ValueOf returns the member called name (case-sensitive)
func (t *Type[E]) ValueOf(name string) (E, bool) {
	u, ok := t.table.ValueOf(name)
	return E(u), ok
}

// ValueOfFold returns the member called name, ignoring case
func (t *Type[E]) ValueOfFold(name string) (E, bool) {
	u, ok := t.table.ValueOfFold(name)
	return E(u), ok
}

// Min returns the smallest member value
func (t *Type[E]) Min() E { return E(t.table.Min()) }

// Max returns the largest member value
func (t *Type[E]) Max() E { return E(t.table.Max()) }

// All returns the bitwise OR of every member value
func (t *Type[E]) All() E { return E(t.table.All()) }

// Compose ORs values together
func (t *Type[E]) Compose(values ...E) E {
	var v E
	for _, x := range values {
		v |= x
	}
	return v
}

// Decompose splits v into member values in ascending order with any unknown
// bits as a trailing synthetic value. See Table.Decompose.
func (t *Type[E]) Decompose(v E) []E {
	return t.fromAll(t.table.Decompose(t.raw(v)))
}

// Bits splits v into single-bit values in ascending order
func (t *Type[E]) Bits(v E) []E {
	return t.fromAll(Bits(t.raw(v)))
}

// HasFlag reports whether all bits of flag are set in v
func (t *Type[E]) HasFlag(v, flag E) bool { return v&flag == flag }

// HasAny reports whether any bit of mask is set in v
func (t *Type[E]) HasAny(v, mask E) bool { return v&mask != 0 }

// Set returns v with the bits of flag set
func (t *Type[E]) Set(v, flag E) E { return v | flag }

// Clear returns v with the bits of flag cleared
func (t *Type[E]) Clear(v, flag E) E { return v &^ flag }

// Toggle returns v with the bits of flag inverted
func (t *Type[E]) Toggle(v, flag E) E { return v ^ flag }

// IsValidCombination reports whether v only uses bits of defined members
func (t *Type[E]) IsValidCombination(v E) bool {
	return t.table.IsValidCombination(t.raw(v))
}

// Format renders v by name, see Table.Format. Negative values of signed
// types never match a member and are written as signed decimals.
func (t *Type[E]) Format(v E) string {
	if t.signed && v < 0 {
		return formatInteger(v)
	}
	return t.table.Format(t.raw(v))
}

// Parse reads v from a name, a number or a flags list with exact names
func (t *Type[E]) Parse(s string) (E, error) { return t.parse(s, false) }

// ParseIgnoreCase is Parse with case-insensitive name matching
func (t *Type[E]) ParseIgnoreCase(s string) (E, error) { return t.parse(s, true) }

// TryParse is Parse reporting success as a bool
func (t *Type[E]) TryParse(s string) (E, bool) {
	v, err := t.parse(s, false)
	return v, err == nil
}

// MarshalText encodes v as its formatted name
func (t *Type[E]) MarshalText(v E) ([]byte, error) {
	return []byte(t.Format(v)), nil
}

// UnmarshalText decodes text written by MarshalText, ignoring case
func (t *Type[E]) UnmarshalText(text []byte) (E, error) {
	return t.parse(string(text), true)
}

func (t *Type[E]) parse(s string, ignoreCase bool) (E, error) {
	if trimmed := strings.TrimSpace(s); t.signed && strings.HasPrefix(trimmed, "-") {
		return t.parseNegative(s, trimmed[1:])
	}
	u, err := t.table.Parse(s, ignoreCase)
	if err != nil {
		return 0, err
	}
	if !t.fits(u) {
		return 0, errParse(t.Name(), s, fmt.Sprintf("value %d overflows %s", u, t.rtype.Kind()))
	}
	return E(u), nil
}

// parseNegative reads the magnitude of a negative literal of a signed type
func (t *Type[E]) parseNegative(input, magnitude string) (E, error) {
	if magnitude == "" || magnitude[0] < '0' || magnitude[0] > '9' {
		return 0, errParse(t.Name(), input, "invalid number")
	}
	n, err := parseNumber(magnitude)
	if err != nil {
		return 0, errParse(t.Name(), input, err.Error())
	}
	if n > 1<<uint(t.bits-1) {
		return 0, errParse(t.Name(), input, fmt.Sprintf("value -%d overflows %s", n, t.rtype.Kind()))
	}
	return E(-int64(n)), nil
}

// raw converts v to table form. Values of signed types are masked to the
// type's width so that a stray negative value keeps its bit pattern.
func (t *Type[E]) raw(v E) uint64 {
	u := uint64(v)
	if t.signed && t.bits < 64 {
		u &= 1<<uint(t.bits) - 1
	}
	return u
}

func (t *Type[E]) fits(u uint64) bool {
	switch {
	case t.signed:
		return u <= 1<<uint(t.bits-1)-1
	case t.bits < 64:
		return u < 1<<uint(t.bits)
	default:
		return true
	}
}

func (t *Type[E]) fromAll(values []uint64) []E {
	if values == nil {
		return nil
	}
	out := make([]E, len(values))
	for i, u := range values {
		out[i] = E(u)
	}
	return out
}

// Format renders v using the metadata of E. Without metadata the decimal
// value is returned.
func Format[E Integer](v E) string {
	t, err := For[E]()
	if err != nil {
		return formatInteger(v)
	}
	return t.Format(v)
}

// Parse reads a value of E, see Type.Parse
func Parse[E Integer](s string) (E, error) {
	t, err := For[E]()
	if err != nil {
		return 0, err
	}
	return t.Parse(s)
}

// Decompose splits v using the metadata of E, see Type.Decompose
func Decompose[E Integer](v E) ([]E, error) {
	t, err := For[E]()
	if err != nil {
		return nil, err
	}
	return t.Decompose(v), nil
}

// IsDefined reports whether v is a member of E. It is false when E has no
// valid metadata.
func IsDefined[E Integer](v E) bool {
	t, err := For[E]()
	return err == nil && t.IsDefined(v)
}

func formatInteger[E Integer](v E) string {
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

// Named wraps an enum value so that it encodes by name through
// encoding.TextMarshaler, e.g. in JSON, YAML or TOML documents.
type Named[E Integer] struct {
	Value E
}

// String returns the formatted name
func (n Named[E]) String() string { return Format(n.Value) }

// MarshalText implements encoding.TextMarshaler
func (n Named[E]) MarshalText() ([]byte, error) {
	t, err := For[E]()
	if err != nil {
		return nil, err
	}
	return t.MarshalText(n.Value)
}

// UnmarshalText implements encoding.TextUnmarshaler
func (n *Named[E]) UnmarshalText(text []byte) error {
	t, err := For[E]()
	if err != nil {
		return err
	}
	v, err := t.UnmarshalText(text)
	if err != nil {
		return err
	}
	n.Value = v
	return nil
}
