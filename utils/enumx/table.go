// File: table.go
// Title: Untyped Enum Metadata Table
// Description: Implements Table, the immutable value/name table behind every
//              enum: sorted members, name indexes and the bit composition,
//              decomposition, formatting and parsing algorithms over uint64.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package enumx

import (
	"errors"
	"math/bits"
	"sort"
	"strconv"
	"strings"

	"github.com/msto63/toolkit/utils/stringx"
)

// Entry is a named member value in untyped form
type Entry struct {
	Name  string `yaml:"name"`
	Value uint64 `yaml:"value"`
}

// Table holds the metadata of one enum. It is immutable after NewTable and
// safe for concurrent use.
type Table struct {
	name    string
	flags   bool
	entries []Entry // ascending by value
	byValue map[uint64]int
	byName  map[string]int
	byFold  map[string]int
	all     uint64
	hasZero bool
}

// NewTable validates entries and builds a table. Entries may be given in
// any order; duplicate values and duplicate names are rejected.
func NewTable(name string, flags bool, entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, errNoMembers(name)
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value < sorted[j].Value })

	t := &Table{
		name:    name,
		flags:   flags,
		entries: sorted,
		byValue: make(map[uint64]int, len(sorted)),
		byName:  make(map[string]int, len(sorted)),
		byFold:  make(map[string]int, len(sorted)),
	}

	for i, e := range sorted {
		if err := validateName(name, e.Name); err != nil {
			return nil, err
		}
		if _, dup := t.byName[e.Name]; dup {
			return nil, errDuplicateName(name, e.Name)
		}
		if j, dup := t.byValue[e.Value]; dup {
			return nil, errDuplicateValue(name, sorted[j].Name, e.Name, e.Value)
		}

		t.byName[e.Name] = i
		t.byValue[e.Value] = i
		folded := stringx.FoldCase(e.Name)
		if _, taken := t.byFold[folded]; !taken {
			t.byFold[folded] = i
		}
		t.all |= e.Value
		if e.Value == 0 {
			t.hasZero = true
		}
	}

	return t, nil
}

func validateName(enum, name string) error {
	switch {
	case stringx.IsBlank(name):
		return errInvalidName(enum, name, "empty")
	case strings.TrimSpace(name) != name:
		return errInvalidName(enum, name, "leading or trailing whitespace")
	case strings.Contains(name, ","):
		return errInvalidName(enum, name, "contains the list separator")
	case looksNumeric(name):
		return errInvalidName(enum, name, "starts like a number")
	}
	return nil
}

// Name returns the enum name
func (t *Table) Name() string { return t.name }

// IsFlags reports whether values combine bitwise
func (t *Table) IsFlags() bool { return t.flags }

// Len returns the number of members
func (t *Table) Len() int { return len(t.entries) }

// Entries returns the members in ascending value order
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Values returns the member values in ascending order
func (t *Table) Values() []uint64 {
	out := make([]uint64, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Value
	}
	return out
}

// Names returns the member names in ascending value order
func (t *Table) Names() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Name
	}
	return out
}

// IsDefined reports whether v is exactly a member value
func (t *Table) IsDefined(v uint64) bool {
	_, ok := t.byValue[v]
	return ok
}

// IsDefinedName reports whether name is a member name (case-sensitive)
func (t *Table) IsDefinedName(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// NameOf returns the name of the member with value v
func (t *Table) NameOf(v uint64) (string, bool) {
	if i, ok := t.byValue[v]; ok {
		return t.entries[i].Name, true
	}
	return "", false
}

// ValueOf returns the value of the member called name (case-sensitive)
func (t *Table) ValueOf(name string) (uint64, bool) {
	if i, ok := t.byName[name]; ok {
		return t.entries[i].Value, true
	}
	return 0, false
}

// ValueOfFold is ValueOf with Unicode case folding. When several names fold
// to the same key, the member with the smallest value wins.
func (t *Table) ValueOfFold(name string) (uint64, bool) {
	if v, ok := t.ValueOf(name); ok {
		return v, true
	}
	if i, ok := t.byFold[stringx.FoldCase(name)]; ok {
		return t.entries[i].Value, true
	}
	return 0, false
}

// Min returns the smallest member value
func (t *Table) Min() uint64 { return t.entries[0].Value }

// Max returns the largest member value
func (t *Table) Max() uint64 { return t.entries[len(t.entries)-1].Value }

// All returns the bitwise OR of every member value
func (t *Table) All() uint64 { return t.all }

// IsValidCombination reports whether v only uses bits of defined members
func (t *Table) IsValidCombination(v uint64) bool { return v&^t.all == 0 }

// Decompose splits v into member values.
//
// For flags tables members are visited from the largest value down; each
// non-zero member whose bits are all still present in the remainder is
// consumed. The consumed members are returned in ascending order, followed
// by the remainder as a synthetic value when bits are left over. Zero
// yields the zero member if one is defined, otherwise nothing.
//
// For other tables the result is always [v].
func (t *Table) Decompose(v uint64) []uint64 {
	if !t.flags {
		return []uint64{v}
	}
	if v == 0 {
		if t.hasZero {
			return []uint64{0}
		}
		return nil
	}

	remaining := v
	picked := make([]uint64, 0, bits.OnesCount64(v))
	for i := len(t.entries) - 1; i >= 0 && remaining != 0; i-- {
		m := t.entries[i].Value
		if m != 0 && remaining&m == m {
			picked = append(picked, m)
			remaining &^= m
		}
	}

	for i, j := 0, len(picked)-1; i < j; i, j = i+1, j-1 {
		picked[i], picked[j] = picked[j], picked[i]
	}
	if remaining != 0 {
		picked = append(picked, remaining)
	}
	return picked
}

// Bits splits v into its single-bit components in ascending order
func Bits(v uint64) []uint64 {
	out := make([]uint64, 0, bits.OnesCount64(v))
	for v != 0 {
		low := v & -v
		out = append(out, low)
		v &^= low
	}
	return out
}

// Format renders v as a member name. Flags composites are rendered as the
// decomposition joined with ", ", unknown bits as a trailing decimal.
// Values without a name render as decimal.
func (t *Table) Format(v uint64) string {
	if name, ok := t.NameOf(v); ok {
		return name
	}
	if !t.flags || v == 0 {
		return strconv.FormatUint(v, 10)
	}

	parts := t.Decompose(v)
	names := make([]string, len(parts))
	for i, p := range parts {
		if name, ok := t.NameOf(p); ok {
			names[i] = name
		} else {
			names[i] = strconv.FormatUint(p, 10)
		}
	}
	return strings.Join(names, ", ")
}

// Parse reads a member name, a decimal or 0x-prefixed hex number, or for
// flags tables a comma separated list of those. Names match exactly unless
// ignoreCase is set, in which case an exact match is still preferred.
func (t *Table) Parse(s string, ignoreCase bool) (uint64, error) {
	input := strings.TrimSpace(s)
	if input == "" {
		return 0, errParse(t.name, s, "empty input")
	}

	if !strings.Contains(input, ",") {
		return t.parseOne(s, input, ignoreCase)
	}
	if !t.flags {
		return 0, errNotFlags(t.name, s)
	}

	var v uint64
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return 0, errParse(t.name, s, "empty list element")
		}
		u, err := t.parseOne(s, part, ignoreCase)
		if err != nil {
			return 0, err
		}
		v |= u
	}
	return v, nil
}

func (t *Table) parseOne(input, token string, ignoreCase bool) (uint64, error) {
	if v, ok := t.ValueOf(token); ok {
		return v, nil
	}
	if ignoreCase {
		if v, ok := t.ValueOfFold(token); ok {
			return v, nil
		}
	}
	if looksNumeric(token) {
		v, err := parseNumber(token)
		if err != nil {
			return 0, errParse(t.name, input, err.Error())
		}
		return v, nil
	}
	return 0, errParse(t.name, input, "unknown member "+strconv.Quote(token))
}

func looksNumeric(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '-' || c == '+' || (c >= '0' && c <= '9')
}

// parseNumber accepts decimal and 0x-prefixed hexadecimal literals. A
// leading zero does not switch to octal.
func parseNumber(s string) (uint64, error) {
	digits := strings.TrimPrefix(s, "+")
	if strings.HasPrefix(digits, "-") {
		return 0, errors.New("negative values are not supported")
	}

	base := 10
	if len(digits) > 2 && (digits[:2] == "0x" || digits[:2] == "0X") {
		digits, base = digits[2:], 16
	}
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errors.New("number exceeds 64 bits")
		}
		return 0, errors.New("invalid number")
	}
	return v, nil
}
