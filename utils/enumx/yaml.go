// File: yaml.go
// Title: Enum Definition Codec
// Description: YAML encoding of enum tables and conversion of loosely typed
//              member values coming from YAML, TOML or environment sources.
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
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/msto63/toolkit/utils/stringx"
)

type tableDocument struct {
	Name    string           `yaml:"name"`
	Flags   bool             `yaml:"flags,omitempty"`
	Members []memberDocument `yaml:"members"`
}

type memberDocument struct {
	Name  string      `yaml:"name"`
	Value interface{} `yaml:"value"`
}

// MarshalYAML encodes the table as a definition document with members in
// ascending value order.
func (t *Table) MarshalYAML() (interface{}, error) {
	doc := tableDocument{Name: t.name, Flags: t.flags, Members: make([]memberDocument, len(t.entries))}
	for i, e := range t.entries {
		doc.Members[i] = memberDocument{Name: e.Name, Value: e.Value}
	}
	return doc, nil
}

// UnmarshalYAML decodes a definition document and validates it like
// NewTable does.
func (t *Table) UnmarshalYAML(node *yaml.Node) error {
	var doc tableDocument
	if err := node.Decode(&doc); err != nil {
		return err
	}

	entries := make([]Entry, 0, len(doc.Members))
	for _, m := range doc.Members {
		v, err := entryValue(doc.Name, m.Name, m.Value)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{Name: m.Name, Value: v})
	}

	built, err := NewTable(doc.Name, doc.Flags, entries)
	if err != nil {
		return err
	}
	*t = *built
	return nil
}

// LoadTables decodes a YAML stream holding either a single definition or a
// list of definitions.
func LoadTables(data []byte) ([]*Table, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errParse("definitions", stringx.TruncateWithEllipsis(string(data), 64, "..."), err.Error())
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	if root.Kind != yaml.SequenceNode {
		var t Table
		if err := root.Decode(&t); err != nil {
			return nil, err
		}
		return []*Table{&t}, nil
	}

	tables := make([]*Table, 0, len(root.Content))
	for _, item := range root.Content {
		var t Table
		if err := item.Decode(&t); err != nil {
			return nil, err
		}
		tables = append(tables, &t)
	}
	return tables, nil
}

// entryValue converts a decoded member value to uint64. Negative numbers are
// reported with ENUM_NEGATIVE_VALUE, strings are parsed as numbers.
func entryValue(enum, member string, raw interface{}) (uint64, error) {
	switch v := raw.(type) {
	case int:
		return signedValue(enum, member, int64(v))
	case int8:
		return signedValue(enum, member, int64(v))
	case int16:
		return signedValue(enum, member, int64(v))
	case int32:
		return signedValue(enum, member, int64(v))
	case int64:
		return signedValue(enum, member, v)
	case uint:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint32:
		return uint64(v), nil
	case uint64:
		return v, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, errInvalidName(enum, member, fmt.Sprintf("value %v is not an integer", v))
		}
		if v < 0 {
			return 0, errNegativeValue(enum, member, int64(v))
		}
		return uint64(v), nil
	case string:
		s := strings.TrimSpace(v)
		if strings.HasPrefix(s, "-") {
			var n int64
			if _, err := fmt.Sscan(s, &n); err == nil {
				return 0, errNegativeValue(enum, member, n)
			}
		}
		u, err := parseNumber(s)
		if err != nil {
			return 0, errParse(enum, v, err.Error())
		}
		return u, nil
	default:
		return 0, errInvalidName(enum, member, fmt.Sprintf("unsupported value type %T", raw))
	}
}

func signedValue(enum, member string, v int64) (uint64, error) {
	if v < 0 {
		return 0, errNegativeValue(enum, member, v)
	}
	return uint64(v), nil
}
