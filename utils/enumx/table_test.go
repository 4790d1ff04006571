// File: table_test.go
// Title: Untyped Table Tests
// Description: Tests for table validation, YAML definitions and tables
//              loaded from configuration.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial test implementation

package enumx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/msto63/toolkit/core/config"
	tkerror "github.com/msto63/toolkit/core/error"
)

func TestNewTableValidation(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		code    tkerror.Code
	}{
		{"no members", nil, tkerror.CodeInvalidInput},
		{"empty name", []Entry{{Name: " ", Value: 1}}, tkerror.CodeInvalidInput},
		{"padded name", []Entry{{Name: "A ", Value: 1}}, tkerror.CodeInvalidInput},
		{"comma in name", []Entry{{Name: "A,B", Value: 1}}, tkerror.CodeInvalidInput},
		{"numeric name", []Entry{{Name: "1st", Value: 1}}, tkerror.CodeInvalidInput},
		{"duplicate name", []Entry{{Name: "A", Value: 1}, {Name: "A", Value: 2}}, tkerror.CodeDuplicateEntry},
		{"duplicate value", []Entry{{Name: "A", Value: 1}, {Name: "B", Value: 1}}, tkerror.CodeEnumDuplicateValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable("test", true, tt.entries)
			require.Error(t, err)
			assert.Equal(t, tt.code, tkerror.GetCode(err))
		})
	}
}

func TestTableFoldPrefersSmallestValue(t *testing.T) {
	table, err := NewTable("mode", false, []Entry{{Name: "ON", Value: 2}, {Name: "on", Value: 1}})
	require.NoError(t, err)

	v, ok := table.ValueOfFold("On")
	assert.True(t, ok)
	assert.Equal(t, uint64(1), v)

	v, ok = table.ValueOfFold("ON")
	assert.True(t, ok)
	assert.Equal(t, uint64(2), v)
}

func TestTableLargeValues(t *testing.T) {
	table, err := NewTable("wide", true, []Entry{{Name: "Low", Value: 1}, {Name: "Top", Value: 1 << 63}})
	require.NoError(t, err)

	assert.Equal(t, "Low, Top", table.Format(1<<63|1))
	v, err := table.Parse("0x8000000000000001", false)
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<63|1), v)

	_, err = table.Parse("18446744073709551616", false)
	assert.Error(t, err)
}

func TestBits(t *testing.T) {
	assert.Empty(t, Bits(0))
	assert.Equal(t, []uint64{1, 4, 1 << 63}, Bits(1<<63|5))
}

func TestTableYAML(t *testing.T) {
	table, err := NewTable("perm", true, []Entry{{Name: "Write", Value: 2}, {Name: "Read", Value: 1}})
	require.NoError(t, err)

	data, err := yaml.Marshal(table)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: perm\n")
	assert.Contains(t, string(data), "flags: true\n")
	assert.Contains(t, string(data), "- name: Read\n")
	assert.Less(t, strings.Index(string(data), "Read"), strings.Index(string(data), "Write"))

	tables, err := LoadTables(data)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, table.Entries(), tables[0].Entries())
	assert.True(t, tables[0].IsFlags())
}

func TestLoadTablesList(t *testing.T) {
	data := []byte(`
- name: color
  members:
    - {name: Red, value: 1}
    - {name: Green, value: "0x2"}
- name: level
  members:
    - {name: Max, value: 18446744073709551615}
`)
	tables, err := LoadTables(data)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	assert.Equal(t, []string{"Red", "Green"}, tables[0].Names())
	assert.Equal(t, uint64(18446744073709551615), tables[1].Max())

	empty, err := LoadTables(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLoadTablesNegative(t *testing.T) {
	_, err := LoadTables([]byte("name: bad\nmembers:\n  - {name: Minus, value: -4}\n"))
	require.Error(t, err)
	assert.Equal(t, tkerror.CodeEnumNegativeValue, tkerror.GetCode(err))
}

const enumConfig = `
[enums.perm]
flags = true

[enums.perm.members]
None = 0
Read = 1
Write = 2
Exec = 4

[enums.status]
name = "Status"

[enums.status.members]
Active = 1
Inactive = 2
`

func TestTableFromConfig(t *testing.T) {
	cfg, err := config.LoadFromString(enumConfig, config.FormatTOML)
	require.NoError(t, err)

	table, err := TableFromConfig(cfg, "enums.perm")
	require.NoError(t, err)
	assert.Equal(t, "perm", table.Name())
	assert.True(t, table.IsFlags())
	assert.Equal(t, []string{"None", "Read", "Write", "Exec"}, table.Names())
	assert.Equal(t, "Read, Exec", table.Format(5))

	tables, err := TablesFromConfig(cfg, "enums")
	require.NoError(t, err)
	require.Contains(t, tables, "Status")
	require.Contains(t, tables, "perm")
	assert.False(t, tables["Status"].IsFlags())

	_, err = TableFromConfig(cfg, "enums.missing")
	assert.Error(t, err)
	_, err = TablesFromConfig(cfg, "nothing")
	assert.Error(t, err)
	_, err = TableFromConfig(nil, "enums")
	assert.Error(t, err)
}

func TestTableFromConfigNegative(t *testing.T) {
	cfg, err := config.LoadFromString("[e.members]\nBad = -1\n", config.FormatTOML)
	require.NoError(t, err)

	_, err = TableFromConfig(cfg, "e")
	require.Error(t, err)
	assert.Equal(t, tkerror.CodeEnumNegativeValue, tkerror.GetCode(err))
}
