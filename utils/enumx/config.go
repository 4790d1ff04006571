// File: config.go
// Title: Enum Definitions from Configuration
// Description: Builds tables from configuration sections so that enums can
//              be defined outside Go code, e.g. for the toolkit CLI.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package enumx

import (
	"github.com/msto63/toolkit/core/config"
	tkerrors "github.com/msto63/toolkit/core/errors"
)

type sectionDefinition struct {
	Name    string                 `config:"name"`
	Flags   bool                   `config:"flags"`
	Members map[string]interface{} `config:"members"`
}

// TableFromConfig builds a table from the section under key:
//
//	[enums.perm]
//	flags = true
//
//	[enums.perm.members]
//	None = 0
//	Read = 1
//	Write = 2
//
// The table name defaults to the last key segment.
func TableFromConfig(cfg *config.Config, key string) (*Table, error) {
	if cfg == nil {
		return nil, tkerrors.InvalidInput(tkerrors.ModuleEnumx, "from_config", nil, "non-nil config")
	}

	var def sectionDefinition
	if err := cfg.Decode(key, &def); err != nil {
		return nil, err
	}
	if def.Name == "" {
		def.Name = lastSegment(key)
	}

	entries := make([]Entry, 0, len(def.Members))
	for name, raw := range def.Members {
		v, err := entryValue(def.Name, name, raw)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Name: name, Value: v})
	}
	return NewTable(def.Name, def.Flags, entries)
}

// TablesFromConfig builds one table per child section of key, keyed by the
// table name.
func TablesFromConfig(cfg *config.Config, key string) (map[string]*Table, error) {
	if cfg == nil {
		return nil, tkerrors.InvalidInput(tkerrors.ModuleEnumx, "from_config", nil, "non-nil config")
	}
	if !cfg.Has(key) {
		return nil, tkerrors.NotFound(tkerrors.ModuleEnumx, "from_config", key)
	}

	tables := make(map[string]*Table)
	for _, child := range cfg.Keys(key) {
		t, err := TableFromConfig(cfg, key+"."+child)
		if err != nil {
			return nil, err
		}
		tables[t.Name()] = t
	}
	return tables, nil
}

func lastSegment(key string) string {
	for i := len(key) - 1; i >= 0; i-- {
		if key[i] == '.' {
			return key[i+1:]
		}
	}
	return key
}
