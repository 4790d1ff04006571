// File: decode.go
// Title: Struct Binding for Configuration Sections
// Description: Binds a configuration subtree into a Go struct using
//              mapstructure with weak typing and duration parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package config

import (
	"github.com/mitchellh/mapstructure"

	tkerror "github.com/msto63/toolkit/core/error"
	tkerrors "github.com/msto63/toolkit/core/errors"
)

// DecodeTag is the struct tag read by Decode
const DecodeTag = "config"

// Decode binds the subtree under key into target, which must be a non-nil
// pointer. An empty key binds the whole document. Field names are matched
// through the `config` tag, falling back to case-insensitive field names.
// Environment overrides are not applied.
func (c *Config) Decode(key string, target interface{}) error {
	var input interface{}
	if key == "" {
		input = c.GetAll()
	} else {
		sub := c.Sub(key)
		if sub == nil {
			if !c.Has(key) {
				return tkerrors.NotFound(tkerrors.ModuleConfig, "decode", key)
			}
			c.mu.RLock()
			input = c.getValue(key)
			c.mu.RUnlock()
		} else {
			input = sub
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          DecodeTag,
		WeaklyTypedInput: true,
		Result:           target,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return tkerror.Wrap(err, "invalid decode target").
			WithCode(tkerror.CodeInvalidInput).
			WithOperation("config.decode")
	}

	if err := decoder.Decode(input); err != nil {
		return tkerror.Wrap(err, "failed to decode config section").
			WithCode(tkerror.CodeInvalidConfig).
			WithOperation("config.decode").
			WithDetail("key", key)
	}
	return nil
}
