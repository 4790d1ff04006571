// File: url.go
// Title: URL Helpers
// Description: Merging a query into an existing URL, parsing raw query
//              strings with order preserved and loading default
//              parameters from configuration.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package urlx

import (
	"net/url"
	"strings"

	"github.com/msto63/toolkit/core/config"

	tkerrors "github.com/msto63/toolkit/core/errors"
)

// AppendTo adds the parameters to base. An existing query and fragment of
// base are kept; the new parameters follow the existing ones.
func (q *QueryBuilder) AppendTo(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", tkerrors.NewErrorBuilder(tkerrors.ModuleUrlx).
			Operation("append").
			Cause(err).
			Messagef("invalid base URL %q", base).
			Detail("url", base).
			Build()
	}

	encoded := q.Encode()
	switch {
	case encoded == "":
	case u.RawQuery == "":
		u.RawQuery = encoded
	default:
		u.RawQuery = strings.TrimSuffix(u.RawQuery, "&") + "&" + encoded
	}
	return u.String(), nil
}

// ParseQuery builds a QueryBuilder from a raw query string such as
// "a=1&b=x%20y&a=2". A leading "?" is ignored and parameter order is
// kept. Parameters without "=" get an empty value.
func ParseQuery(raw string) (*QueryBuilder, error) {
	q := NewQueryBuilder()
	raw = strings.TrimPrefix(raw, "?")

	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		if strings.Contains(part, ";") {
			return nil, parseError(raw, part, "semicolon separator")
		}

		rawKey, rawValue, _ := strings.Cut(part, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, parseError(raw, part, err.Error())
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, parseError(raw, part, err.Error())
		}
		if key == "" {
			return nil, parseError(raw, part, "empty parameter name")
		}
		q.Add(key, value)
	}
	return q, nil
}

// FromConfig builds a QueryBuilder from the map stored under key, one
// parameter per entry in key order. List values add one parameter per
// element:
//
//	[search.defaults]
//	format = "json"
//	engines = ["ddg", "wiki"]
func FromConfig(cfg *config.Config, key string) (*QueryBuilder, error) {
	if cfg == nil {
		return nil, tkerrors.InvalidInput(tkerrors.ModuleUrlx, "from_config", nil, "config")
	}
	if !cfg.Has(key) {
		return nil, tkerrors.NotFound(tkerrors.ModuleUrlx, "from_config", key)
	}
	section := cfg.Sub(key)
	if section == nil {
		return nil, tkerrors.InvalidInput(tkerrors.ModuleUrlx, "from_config", key, "table of parameters")
	}

	q := NewQueryBuilder()
	for _, name := range cfg.Keys(key) {
		q.AddAny(name, section[name])
	}
	if err := q.Err(); err != nil {
		return nil, err
	}
	return q, nil
}

func parseError(raw, part, reason string) error {
	return tkerrors.NewErrorBuilder(tkerrors.ModuleUrlx).
		Operation("parse_query").
		Messagef("invalid query parameter %q: %s", part, reason).
		Detail("query", raw).
		Detail("parameter", part).
		Build()
}
