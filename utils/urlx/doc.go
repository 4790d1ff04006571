// File: doc.go
// Title: Package Documentation for urlx
// Description: Package urlx builds URI query strings with stable parameter
//              order.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

// Package urlx builds URI query strings.
//
// url.Values sorts keys on Encode and encodes spaces as "+". QueryBuilder
// keeps parameters in the order they were added, allows repeated keys and
// encodes per RFC 3986:
//
//	q := urlx.NewQueryBuilder().
//		Add("q", "go generics").
//		AddInt("page", 2).
//		AddIfNotEmpty("lang", lang)
//	link, err := q.AppendTo("https://search.example.org/search?format=json")
//	// https://search.example.org/search?format=json&q=go%20generics&page=2
//
// Adders never fail mid-chain. An invalid parameter is dropped and the
// first failure is reported by Err.
//
// Default parameters can live in configuration and be loaded with
// FromConfig.
package urlx
