// File: doc.go
// Title: Package Documentation for disposex
// Description: Package disposex provides helpers for releasing resources
//              that implement io.Closer.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

// Package disposex provides helpers for releasing io.Closer resources.
//
// # Defer Helpers
//
// CloseAndJoin and CloseOnError keep close failures from being dropped in
// deferred calls:
//
//	func copyFile(dst, src string) (err error) {
//		in, err := os.Open(src)
//		if err != nil {
//			return err
//		}
//		defer disposex.CloseAndJoin(&err, in)
//		...
//	}
//
// # Stacks
//
// A Stack releases resources in reverse order of acquisition, the way a
// chain of defers would, but can be handed around and closed later:
//
//	var res disposex.Stack
//	res.Push(db)
//	res.Push(cache)
//	defer res.Close() // closes cache, then db
//
// CloseAll closes independent resources concurrently.
//
// Close failures carry the code DISPOSEX_CLOSE_FAILED and wrap the
// original error, so errors.Is keeps working.
package disposex
