// File: doc.go
// Title: Package Documentation for lockx
// Description: Package lockx provides scoped locking helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

// Package lockx provides scoped locking helpers.
//
// WithLock and friends tie a lock to the lifetime of a function call:
//
//	lockx.WithLock(&mu, func() { counter++ })
//	defer lockx.Lock(&mu)()
//
// Acquire and TryLockFor give up when a context ends:
//
//	ctx, cancel := context.WithTimeout(ctx, time.Second)
//	defer cancel()
//	err := lockx.TryLockFor(ctx, &mu, flush) // LOCKX_TIMEOUT after 1s
//
// KeyedMutex serializes work per key, e.g. per file path or account ID,
// without keeping an entry for every key ever seen. KeyedGroup lets
// concurrent callers asking for the same key share one result.
package lockx
