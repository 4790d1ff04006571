// File: keyed.go
// Title: Keyed Locks and Call Deduplication
// Description: Per-key mutual exclusion with reference-counted entries and
//              a typed wrapper around singleflight.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package lockx

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

type keyedEntry struct {
	mu   sync.Mutex
	refs int
}

// KeyedMutex provides one mutex per key. Entries exist only while some
// goroutine holds or waits for the key. The zero value is ready to use.
type KeyedMutex[K comparable] struct {
	mu      sync.Mutex
	entries map[K]*keyedEntry
}

// Lock blocks until key is free and returns its release function
func (k *KeyedMutex[K]) Lock(key K) (unlock func()) {
	e := k.acquire(key)
	e.mu.Lock()
	return k.releaser(key, e)
}

// LockContext is Lock bounded by ctx. See Acquire for the errors.
func (k *KeyedMutex[K]) LockContext(ctx context.Context, key K) (unlock func(), err error) {
	e := k.acquire(key)
	if err := Acquire(ctx, &e.mu); err != nil {
		k.release(key, e)
		return nil, err
	}
	return k.releaser(key, e), nil
}

// Do runs fn while holding key
func (k *KeyedMutex[K]) Do(key K, fn func() error) error {
	defer k.Lock(key)()
	return fn()
}

// Len returns the number of keys currently held or waited for
func (k *KeyedMutex[K]) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

func (k *KeyedMutex[K]) acquire(key K) *keyedEntry {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.entries == nil {
		k.entries = make(map[K]*keyedEntry)
	}
	e, ok := k.entries[key]
	if !ok {
		e = &keyedEntry{}
		k.entries[key] = e
	}
	e.refs++
	return e
}

func (k *KeyedMutex[K]) releaser(key K, e *keyedEntry) func() {
	return sync.OnceFunc(func() {
		e.mu.Unlock()
		k.release(key, e)
	})
}

func (k *KeyedMutex[K]) release(key K, e *keyedEntry) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(k.entries, key)
	}
}

// KeyedGroup collapses concurrent calls for the same key into one
// execution whose result all callers share.
type KeyedGroup[T any] struct {
	group singleflight.Group
}

// Do runs fn once per key among concurrent callers. shared reports
// whether the result was handed to more than one caller.
func (g *KeyedGroup[T]) Do(key string, fn func() (T, error)) (v T, shared bool, err error) {
	res, err, shared := g.group.Do(key, func() (interface{}, error) {
		return fn()
	})
	if res != nil {
		v = res.(T)
	}
	return v, shared, err
}

// Forget drops key so that the next Do starts a new call
func (g *KeyedGroup[T]) Forget(key string) {
	g.group.Forget(key)
}
