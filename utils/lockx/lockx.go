// File: lockx.go
// Title: Lock Scope Helpers
// Description: Run functions under a held lock with guaranteed release,
//              unlock closures and context-bounded lock acquisition.
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
	"time"

	tkerror "github.com/msto63/toolkit/core/error"
	tkerrors "github.com/msto63/toolkit/core/errors"
)

// pollInterval is the upper bound between TryLock attempts
const pollInterval = 10 * time.Millisecond

// TryLocker is a lock that supports non-blocking acquisition.
// *sync.Mutex and *sync.RWMutex implement it.
type TryLocker interface {
	sync.Locker
	TryLock() bool
}

// WithLock runs fn while holding l. The lock is released even if fn panics.
func WithLock(l sync.Locker, fn func()) {
	l.Lock()
	defer l.Unlock()
	fn()
}

// WithLockE runs fn while holding l and returns its error
func WithLockE(l sync.Locker, fn func() error) error {
	l.Lock()
	defer l.Unlock()
	return fn()
}

// WithRLock runs fn while holding a read lock on rw
func WithRLock(rw *sync.RWMutex, fn func()) {
	rw.RLock()
	defer rw.RUnlock()
	fn()
}

// WithRLockE runs fn while holding a read lock on rw and returns its error
func WithRLockE(rw *sync.RWMutex, fn func() error) error {
	rw.RLock()
	defer rw.RUnlock()
	return fn()
}

// Lock acquires l and returns a function that releases it. Calling the
// returned function more than once has no further effect.
//
//	defer lockx.Lock(&mu)()
func Lock(l sync.Locker) (unlock func()) {
	l.Lock()
	return sync.OnceFunc(l.Unlock)
}

// RLock acquires a read lock on rw and returns its release function
func RLock(rw *sync.RWMutex) (unlock func()) {
	rw.RLock()
	return sync.OnceFunc(rw.RUnlock)
}

// Acquire tries to take l until ctx is done. On failure the error carries
// LOCKX_TIMEOUT when the deadline passed and RESOURCE_LOCKED when ctx was
// cancelled; both wrap ctx.Err().
func Acquire(ctx context.Context, l TryLocker) error {
	if l.TryLock() {
		return nil
	}

	wait := time.Millisecond
	timer := time.NewTimer(wait)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return lockError(ctx.Err())
		case <-timer.C:
			if l.TryLock() {
				return nil
			}
			if wait < pollInterval {
				wait *= 2
			}
			timer.Reset(wait)
		}
	}
}

// TryLockFor runs fn under l if the lock can be taken before ctx is done
func TryLockFor(ctx context.Context, l TryLocker, fn func() error) error {
	if err := Acquire(ctx, l); err != nil {
		return err
	}
	defer l.Unlock()
	return fn()
}

func lockError(cause error) error {
	eb := tkerrors.NewErrorBuilder(tkerrors.ModuleLockx).
		Operation("try_lock").
		Cause(cause).
		Severity(tkerror.SeverityLow)

	if tkerrors.Is(cause, context.DeadlineExceeded) {
		return eb.Message("lock not acquired before deadline").Build()
	}
	return eb.Code(string(tkerror.CodeResourceLocked)).
		Message("lock not acquired before cancellation").
		Build()
}
