// File: stack.go
// Title: Closer Stack and Parallel Close
// Description: LIFO collection of closers released in reverse order, plus
//              parallel closing of independent resources via errgroup.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package disposex

import (
	"context"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	tkerrors "github.com/msto63/toolkit/core/errors"
)

// maxParallelClose bounds the goroutines CloseAll starts at once
const maxParallelClose = 16

// Stack collects closers and closes them in reverse order of Push.
// The zero value is ready to use. Push and Close may be called from
// multiple goroutines.
type Stack struct {
	mu      sync.Mutex
	once    sync.Once
	closers []io.Closer
	closed  bool
	err     error
}

// Push adds c to the stack. Pushing onto a closed stack closes c
// immediately and returns the result.
func (s *Stack) Push(c io.Closer) error {
	if c == nil {
		return nil
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Close(c)
	}
	s.closers = append(s.closers, c)
	s.mu.Unlock()
	return nil
}

// PushFunc adds fn as a closer
func (s *Stack) PushFunc(fn func() error) error {
	if fn == nil {
		return nil
	}
	return s.Push(CloserFunc(fn))
}

// Len returns the number of closers not yet closed
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.closers)
}

// Close closes every closer, last pushed first, and returns all failures
// joined. Only the first call does work; concurrent and later calls wait
// for it and return its result.
func (s *Stack) Close() error {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		closers := s.closers
		s.closers = nil
		s.mu.Unlock()

		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			if err := Close(closers[i]); err != nil {
				errs = append(errs, err)
			}
		}
		s.err = tkerrors.Join(errs...)
	})
	return s.err
}

// CloseAll closes the closers concurrently and returns every failure
// joined in argument order. Closers not yet started when ctx is done are
// skipped and ctx.Err() is reported for them.
func CloseAll(ctx context.Context, closers ...io.Closer) error {
	if len(closers) == 0 {
		return nil
	}

	errs := make([]error, len(closers))
	var g errgroup.Group
	g.SetLimit(maxParallelClose)
	for i, c := range closers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			errs[i] = Close(c)
			return nil
		})
	}
	_ = g.Wait()

	return tkerrors.Join(errs...)
}
