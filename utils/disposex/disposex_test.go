// File: disposex_test.go
// Title: Closer Helper Tests
// Description: Tests for nil-safe close, idempotent close, defer helpers,
//              closer stacks and parallel close.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial test implementation

package disposex

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/msto63/toolkit/core/log"

	tkerror "github.com/msto63/toolkit/core/error"
	tkerrors "github.com/msto63/toolkit/core/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingCloser struct {
	calls atomic.Int32
	err   error
}

func (c *countingCloser) Close() error {
	c.calls.Add(1)
	return c.err
}

func TestClose(t *testing.T) {
	t.Run("nil closers are ignored", func(t *testing.T) {
		var nilFile *os.File
		var nilFunc CloserFunc
		assert.NoError(t, Close(nil))
		assert.NoError(t, Close(nilFile))
		assert.NoError(t, Close(nilFunc))
		assert.NoError(t, Close(NopCloser()))
	})

	t.Run("failure is wrapped", func(t *testing.T) {
		cause := errors.New("disk gone")
		err := Close(&countingCloser{err: cause})
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, tkerror.Code(tkerrors.CodeDisposexCloseFailed), tkerror.GetCode(err))
		assert.Contains(t, err.Error(), "*disposex.countingCloser")
	})
}

func TestOnce(t *testing.T) {
	cause := errors.New("boom")
	c := &countingCloser{err: cause}
	once := Once(c)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.ErrorIs(t, once.Close(), cause)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), c.calls.Load())
	assert.Same(t, once, Once(once))
}

func TestCloseQuietly(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New().WithOutput(&buf).WithFormat(log.FormatJSON)

	CloseQuietly(&countingCloser{err: errors.New("socket reset")}, logger)
	assert.Contains(t, buf.String(), "close failed")
	assert.Contains(t, buf.String(), "socket reset")

	buf.Reset()
	CloseQuietly(&countingCloser{}, logger)
	assert.Empty(t, buf.String())
}

func TestDeferHelpers(t *testing.T) {
	closeErr := errors.New("close failed")
	funcErr := errors.New("func failed")

	t.Run("CloseOnError skips on success", func(t *testing.T) {
		c := &countingCloser{}
		f := func() (err error) {
			defer CloseOnError(&err, c)
			return nil
		}
		assert.NoError(t, f())
		assert.Equal(t, int32(0), c.calls.Load())
	})

	t.Run("CloseOnError closes on failure", func(t *testing.T) {
		c := &countingCloser{err: closeErr}
		f := func() (err error) {
			defer CloseOnError(&err, c)
			return funcErr
		}
		err := f()
		assert.ErrorIs(t, err, funcErr)
		assert.ErrorIs(t, err, closeErr)
		assert.Equal(t, int32(1), c.calls.Load())
	})

	t.Run("CloseAndJoin reports close failure", func(t *testing.T) {
		c := &countingCloser{err: closeErr}
		f := func() (err error) {
			defer CloseAndJoin(&err, c)
			return nil
		}
		assert.ErrorIs(t, f(), closeErr)
	})

	t.Run("CloseAndJoin keeps function error", func(t *testing.T) {
		c := &countingCloser{err: closeErr}
		f := func() (err error) {
			defer CloseAndJoin(&err, c)
			return funcErr
		}
		err := f()
		assert.ErrorIs(t, err, funcErr)
		assert.ErrorIs(t, err, closeErr)
	})
}

func TestUsing(t *testing.T) {
	c := &countingCloser{}
	err := Using(c, func(c *countingCloser) error {
		assert.Equal(t, int32(0), c.calls.Load())
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, int32(1), c.calls.Load())

	r := io.NopCloser(strings.NewReader("payload"))
	var got []byte
	err = Using(r, func(r io.ReadCloser) error {
		var readErr error
		got, readErr = io.ReadAll(r)
		return readErr
	})
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))

	c = &countingCloser{}
	assert.Panics(t, func() {
		_ = Using(c, func(*countingCloser) error { panic("boom") })
	})
	assert.Equal(t, int32(1), c.calls.Load(), "closed despite panic")
}

func TestStack(t *testing.T) {
	var order []string
	record := func(name string, err error) func() error {
		return func() error {
			order = append(order, name)
			return err
		}
	}
	errB := errors.New("b failed")
	errD := errors.New("d failed")

	var s Stack
	require.NoError(t, s.PushFunc(record("a", nil)))
	require.NoError(t, s.PushFunc(record("b", errB)))
	require.NoError(t, s.PushFunc(record("c", nil)))
	require.NoError(t, s.PushFunc(record("d", errD)))
	require.NoError(t, s.Push(nil))
	assert.Equal(t, 4, s.Len())

	err := s.Close()
	assert.Equal(t, []string{"d", "c", "b", "a"}, order)
	assert.ErrorIs(t, err, errB)
	assert.ErrorIs(t, err, errD)
	assert.Equal(t, 0, s.Len())

	// second close is a no-op returning the same result
	assert.Equal(t, err, s.Close())
	assert.Len(t, order, 4)

	late := &countingCloser{}
	require.NoError(t, s.Push(late))
	assert.Equal(t, int32(1), late.calls.Load())
}

func TestStackConcurrentPush(t *testing.T) {
	var s Stack
	var closed atomic.Int32

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.PushFunc(func() error {
				closed.Add(1)
				return nil
			})
		}()
	}
	wg.Wait()

	require.NoError(t, s.Close())
	assert.Equal(t, int32(50), closed.Load())
}

func TestCloseAll(t *testing.T) {
	assert.NoError(t, CloseAll(context.Background()))

	errA := errors.New("a")
	closers := []io.Closer{
		&countingCloser{err: errA},
		&countingCloser{},
		nil,
		&countingCloser{},
	}
	err := CloseAll(context.Background(), closers...)
	assert.ErrorIs(t, err, errA)
	for _, c := range closers {
		if cc, ok := c.(*countingCloser); ok {
			assert.Equal(t, int32(1), cc.calls.Load())
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	skipped := &countingCloser{}
	err = CloseAll(ctx, skipped)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), skipped.calls.Load())
}
