// File: lockx_test.go
// Title: Lock Helper Tests
// Description: Tests for scoped locks, context-bounded acquisition, keyed
//              mutexes and call deduplication.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial test implementation

package lockx

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	tkerror "github.com/msto63/toolkit/core/error"
	tkerrors "github.com/msto63/toolkit/core/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWithLock(t *testing.T) {
	var mu sync.Mutex
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			WithLock(&mu, func() { counter++ })
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, counter)

	assert.Panics(t, func() {
		WithLock(&mu, func() { panic("boom") })
	})
	assert.True(t, mu.TryLock(), "released after panic")
	mu.Unlock()

	want := errors.New("failed")
	assert.ErrorIs(t, WithLockE(&mu, func() error { return want }), want)
	assert.True(t, mu.TryLock())
	mu.Unlock()
}

func TestWithRLock(t *testing.T) {
	var rw sync.RWMutex

	WithRLock(&rw, func() {
		// readers share the lock
		assert.True(t, rw.TryRLock())
		rw.RUnlock()
		assert.False(t, rw.TryLock())
	})
	assert.True(t, rw.TryLock())
	rw.Unlock()

	want := errors.New("read failed")
	assert.ErrorIs(t, WithRLockE(&rw, func() error { return want }), want)
	assert.True(t, rw.TryLock())
	rw.Unlock()
}

func TestLockReturnsUnlock(t *testing.T) {
	var mu sync.Mutex
	unlock := Lock(&mu)
	assert.False(t, mu.TryLock())
	unlock()
	unlock()
	assert.True(t, mu.TryLock())
	mu.Unlock()

	var rw sync.RWMutex
	runlock := RLock(&rw)
	assert.False(t, rw.TryLock())
	runlock()
	runlock()
	assert.True(t, rw.TryLock())
	rw.Unlock()
}

func TestAcquire(t *testing.T) {
	t.Run("free lock", func(t *testing.T) {
		var mu sync.Mutex
		require.NoError(t, Acquire(context.Background(), &mu))
		mu.Unlock()
	})

	t.Run("released while waiting", func(t *testing.T) {
		var mu sync.Mutex
		mu.Lock()
		time.AfterFunc(20*time.Millisecond, mu.Unlock)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, Acquire(ctx, &mu))
		mu.Unlock()
	})

	t.Run("deadline", func(t *testing.T) {
		var mu sync.Mutex
		mu.Lock()
		defer mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		err := Acquire(ctx, &mu)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, tkerror.Code(tkerrors.CodeLockxTimeout), tkerror.GetCode(err))
	})

	t.Run("cancelled", func(t *testing.T) {
		var rw sync.RWMutex
		rw.RLock()
		defer rw.RUnlock()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := Acquire(ctx, &rw)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, tkerror.CodeResourceLocked, tkerror.GetCode(err))
	})
}

func TestTryLockFor(t *testing.T) {
	var mu sync.Mutex
	ran := false
	require.NoError(t, TryLockFor(context.Background(), &mu, func() error {
		ran = true
		return nil
	}))
	assert.True(t, ran)
	assert.True(t, mu.TryLock())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := TryLockFor(ctx, &mu, func() error {
		t.Fatal("must not run")
		return nil
	})
	assert.Error(t, err)
	mu.Unlock()
}

func TestKeyedMutex(t *testing.T) {
	var km KeyedMutex[string]

	counters := map[string]int{}
	var mapMu sync.Mutex
	var inFlight [2]atomic.Int32
	var maxSeen atomic.Int32

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		key := []string{"a", "b"}[i%2]
		slot := i % 2
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = km.Do(key, func() error {
				n := inFlight[slot].Add(1)
				if n > maxSeen.Load() {
					maxSeen.Store(n)
				}
				time.Sleep(time.Millisecond)
				mapMu.Lock()
				counters[key]++
				mapMu.Unlock()
				inFlight[slot].Add(-1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, counters["a"])
	assert.Equal(t, 20, counters["b"])
	assert.Equal(t, int32(1), maxSeen.Load(), "one holder per key")
	assert.Equal(t, 0, km.Len(), "entries released")
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	var km KeyedMutex[int]
	unlockA := km.Lock(1)
	defer unlockA()

	done := make(chan struct{})
	go func() {
		defer close(done)
		km.Lock(2)()
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on other key blocked")
	}
	assert.Equal(t, 1, km.Len())
}

func TestKeyedMutexLockContext(t *testing.T) {
	var km KeyedMutex[string]
	unlock := km.Lock("job")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := km.LockContext(ctx, "job")
	require.Error(t, err)
	assert.Equal(t, 1, km.Len(), "waiter reference dropped")

	unlock()
	unlock()
	assert.Equal(t, 0, km.Len())

	unlock2, err := km.LockContext(context.Background(), "job")
	require.NoError(t, err)
	unlock2()
	assert.Equal(t, 0, km.Len())
}

func TestKeyedGroup(t *testing.T) {
	var g KeyedGroup[int]
	var calls atomic.Int32
	release := make(chan struct{})
	started := make(chan struct{})

	fn := func() (int, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		return 42, nil
	}

	results := make(chan int, 5)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, _, _ := g.Do("answer", fn)
		results <- v
	}()
	<-started

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, _, _ := g.Do("answer", fn)
			results <- v
		}()
	}
	// give the followers time to join the in-flight call
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	for v := range results {
		assert.Equal(t, 42, v)
	}
	assert.Equal(t, int32(1), calls.Load())

	want := errors.New("lookup failed")
	v, shared, err := g.Do("err", func() (int, error) { return 0, want })
	assert.ErrorIs(t, err, want)
	assert.False(t, shared)
	assert.Equal(t, 0, v)

	g.Forget("answer")
}
