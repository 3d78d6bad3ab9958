package futures_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/futures"
)

func TestResolved(t *testing.T) {
	t.Parallel()

	f := futures.Resolved(42)
	require.True(t, f.Valid())
	require.True(t, f.Ready())

	start := time.Now()
	v, err := f.Get()
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Less(t, elapsed, 50*time.Millisecond, "value-backed handle must not suspend")
}

func TestFailed(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	f := futures.Failed[string](boom)
	require.True(t, f.Valid())
	require.True(t, f.Ready())

	v, err := f.Get()
	assert.Empty(t, v)
	assert.ErrorIs(t, err, boom)
}

func TestZeroFutureIsInvalid(t *testing.T) {
	t.Parallel()

	var f futures.Future[int]
	assert.False(t, f.Valid())
	assert.False(t, f.Ready())
	assert.Nil(t, f.Done())

	v, err := f.Get()
	assert.Zero(t, v)
	assert.ErrorIs(t, err, futures.ErrInvalidFuture)

	// Wait on an invalid handle must not suspend.
	done := make(chan struct{})
	go func() {
		f.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait on invalid handle blocked")
	}
}

func TestGetIdempotent(t *testing.T) {
	t.Parallel()

	reg := futures.NewRegistry()

	value := futures.SpawnOn(reg, func() (string, error) {
		return "result", nil
	})
	v1, err1 := value.Get()
	v2, err2 := value.Get()
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, v1, v2)

	failing := futures.SpawnOn(reg, func() (string, error) {
		return "", errors.New("boom")
	})
	_, err1 = failing.Get()
	_, err2 = failing.Get()
	require.EqualError(t, err1, "boom")
	assert.Same(t, err1, err2)

	reg.WaitAll()
}

func TestWaitForTimeout(t *testing.T) {
	t.Parallel()

	reg := futures.NewRegistry()
	f := futures.SpawnOn(reg, func() (int, error) {
		time.Sleep(100 * time.Millisecond)
		return 7, nil
	})

	// The timeout bounds the waiting, not the task.
	ready := f.WaitFor(time.Millisecond)
	assert.False(t, ready)
	assert.True(t, f.Valid())

	v, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.True(t, f.WaitFor(time.Millisecond))

	reg.WaitAll()
}

func TestWaitUntil(t *testing.T) {
	t.Parallel()

	reg := futures.NewRegistry()
	f := futures.SpawnOn(reg, func() (int, error) {
		time.Sleep(100 * time.Millisecond)
		return 1, nil
	})

	assert.False(t, f.WaitUntil(time.Now().Add(time.Millisecond)))
	assert.False(t, f.WaitUntil(time.Now().Add(-time.Second)), "past deadline on a pending task")
	assert.True(t, f.WaitUntil(time.Now().Add(5*time.Second)))

	reg.WaitAll()
}

func TestDoneChannelSelect(t *testing.T) {
	t.Parallel()

	reg := futures.NewRegistry()
	f := futures.SpawnOn(reg, func() (int, error) {
		time.Sleep(20 * time.Millisecond)
		return 9, nil
	})

	select {
	case <-f.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("Done channel never closed")
	}

	require.True(t, f.Ready())
	v, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	reg.WaitAll()
}

func TestSharedHandleObservesSameOutcome(t *testing.T) {
	t.Parallel()

	reg := futures.NewRegistry()
	f := futures.SpawnOn(reg, func() (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 123, nil
	})

	const readers = 8
	results := make(chan int, readers)
	for range readers {
		go func(shared *futures.Future[int]) {
			v, err := shared.Get()
			if err != nil {
				results <- -1
				return
			}
			results <- v
		}(f)
	}

	for range readers {
		assert.Equal(t, 123, <-results)
	}

	reg.WaitAll()
}
