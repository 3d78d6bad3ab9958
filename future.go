package futures

import "time"

// Future is a shareable handle to the eventual outcome of a task.
//
// The zero value is an invalid handle (Valid reports false). Valid handles
// are produced by SpawnOn, Spawn, Go, Resolved, and Failed. A *Future may be
// passed around freely; every holder observes the same terminal state, and
// dropping a handle never blocks and never cancels the task.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Valid reports whether the handle refers to a task or value that produces
// an outcome. It returns false only for the zero Future.
func (f *Future[T]) Valid() bool {
	return f != nil && f.done != nil
}

// Ready reports whether the outcome is already available, without blocking.
func (f *Future[T]) Ready() bool {
	if !f.Valid() {
		return false
	}
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Get blocks until the task reaches a terminal state and returns its value
// or error. Get is idempotent: it may be called any number of times, from
// any number of goroutines, and always returns the same outcome. Calling
// Get on an invalid handle returns ErrInvalidFuture.
func (f *Future[T]) Get() (T, error) {
	if !f.Valid() {
		var zero T
		return zero, ErrInvalidFuture
	}
	<-f.done
	return f.value, f.err
}

// Wait blocks until the task reaches a terminal state. It returns
// immediately on an invalid handle.
func (f *Future[T]) Wait() {
	if !f.Valid() {
		return
	}
	<-f.done
}

// WaitFor blocks until the outcome is available or d elapses. It returns
// true if the outcome is ready and false on timeout. A timeout does not
// affect the task: it keeps running and the handle remains usable for a
// later Get. An invalid handle is reported as ready.
func (f *Future[T]) WaitFor(d time.Duration) bool {
	if !f.Valid() || f.Ready() {
		return true
	}
	if d <= 0 {
		return false
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-f.done:
		return true
	case <-t.C:
		return false
	}
}

// WaitUntil is WaitFor with an absolute deadline.
func (f *Future[T]) WaitUntil(deadline time.Time) bool {
	return f.WaitFor(time.Until(deadline))
}

// Done returns a channel that is closed once the outcome is available,
// for use in select statements. It returns nil for an invalid handle.
func (f *Future[T]) Done() <-chan struct{} {
	if f == nil {
		return nil
	}
	return f.done
}

// Resolved returns a handle that is already in the terminal state holding v.
// No goroutine is launched, no registry counter is touched, and no operation
// on the returned handle ever suspends.
func Resolved[T any](v T) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), value: v}
	close(f.done)
	return f
}

// Failed returns a handle that is already in the terminal state holding err.
// It is the error counterpart of Resolved, useful for stubbing a task whose
// launch was rejected before any work started.
func Failed[T any](err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), err: err}
	close(f.done)
	return f
}
