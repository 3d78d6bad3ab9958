package futures

import (
	"time"

	"github.com/google/uuid"
)

// SpawnOn launches fn on its own detached goroutine, registered with r, and
// returns a handle to its eventual outcome. SpawnOn never blocks and never
// waits on the task: the handle may be dropped, shared, or read at any
// later point.
//
// The goroutine records fn's return value or error (or, if fn panics, a
// *PanicError) into the handle exactly once, and only then deregisters
// from r. A registry drain completing thus guarantees the handle is
// terminal. SpawnOn panics if fn is nil; that is a programming error, not a
// task failure.
func SpawnOn[T any](r *Registry, fn func() (T, error)) *Future[T] {
	if fn == nil {
		panic("futures: SpawnOn called with nil fn")
	}

	f := &Future[T]{done: make(chan struct{})}
	info := TaskInfo{ID: uuid.New(), StartedAt: time.Now()}
	r.register(info)

	go func() {
		defer func() {
			// Capture ordering matters: the slot must be terminal before
			// done closes, and done must close before the registry counter
			// drops. Nothing in this block can fail, so a task can never be
			// left pending forever.
			if rec := recover(); rec != nil {
				f.err = newPanicError(rec)
			}
			close(f.done)
			r.deregister(info, f.err, time.Since(info.StartedAt))
		}()
		f.value, f.err = fn()
	}()

	return f
}
