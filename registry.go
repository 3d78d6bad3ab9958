package futures

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TaskInfo identifies a spawned task to observer hooks and log output.
type TaskInfo struct {
	// ID is a unique identifier assigned at spawn time.
	ID uuid.UUID

	// StartedAt is the time the task was registered.
	StartedAt time.Time
}

// Registry counts in-flight tasks and lets callers drain them.
//
// Spawning through a registry increments its outstanding counter before the
// task's goroutine starts; the counter is decremented only after the task's
// outcome has been recorded into its handle. WaitAll therefore returns only
// when every spawned task is observably finished. The registry holds no
// reference to task handles and performs no I/O of its own.
//
// Create a Registry with NewRegistry. All methods are safe for concurrent
// use.
type Registry struct {
	mu          sync.Mutex
	cond        *sync.Cond
	outstanding int

	logger  *slog.Logger
	onStart func(TaskInfo)
	onDone  func(TaskInfo, error, time.Duration)
}

// NewRegistry creates a registry with no outstanding tasks.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{logger: slog.Default()}
	r.cond = sync.NewCond(&r.mu)
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Go spawns fn as a valueless task on the registry. The returned handle
// distinguishes completion from failure but carries no payload.
func (r *Registry) Go(fn func() error) *Future[struct{}] {
	return SpawnOn(r, func() (struct{}, error) {
		return struct{}{}, fn()
	})
}

// WaitAll blocks until the registry has no outstanding tasks. It may be
// called from any number of goroutines at once; all callers unblock when
// the count reaches zero. Tasks spawned by other goroutines while WaitAll
// is blocked are waited for as well. When the count is already zero,
// WaitAll returns immediately.
func (r *Registry) WaitAll() {
	r.mu.Lock()
	for r.outstanding > 0 {
		r.cond.Wait()
	}
	r.mu.Unlock()
}

// Len returns the number of tasks that have been spawned on the registry
// and have not yet finished recording their outcome.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outstanding
}

// register commits a task to run. It must be called before the task's
// goroutine is launched so the counter can never under-count in-flight work.
func (r *Registry) register(info TaskInfo) {
	r.mu.Lock()
	r.outstanding++
	n := r.outstanding
	r.mu.Unlock()

	if r.onStart != nil {
		r.onStart(info)
	}
	r.logger.Debug("task started",
		slog.String("task_id", info.ID.String()),
		slog.Int("outstanding", n))
}

// deregister records that a task finished. The task's result slot must be
// terminal before this is called: the decrement releases WaitAll callers,
// who are entitled to read every result without further synchronization.
func (r *Registry) deregister(info TaskInfo, err error, elapsed time.Duration) {
	if r.onDone != nil {
		r.onDone(info, err, elapsed)
	}
	switch e := err.(type) {
	case nil:
		r.logger.Debug("task finished",
			slog.String("task_id", info.ID.String()),
			slog.Duration("duration", elapsed))
	case *PanicError:
		r.logger.Error("panic recovered in task",
			slog.String("task_id", info.ID.String()),
			slog.Any("panic", e.Value),
			slog.String("stack", string(e.Stack)))
	default:
		r.logger.Debug("task failed",
			slog.String("task_id", info.ID.String()),
			slog.Duration("duration", elapsed),
			slog.Any("error", err))
	}

	r.mu.Lock()
	r.outstanding--
	r.cond.Broadcast()
	r.mu.Unlock()
}

// defaultRegistry backs the package-level Spawn, Go, and WaitAll so that
// convenience call sites across a process drain together.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the package-level
// spawn functions.
func Default() *Registry {
	return defaultRegistry
}

// Spawn launches fn on the default registry. See SpawnOn.
func Spawn[T any](fn func() (T, error)) *Future[T] {
	return SpawnOn(defaultRegistry, fn)
}

// Go launches a valueless fn on the default registry. See Registry.Go.
func Go(fn func() error) *Future[struct{}] {
	return defaultRegistry.Go(fn)
}

// WaitAll drains the default registry. Call it before the process exits if
// the side effects of tasks spawned with Spawn or Go matter.
func WaitAll() {
	defaultRegistry.WaitAll()
}
