package futures

import (
	"log/slog"
	"time"
)

// Option configures a Registry created with NewRegistry.
type Option func(*Registry)

// WithLogger sets the logger used for task lifecycle events. Task starts
// and finishes are logged at debug level; recovered panics at error level
// with the captured stack. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithOnTaskStart installs a hook invoked synchronously from SpawnOn after
// the task has been registered and before its goroutine runs. The hook must
// not panic.
func WithOnTaskStart(fn func(TaskInfo)) Option {
	return func(r *Registry) {
		r.onStart = fn
	}
}

// WithOnTaskDone installs a hook invoked from the task's goroutine after
// its outcome has been recorded and before the registry counter drops, so a
// WaitAll return implies every hook has finished too. The error argument is
// the task's recorded error, including *PanicError for panics. The hook
// must not panic.
func WithOnTaskDone(fn func(info TaskInfo, err error, elapsed time.Duration)) Option {
	return func(r *Registry) {
		r.onDone = fn
	}
}
