package futures

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	ErrInvalidFuture = errors.New("futures: operation on an invalid future")
	ErrNoFutures     = errors.New("futures: AwaitAny called with no futures")
)

// PanicError is the error recorded in a task's handle when the task
// function panics. The panic value and the goroutine stack captured at
// recovery time are preserved for diagnostics.
type PanicError struct {
	// Value is the value passed to panic.
	Value any

	// Stack is the goroutine stack at the point the panic was recovered.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("futures: task panicked: %v", e.Value)
}

// Unwrap exposes the panic value when it was itself an error, so
// errors.Is and errors.As see through the recovery.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func newPanicError(v any) *PanicError {
	return &PanicError{Value: v, Stack: debug.Stack()}
}
