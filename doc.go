// Package futures provides detached asynchronous task execution with
// non-blocking result handles and an explicit drain protocol.
//
// The package is built around two pieces. The generic Future type is a
// shareable handle to the eventual outcome of a task: any number of holders
// may call Get, Wait, WaitFor, or WaitUntil on the same handle and all of
// them observe the same value or error. Dropping a Future never blocks and
// never stops the underlying task; launch and wait are fully decoupled,
// unlike designs where releasing the last handle silently joins the worker.
//
// The Registry tracks how many spawned tasks are still in flight. Every
// SpawnOn call increments its counter before the task starts and decrements
// it after the task's outcome has been recorded, so Registry.WaitAll returns
// only once every spawned task has reached a terminal state and its result
// is safe to read. A process-wide default registry backs the package-level
// Spawn, Go, and WaitAll functions for callers that do not want to manage a
// registry object themselves.
//
// # Usage
//
//	import "github.com/dmitrymomot/futures"
//
//	func main() {
//	    f := futures.Spawn(func() (int, error) {
//	        return expensiveComputation()
//	    })
//
//	    // do other work …
//
//	    v, err := f.Get()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(v)
//
//	    // Drain every task spawned through the default registry before
//	    // the process exits.
//	    futures.WaitAll()
//	}
//
// Isolated registries can be created with NewRegistry, which keeps unit
// tests and independent subsystems from sharing drain state:
//
//	reg := futures.NewRegistry(futures.WithLogger(logger))
//	f := futures.SpawnOn(reg, fetchUser)
//	reg.WaitAll()
//
// # Error Handling
//
// A task failure is local to its handle. Get returns the error produced by
// the task function, and a panic inside the task is recovered and surfaced
// as a *PanicError carrying the panic value and the goroutine stack. Errors
// never reach WaitAll: drain callers learn that tasks finished, not whether
// they succeeded. A caller that never inspects a handle therefore never
// learns of that task's failure; that fire-and-forget contract is
// intentional.
//
// # Concurrency
//
// Every spawned task runs on its own goroutine. The package imposes no
// pooling, queueing, or concurrency limit; callers that need bounded
// parallelism must bound it themselves. There is no cancellation: once
// spawned, a task runs to completion, and WaitFor/WaitUntil bound only the
// waiting, never the task. A registry must be drained with WaitAll before
// the process exits if the side effects of in-flight tasks matter; a task
// that never terminates will make that drain block forever.
package futures
