// Package corofutures is a minimal cooperative, single-threaded-per-task
// asynchronous runtime: spawn a task body onto an Executor, Await other
// tasks or bridged external results from inside it, and observe the
// outcome through a Future.
//
// Constructors
//   - Spawn(executor, Call(fn), opts...): runs fn on the process default
//     heap allocator.
//   - SpawnWithStack(executor, size, Call(fn), opts...): runs fn against
//     a dedicated, fixed-capacity StackArena instead of the shared heap.
//
// Execution model
// Every task body runs on its own goroutine for its entire lifetime, but
// that goroutine only ever makes progress one slice at a time: a
// taskRunner rendezvous hands it control and blocks the driving
// executor's worker until the body parks on its next Await or returns
// for good. Resumption is always dispatched back through the task's own
// Executor via AwaitWrapper, regardless of which goroutine completed the
// awaited value. Two tasks bound to the same Executor can therefore never
// have their bodies executing at once, matching the one-thread-at-a-time
// guarantee the original's coroutine state machine provided by
// construction.
//
// Allocators
//   - allocator.Default(): a size-classed sync.Pool-backed heap.
//   - allocator.NewStackArena(n): a LIFO-only, self-draining, fixed
//     capacity arena, for callers who want to bound a task chain's
//     allocation footprint up front.
//
// Errors
// Sentinel errors are defined in errors.go, all prefixed with Namespace.
// A task's returned error is wrapped with its spawn label and frame size
// (see error_tagging.go); use ExtractSpawnLabel to recover it.
package corofutures
