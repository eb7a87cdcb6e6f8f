// Package executor provides the FIFO work-runner abstraction that task
// resumptions are dispatched through.
package executor

import "errors"

// ErrSubmitAfterStop is returned by Submit once the executor has been
// asked to stop.
var ErrSubmitAfterStop = errors.New("executor: submit after stop")

// Executor accepts units of work and runs them serially, in FIFO order,
// on one owned worker. It is the scheduling primitive every task is bound
// to at start: task code only ever runs on its own executor.
type Executor interface {
	// Submit enqueues work for serial execution. It returns
	// ErrSubmitAfterStop if the executor has already been stopped.
	Submit(work func()) error

	// IsOnExecutor reports whether the calling goroutine is this
	// executor's own worker goroutine. It is not meaningful for a task
	// body's own dedicated goroutine, which is always driven by this
	// executor rather than ever running as it; it exists for debug
	// assertions pinned to the worker goroutine itself.
	IsOnExecutor() bool
}
