package corofutures

import "errors"

// Namespace prefixes every sentinel error defined by this package, so a
// wrapped error chain makes its origin obvious at a glance.
const Namespace = "corofutures"

var (
	// ErrFutureNotReady is returned by Future.Take when called before the
	// promise has reached HAS_RESULT.
	ErrFutureNotReady = errors.New(Namespace + ": future has no result yet")

	// ErrDetachWithPendingAwaiter is raised when a Future with a
	// registered awaiter is closed. A future under active await must
	// outlive the await; destroying it first is a programmer error.
	ErrDetachWithPendingAwaiter = errors.New(Namespace + ": future closed while an awaiter was registered")

	// ErrTaskOwnershipNotTransferred names the case of a Task discarded
	// without ever being started. Ownership of the promise must move to a
	// Future via Start or StartInline; no code path in this package
	// detects a discarded Task or returns this error.
	ErrTaskOwnershipNotTransferred = errors.New(Namespace + ": task discarded before start")

	// ErrTaskPanicked wraps a recovered panic from a task body.
	ErrTaskPanicked = errors.New(Namespace + ": task body panicked")

	// ErrInvalidTaskBody names an unsupported task body signature. Task
	// bodies are statically typed as func(*Scope) (T, error), so no code
	// path in this package returns it.
	ErrInvalidTaskBody = errors.New(Namespace + ": invalid task body")
)
