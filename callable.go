package corofutures

import (
	"github.com/andriigrynenko/corofutures/allocator"
	"github.com/andriigrynenko/corofutures/metrics"
)

// CallableTask is a deferred task construction: a body function not yet
// bound to an allocator frame. The original's CallableTask forwarded its
// arguments by reference through a variadic parameter pack so a spawned
// coroutine could read and write the caller's locals; an ordinary Go
// closure already captures its enclosing variables by reference, so
// CallableTask carries no argument list of its own; callers simply close
// over what they need.
type CallableTask[T any] struct {
	body func(*Scope) (T, error)
}

// Call wraps fn as a CallableTask. fn runs once the task is spawned.
func Call[T any](fn func(*Scope) (T, error)) CallableTask[T] {
	return CallableTask[T]{body: fn}
}

// materializeWithMetrics reserves size bytes from a (or the default
// allocator) for this task's frame and produces a ready-to-start Task
// wired to provider.
func (c CallableTask[T]) materializeWithMetrics(a allocator.Allocator, size int, label string, provider metrics.Provider) (*Task[T], error) {
	frame, err := allocator.NewFrame(a, size)
	if err != nil {
		return nil, err
	}
	return newTask(c.body, frame, label, provider), nil
}

// DefaultCallFrameSize is the frame size a nested Await-time call
// reserves from the current scope's allocator when no explicit size is
// requested, standing in for the frame a real compiler would have sized
// for the call's captures automatically.
const DefaultCallFrameSize = 64

// Await materializes c against s's current allocator and executor and
// suspends the calling body until it completes, returning its result.
// This is the Go equivalent of `co_await call(fn, args...)`: the inner
// task's frame is carved from the same arena the caller itself was
// spawned from (s.Allocator()), so a StackArena's budget is shared across
// the whole call chain instead of resetting at every nested call.
func (c CallableTask[T]) Await(s *Scope) (T, error) {
	return c.AwaitWithFrame(s, DefaultCallFrameSize)
}

// AwaitWithFrame is Await with an explicit frame size, for callers that
// need to control how much of the current arena a nested call consumes -
// for instance to force allocator exhaustion deterministically.
func (c CallableTask[T]) AwaitWithFrame(s *Scope, frameSize int) (T, error) {
	task, err := c.materializeWithMetrics(s.Allocator(), frameSize, "", s.metrics)
	if err != nil {
		var zero T
		return zero, err
	}
	future := task.StartInline(ExecutionContext{Executor: s.Executor(), Allocator: s.Allocator()})
	return Await(s, future)
}
