package corofutures

import (
	"github.com/andriigrynenko/corofutures/allocator"
	"github.com/andriigrynenko/corofutures/executor"
	"github.com/andriigrynenko/corofutures/metrics"
)

// Scope is handed to every task body. It carries the ExecutionContext the
// task was started with and is the only way a body observes where it's
// running, suspends on another Awaitable, or materializes a nested call.
type Scope struct {
	ec      ExecutionContext
	runner  *taskRunner
	metrics metrics.Provider
}

// Executor returns the executor this task body is bound to.
func (s *Scope) Executor() executor.Executor { return s.ec.Executor }

// Allocator returns the allocator this task body was spawned with.
func (s *Scope) Allocator() allocator.Allocator { return s.ec.allocatorOrDefault() }

// Await suspends the calling task body until a's result becomes
// available, then returns it. If a is already ready, Await returns it
// without suspending at all.
//
// Suspension hands control of the current slice back to whichever
// executor worker is driving it (runner.yield), then parks the body's
// own goroutine until the next slice begins (runner.park). Resumption is
// always dispatched through an AwaitWrapper, which schedules that next
// slice back onto the task's own executor once a's result is ready -
// regardless of which goroutine completed it - so a task body only ever
// runs while its own executor's worker is actively driving it.
func Await[T any](s *Scope, a Awaitable[T]) (T, error) {
	if a.IsReady() {
		return a.Take()
	}

	wrapper := newAwaitWrapper(s.ec.Executor, s.runner)

	if !a.RegisterAwaiter(wrapper.resume) {
		return a.Take()
	}

	s.runner.yield()
	s.runner.park()

	return a.Take()
}
