package corofutures

import "github.com/andriigrynenko/corofutures/executor"

// AwaitWrapper mediates resumption between whatever produced an awaited
// value and the executor a suspended task body must resume on. A task's
// code only ever runs while its own executor's worker is actively driving
// it; an AwaitWrapper is what enforces that regardless of which goroutine
// the producer happens to complete on, by always scheduling the next
// slice back through the awaiter's own executor rather than ever running
// it in place.
type AwaitWrapper struct {
	executor executor.Executor
	runner   *taskRunner
}

func newAwaitWrapper(ex executor.Executor, runner *taskRunner) *AwaitWrapper {
	return &AwaitWrapper{executor: ex, runner: runner}
}

// resume is registered with the Awaitable as its completion callback. It
// runs on whatever goroutine completed the awaited value, so it must not
// assume it is already on the awaiter's executor: it schedules one slice
// of the suspended task back onto that executor and returns immediately,
// without waiting for the slice to run.
func (w *AwaitWrapper) resume() {
	scheduleSlice(w.executor, w.runner)
}
