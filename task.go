package corofutures

import (
	"fmt"
	"time"

	"github.com/andriigrynenko/corofutures/allocator"
	"github.com/andriigrynenko/corofutures/executor"
	"github.com/andriigrynenko/corofutures/metrics"
)

// Task is a not-yet-started unit of work: a body function already bound
// to an allocator frame, waiting to be given an ExecutionContext. Start
// transfers ownership of the frame and the resulting Promise to the
// returned Future.
type Task[T any] struct {
	body    func(*Scope) (T, error)
	frame   *allocator.Frame
	label   string
	metrics metrics.Provider
}

func newTask[T any](body func(*Scope) (T, error), frame *allocator.Frame, label string, provider metrics.Provider) *Task[T] {
	if provider == nil {
		provider = metrics.NewNoopProvider()
	}
	return &Task[T]{body: body, frame: frame, label: label, metrics: provider}
}

// Start binds t to ec and enqueues its first slice onto ec.Executor. The
// body runs on a dedicated goroutine for the task's entire lifetime (Go
// goroutines, unlike the compiler-generated stackless coroutines this
// runtime was modeled on, already carry their own stack across a
// suspension), but that goroutine only ever makes progress while some
// executor's worker is blocked inside taskRunner.runSlice actively
// driving it one slice at a time: the worker does not return from
// runSlice until the body has either parked on its next Await or
// returned for good, so two tasks bound to the same executor can never
// have their bodies running concurrently, even if neither ever awaits.
func (t *Task[T]) Start(ec ExecutionContext) *Future[T] {
	return t.start(ec, false)
}

// StartInline behaves like Start, except the first slice runs
// immediately on the calling goroutine instead of being enqueued through
// Submit. This is only safe when the caller already holds a legitimate
// turn on ec.Executor - concretely, when the caller is itself a task body
// running a slice ec.Executor's worker is currently blocked driving (see
// CallableTask.AwaitWithFrame, which CallableTask.Await delegates to and
// which is the only caller of StartInline in this package).
// Calling it from anywhere else runs the new task's body on whatever
// arbitrary goroutine called StartInline, outside that executor's
// worker's supervision, and breaks the one-task-at-a-time guarantee the
// rendezvous in runner.go otherwise provides.
func (t *Task[T]) StartInline(ec ExecutionContext) *Future[T] {
	return t.start(ec, true)
}

func (t *Task[T]) start(ec ExecutionContext, inline bool) *Future[T] {
	promise := newPromise[T]()
	future := newFuture[T](promise)
	runner := newTaskRunner()
	scope := &Scope{ec: ec, runner: runner, metrics: t.metrics}
	label, stackSize := t.label, t.frameSize()
	latency := t.metrics.Histogram("corofutures.task.latency_seconds", metrics.WithUnit("seconds"))
	started := time.Now()

	go func() {
		runner.park()

		result, err := t.runBody(scope)
		if err != nil {
			err = newSpawnTaggedError(err, label, stackSize)
		}
		latency.Record(time.Since(started).Seconds())
		t.releaseFrame()
		promise.complete(result, err)
		runner.yield()
	}()

	if inline {
		runner.runSlice()
	} else {
		scheduleSlice(ec.Executor, runner)
	}

	return future
}

func (t *Task[T]) runBody(scope *Scope) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
		}
	}()
	return t.body(scope)
}

func (t *Task[T]) releaseFrame() {
	if t.frame != nil {
		t.frame.Release()
	}
}

func (t *Task[T]) frameSize() int {
	if t.frame == nil {
		return 0
	}
	return len(t.frame.Buf)
}

// scheduleSlice enqueues one slice of runner onto ex. A nil ex means the
// task has no executor to serialize against, so the slice just runs
// synchronously on the calling goroutine instead of being deferred to one
// that doesn't exist.
func scheduleSlice(ex executor.Executor, runner *taskRunner) {
	if ex == nil {
		runner.runSlice()
		return
	}
	_ = ex.Submit(func() { runner.runSlice() })
}
