package executor

import (
	"sync"

	"github.com/andriigrynenko/corofutures/metrics"
)

// ThreadExecutor owns one worker goroutine and runs submitted work
// serially, in FIFO order, on it. It is the reference Executor
// implementation, directly modeled on the original single-thread
// executor: a mutex-guarded queue, a condition variable the worker waits
// on, and a dedicated worker that drains the queue fully before checking
// for more work or for shutdown.
type ThreadExecutor struct {
	mu       sync.Mutex
	cond     *sync.Cond
	queue    []func()
	stopping bool
	stopped  chan struct{}
	workerID uint64

	metrics metricsHooks
}

type metricsHooks struct {
	queueDepth metrics.UpDownCounter
	submitted  metrics.Counter
	executed   metrics.Counter
}

// ThreadExecutorOption configures a ThreadExecutor at construction.
type ThreadExecutorOption func(*ThreadExecutor)

// WithMetrics wires a metrics.Provider into the executor: queue depth is
// reported as an up/down counter, submitted and executed work items as
// monotonic counters.
func WithMetrics(p metrics.Provider) ThreadExecutorOption {
	return func(e *ThreadExecutor) {
		e.metrics = metricsHooks{
			queueDepth: p.UpDownCounter("corofutures.executor.queue_depth"),
			submitted:  p.Counter("corofutures.executor.submitted"),
			executed:   p.Counter("corofutures.executor.executed"),
		}
	}
}

// NewThreadExecutor starts the worker goroutine and blocks until it has
// recorded its own goroutine id, so IsOnExecutor is meaningful as soon as
// NewThreadExecutor returns.
func NewThreadExecutor(opts ...ThreadExecutorOption) *ThreadExecutor {
	e := &ThreadExecutor{
		stopped: make(chan struct{}),
		metrics: metricsHooks{
			queueDepth: metrics.NewNoopProvider().UpDownCounter(""),
			submitted:  metrics.NewNoopProvider().Counter(""),
			executed:   metrics.NewNoopProvider().Counter(""),
		},
	}
	e.cond = sync.NewCond(&e.mu)
	for _, opt := range opts {
		opt(e)
	}

	started := make(chan struct{})
	go e.run(started)
	<-started

	return e
}

func (e *ThreadExecutor) run(started chan struct{}) {
	e.mu.Lock()
	e.workerID = goroutineID()
	e.mu.Unlock()
	close(started)

	e.mu.Lock()
	defer e.mu.Unlock()

	for {
		for !e.stopping && len(e.queue) == 0 {
			e.cond.Wait()
		}

		for len(e.queue) > 0 {
			job := e.queue[0]
			e.queue = e.queue[1:]
			e.metrics.queueDepth.Add(-1)

			e.mu.Unlock()
			job()
			e.metrics.executed.Add(1)
			e.mu.Lock()
		}

		if e.stopping {
			close(e.stopped)
			return
		}
	}
}

// Submit enqueues work for FIFO execution on the worker goroutine.
func (e *ThreadExecutor) Submit(work func()) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopping {
		return ErrSubmitAfterStop
	}

	e.queue = append(e.queue, work)
	e.metrics.submitted.Add(1)
	e.metrics.queueDepth.Add(1)
	e.cond.Signal()
	return nil
}

// IsOnExecutor reports whether the calling goroutine is this executor's
// worker goroutine.
func (e *ThreadExecutor) IsOnExecutor() bool {
	e.mu.Lock()
	id := e.workerID
	e.mu.Unlock()
	return goroutineID() == id
}

// Join stops accepting new work, drains whatever is already queued, and
// waits for the worker goroutine to exit. Join is idempotent.
func (e *ThreadExecutor) Join() {
	e.mu.Lock()
	if e.stopping {
		e.mu.Unlock()
		<-e.stopped
		return
	}
	e.stopping = true
	e.cond.Signal()
	e.mu.Unlock()

	<-e.stopped
}
