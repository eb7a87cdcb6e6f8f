package corofutures

import (
	"github.com/andriigrynenko/corofutures/allocator"
	"github.com/andriigrynenko/corofutures/executor"
)

// DefaultFrameSize is the frame size Spawn and SpawnWithStack reserve for
// a spawned task's own frame, from the heap allocator (or whatever
// WithAllocator supplies) or from the SpawnWithStack arena. Go
// doesn't place the Promise inside this buffer the way the original's
// compiler-generated coroutine frame did (the Promise lives on the Go
// heap, managed by the garbage collector like everything else); the
// frame still exists as a real buffer handed through the Allocator
// interface so that allocator bookkeeping, pooling and exhaustion remain
// observable and testable independent of task identity.
const DefaultFrameSize = 256

// Spawn starts fn running on ex using the process default heap allocator
// (or whatever allocator WithAllocator supplies), and returns a Future
// observing its result.
func Spawn[T any](ex executor.Executor, fn CallableTask[T], opts ...Option) *Future[T] {
	cfg := buildSpawnConfig(opts)
	a := cfg.allocator
	if a == nil {
		a = allocator.Default()
	}

	task, err := fn.materializeWithMetrics(a, DefaultFrameSize, cfg.label, cfg.metrics)
	if err != nil {
		cfg.metrics.Counter("corofutures.allocator.failures").Add(1)
		return failedFuture[T](err)
	}

	return task.Start(ExecutionContext{Executor: ex, Allocator: a})
}

// SpawnWithStack starts fn running on ex, drawing its frame from a
// dedicated StackArena of stackSize bytes instead of the shared heap
// allocator. The arena is released (and, once fully drained, freed) when
// the task's frame is released on completion. WithAllocator is ignored
// here: the whole point of SpawnWithStack is to use a purpose-built
// arena instead of whatever allocator the caller might otherwise supply.
// The task's own frame takes DefaultFrameSize bytes of the arena; the rest
// is left for frames of nested calls awaited from its body.
func SpawnWithStack[T any](ex executor.Executor, stackSize int, fn CallableTask[T], opts ...Option) *Future[T] {
	cfg := buildSpawnConfig(opts)
	arena := allocator.NewStackArena(stackSize)

	task, err := fn.materializeWithMetrics(arena, DefaultFrameSize, cfg.label, cfg.metrics)
	if err != nil {
		cfg.metrics.Counter("corofutures.allocator.failures").Add(1)
		return failedFuture[T](err)
	}

	return task.Start(ExecutionContext{Executor: ex, Allocator: arena})
}

// failedFuture returns an already-completed Future carrying err, used
// when a task can't even be materialized (e.g. the requested frame size
// doesn't fit in the target arena).
func failedFuture[T any](err error) *Future[T] {
	promise := newPromise[T]()
	var zero T
	promise.complete(zero, err)
	return newFuture[T](promise)
}
