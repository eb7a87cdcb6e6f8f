package corofutures

import (
	"github.com/andriigrynenko/corofutures/allocator"
	"github.com/andriigrynenko/corofutures/metrics"
)

// spawnConfig holds the per-spawn knobs applied by Option.
type spawnConfig struct {
	label     string
	allocator allocator.Allocator
	metrics   metrics.Provider
}

// Option configures a single Spawn or SpawnWithStack call.
type Option func(*spawnConfig)

// WithLabel tags the spawned task with a name that shows up, via
// ExtractSpawnLabel, in the error of a Future whose task body returned an
// error or panicked. A Future that failed because the task's frame could
// not be allocated carries no label. It replaces the original demo
// program's habit of printing a thread id to stdout from inside the task
// body: a label survives past the task's lifetime, attached to the error
// itself, and works the same way regardless of which executor ran the
// task.
func WithLabel(label string) Option {
	return func(c *spawnConfig) { c.label = label }
}

// WithAllocator overrides the allocator a Spawn call draws its frame
// from. SpawnWithStack ignores this option; it always uses the stack
// arena it creates for the requested size.
func WithAllocator(a allocator.Allocator) Option {
	return func(c *spawnConfig) { c.allocator = a }
}

// WithMetrics wires a metrics.Provider into a spawned task: its
// time-to-result is recorded as a Histogram, and a failure to allocate
// its frame is recorded as a Counter. Defaults to a NoopProvider.
func WithMetrics(p metrics.Provider) Option {
	return func(c *spawnConfig) { c.metrics = p }
}

func buildSpawnConfig(opts []Option) spawnConfig {
	c := spawnConfig{metrics: metrics.NewNoopProvider()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&c)
	}
	return c
}
