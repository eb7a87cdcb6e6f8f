package corofutures

import (
	"github.com/andriigrynenko/corofutures/allocator"
	"github.com/andriigrynenko/corofutures/executor"
)

// ExecutionContext is the {executor, allocator} pair threaded into every
// spawned task. It is assigned once, before the task starts, and is
// read-only thereafter.
type ExecutionContext struct {
	Executor  executor.Executor
	Allocator allocator.Allocator
}

// allocatorOrDefault returns ec.Allocator, falling back to the process
// default heap allocator when none was supplied.
func (ec ExecutionContext) allocatorOrDefault() allocator.Allocator {
	if ec.Allocator != nil {
		return ec.Allocator
	}
	return allocator.Default()
}
