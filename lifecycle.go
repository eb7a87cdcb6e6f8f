package corofutures

import (
	"golang.org/x/sync/errgroup"

	"github.com/andriigrynenko/corofutures/executor"
)

// ShutdownAll joins every executor in execs concurrently and waits for
// all of them to drain, adapting the teacher's sequential
// lifecycleCoordinator.Close into a fan-in suited to a runtime that
// commonly has several independent ThreadExecutors in flight at once
// (one per spawn-heavy subsystem, say). Join itself never returns an
// error; errgroup here is pure fan-in/fan-out plumbing so callers get one
// wait point instead of a loop of sequential Joins.
func ShutdownAll(execs ...*executor.ThreadExecutor) {
	var g errgroup.Group
	for _, ex := range execs {
		ex := ex
		g.Go(func() error {
			ex.Join()
			return nil
		})
	}
	_ = g.Wait()
}
