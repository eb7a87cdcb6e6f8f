package corofutures

// taskRunner hands control of a task body's goroutine back and forth
// with whichever executor worker is currently driving it, one slice at a
// time. A slice begins the moment the driving goroutine sends on turn and
// ends the moment the body either suspends on its next Await or returns
// for good; runSlice blocks its caller for exactly that span, so two
// slices belonging to tasks bound to the same executor can never
// overlap, regardless of whether either body ever actually awaits
// anything.
type taskRunner struct {
	turn   chan struct{}
	parked chan struct{}
}

func newTaskRunner() *taskRunner {
	return &taskRunner{turn: make(chan struct{}), parked: make(chan struct{})}
}

// runSlice hands the body one slice of execution and blocks until it
// parks again or finishes. Callers must only invoke this from whatever
// goroutine is meant to own the next slice (normally an executor worker,
// reached through Submit).
func (r *taskRunner) runSlice() {
	r.turn <- struct{}{}
	<-r.parked
}

// yield hands control back to whoever is blocked in runSlice: the body
// calls this right before it suspends on an Await, and once more, for
// good, right after it has stored its final result.
func (r *taskRunner) yield() {
	r.parked <- struct{}{}
}

// park blocks the body's own goroutine until the next slice begins.
func (r *taskRunner) park() {
	<-r.turn
}
