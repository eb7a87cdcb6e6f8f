package corofutures

import "sync/atomic"

// promiseState mirrors the four-state handshake a Promise moves through:
// EMPTY at creation, then at most one of DETACHED or HAS_AWAITER, and
// finally HAS_RESULT once the task body returns. Every transition into
// HAS_RESULT is valid regardless of which of the other two states it
// comes from.
type promiseState uint32

const (
	stateEmpty promiseState = iota
	stateDetached
	stateHasAwaiter
	stateHasResult
)

// Promise holds the eventual result of one task body. It is never
// constructed directly by callers; Task.Start creates one and hands the
// observing half to the caller as a Future.
type Promise[T any] struct {
	state   atomic.Uint32
	result  T
	err     error
	resumer func()
}

func newPromise[T any]() *Promise[T] {
	return &Promise[T]{}
}

// registerAwaiter installs resume as the callback to run once the result
// is available. It returns true if the registration landed before
// completion (resume will fire later, from complete); false means the
// result was already there by the time this call happened, so resume was
// never installed and the caller should read the result directly instead.
func (p *Promise[T]) registerAwaiter(resume func()) bool {
	p.resumer = resume
	if p.state.CompareAndSwap(uint32(stateEmpty), uint32(stateHasAwaiter)) {
		return true
	}
	p.resumer = nil
	return false
}

// detach records that no one will await this promise. It is a no-op if
// the task has already completed.
func (p *Promise[T]) detach() {
	p.state.CompareAndSwap(uint32(stateEmpty), uint32(stateDetached))
}

// complete stores the task's outcome and transitions to HAS_RESULT from
// whichever of the other three states the promise was in, invoking the
// registered resumer if the awaiter beat the task body to the punch.
func (p *Promise[T]) complete(result T, err error) {
	p.result = result
	p.err = err

	prev := promiseState(p.state.Swap(uint32(stateHasResult)))
	if prev == stateHasAwaiter {
		resume := p.resumer
		p.resumer = nil
		resume()
	}
}

func (p *Promise[T]) ready() bool {
	return promiseState(p.state.Load()) == stateHasResult
}

func (p *Promise[T]) take() (T, error) {
	return p.result, p.err
}
