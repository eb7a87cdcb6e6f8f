package corofutures

import "sync/atomic"

// ChannelFuture bridges a result produced outside this package's task
// machinery (an API call on a background goroutine, a std::future-style
// baton) into something a task body can Await. It is the concrete
// Awaitable this package ships beyond Future[T] itself, resolving the
// spec's open question about external-future interop: rather than
// requiring every external type to implement Awaitable directly, a
// producer gets a ChannelFuture, passes it to the consumer however it
// likes, and calls Resolve exactly once.
type ChannelFuture[T any] struct {
	state   atomic.Uint32
	ch      chan struct{}
	result  T
	err     error
	resumer func()
}

// NewChannelFuture creates an unresolved bridge. Resolve must be called
// exactly once, from any goroutine, to deliver a result.
func NewChannelFuture[T any]() *ChannelFuture[T] {
	return &ChannelFuture[T]{ch: make(chan struct{})}
}

// Resolve delivers result/err to whoever is awaiting this future,
// synchronously invoking a registered resumer if one was waiting, or
// otherwise marking the result ready for a later Take/IsReady poll.
func (c *ChannelFuture[T]) Resolve(result T, err error) {
	c.result = result
	c.err = err
	close(c.ch)

	prev := promiseState(c.state.Swap(uint32(stateHasResult)))
	if prev == stateHasAwaiter {
		resume := c.resumer
		c.resumer = nil
		resume()
	}
}

func (c *ChannelFuture[T]) IsReady() bool {
	return promiseState(c.state.Load()) == stateHasResult
}

func (c *ChannelFuture[T]) RegisterAwaiter(resume func()) bool {
	c.resumer = resume
	if c.state.CompareAndSwap(uint32(stateEmpty), uint32(stateHasAwaiter)) {
		return true
	}
	c.resumer = nil
	return false
}

func (c *ChannelFuture[T]) Take() (T, error) {
	if !c.IsReady() {
		var zero T
		return zero, ErrFutureNotReady
	}
	return c.result, c.err
}

// Wait blocks the calling goroutine (not a task body's Await path) until
// Resolve has been called.
func (c *ChannelFuture[T]) Wait() (T, error) {
	<-c.ch
	return c.result, c.err
}
