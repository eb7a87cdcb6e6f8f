package corofutures

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFuture_TakeBeforeReadyReturnsErrFutureNotReady(t *testing.T) {
	f := newFuture[int](newPromise[int]())

	_, err := f.Take()
	require.ErrorIs(t, err, ErrFutureNotReady)
}

func TestFuture_WaitBlocksUntilComplete(t *testing.T) {
	p := newPromise[int]()
	f := newFuture[int](p)

	go p.complete(9, nil)

	v, err := f.Wait()
	require.NoError(t, err)
	require.Equal(t, 9, v)
}

func TestFuture_CloseWithoutAwaiterDetaches(t *testing.T) {
	p := newPromise[int]()
	f := newFuture[int](p)

	require.NoError(t, f.Close())
	require.NoError(t, f.Close(), "Close must be idempotent")
}

func TestFuture_CloseWithPendingAwaiterFails(t *testing.T) {
	p := newPromise[int]()
	f := newFuture[int](p)

	p.registerAwaiter(func() {})

	err := f.Close()
	require.ErrorIs(t, err, ErrDetachWithPendingAwaiter)
}

func TestFuture_CloseAfterCompleteSucceeds(t *testing.T) {
	p := newPromise[int]()
	f := newFuture[int](p)
	p.complete(1, nil)

	require.NoError(t, f.Close())
}
