package corofutures

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/andriigrynenko/corofutures/allocator"
	"github.com/andriigrynenko/corofutures/executor"
)

func TestSpawn_SimpleValue(t *testing.T) {
	ex := executor.NewThreadExecutor()
	defer ex.Join()

	future := Spawn(ex, Call(func(_ *Scope) (int, error) {
		return 7, nil
	}))

	v, err := future.Wait()
	require.NoError(t, err)
	require.True(t, future.IsReady())
	require.Equal(t, 7, v)
}

func TestSpawn_BodiesNeverOverlapOnSharedExecutor(t *testing.T) {
	ex := executor.NewThreadExecutor()
	defer ex.Join()

	var active, maxActive atomic.Int32
	observe := func() (int, error) {
		n := active.Add(1)
		for {
			cur := maxActive.Load()
			if n <= cur || maxActive.CompareAndSwap(cur, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		active.Add(-1)
		return int(n), nil
	}

	a := Spawn(ex, Call(func(*Scope) (int, error) { return observe() }))
	b := Spawn(ex, Call(func(*Scope) (int, error) { return observe() }))

	_, errA := a.Wait()
	_, errB := b.Wait()
	require.NoError(t, errA)
	require.NoError(t, errB)
	require.Equal(t, int32(1), maxActive.Load(),
		"two tasks bound to the same executor must never have their bodies executing at once, even when neither awaits")
}

func TestSpawnWithStack_NestedCallWithBaton(t *testing.T) {
	ex := executor.NewThreadExecutor()
	defer ex.Join()

	baton := NewChannelFuture[int]()

	outer := SpawnWithStack(ex, 1024, Call(func(s *Scope) (int, error) {
		innerResult, err := Call(func(innerScope *Scope) (int, error) {
			return Await(innerScope, baton)
		}).Await(s)
		if err != nil {
			return 0, err
		}
		return 42 + innerResult, nil
	}))

	baton.Resolve(24, nil)

	v, err := outer.Wait()
	require.NoError(t, err)
	require.Equal(t, 66, v)
}

func TestSpawnWithStack_ByReferenceCapture(t *testing.T) {
	ex := executor.NewThreadExecutor()
	defer ex.Join()

	x := 42
	baton := NewChannelFuture[int]()

	observed := make(chan int, 1)
	outer := SpawnWithStack(ex, 1024, Call(func(s *Scope) (int, error) {
		batonVal, err := Await(s, baton)
		if err != nil {
			return 0, err
		}
		observed <- x
		return 42 + batonVal, nil
	}))

	baton.Resolve(24, nil)

	v, err := outer.Wait()
	require.NoError(t, err)
	require.Equal(t, 66, v)
	require.Equal(t, 42, <-observed)
}

func TestSpawnWithStack_ExhaustionSurfacesAllocationFailed(t *testing.T) {
	ex := executor.NewThreadExecutor()
	defer ex.Join()

	future := SpawnWithStack(ex, 8, Call(func(s *Scope) (int, error) {
		return Call(func(*Scope) (int, error) {
			return 1, nil
		}).AwaitWithFrame(s, 64)
	}))

	_, err := future.Wait()
	require.ErrorIs(t, err, allocator.ErrAllocationFailed)
}

func TestSpawn_EarlyDetachDoesNotPreventCompletion(t *testing.T) {
	ex := executor.NewThreadExecutor()
	defer ex.Join()

	baton := NewChannelFuture[int]()
	completed := make(chan struct{})

	future := Spawn(ex, Call(func(s *Scope) (int, error) {
		v, err := Await(s, baton)
		close(completed)
		return v, err
	}))

	require.NoError(t, future.Close())

	baton.Resolve(5, nil)
	<-completed
}

// recordingExecutor wraps a ThreadExecutor and counts Submit calls, so a
// test can observe that every slice of a task's body - its first and
// every resumption after an Await - is actually enqueued onto the
// executor rather than run wherever happens to be convenient. A task
// body's own goroutine is never literally the executor's worker goroutine
// (see Task.start), so IsOnExecutor can't be asserted from inside a body;
// counting Submit calls is the externally observable stand-in.
type recordingExecutor struct {
	ex      *executor.ThreadExecutor
	submits atomic.Int32
}

func newRecordingExecutor() *recordingExecutor {
	return &recordingExecutor{ex: executor.NewThreadExecutor()}
}

func (r *recordingExecutor) Submit(work func()) error {
	r.submits.Add(1)
	return r.ex.Submit(work)
}

func (r *recordingExecutor) IsOnExecutor() bool { return r.ex.IsOnExecutor() }
func (r *recordingExecutor) Join()              { r.ex.Join() }

func TestAwait_CrossExecutorRepostsThroughOwnExecutor(t *testing.T) {
	a := newRecordingExecutor()
	b := executor.NewThreadExecutor()
	defer a.Join()
	defer b.Join()

	resultFromB := Spawn(b, Call(func(*Scope) (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 1, nil
	}))

	outcome := Spawn(a, Call(func(s *Scope) (int, error) {
		return Await(s, resultFromB)
	}))

	v, err := outcome.Wait()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.GreaterOrEqual(t, a.submits.Load(), int32(2),
		"resuming a's task after b completes must repost through a's own executor")
}

func TestAwait_SameExecutorStillGoesThroughSubmit(t *testing.T) {
	a := newRecordingExecutor()
	defer a.Join()

	baton := NewChannelFuture[int]()
	producer := Spawn(a, Call(func(s *Scope) (int, error) {
		return Await(s, baton)
	}))

	before := a.submits.Load()

	outcome := Spawn(a, Call(func(s *Scope) (int, error) {
		baton.Resolve(1, nil)
		return Await(s, producer)
	}))

	v, err := outcome.Wait()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	// producer's first slice runs before outcome's (FIFO) and parks on
	// baton. outcome's first slice (1) resolves baton, which enqueues
	// producer's resumption (1), and then suspends on producer; producer's
	// completion, on a's own worker, enqueues outcome's resumption (1).
	// Resumption never shortcuts straight to the body, so two tasks
	// sharing a can never have slices running at once.
	require.Equal(t, int32(3), a.submits.Load()-before)
}
