package async

import (
	"context"
	"fmt"
	"sync"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

func newFuture[U any]() *Future[U] {
	return &Future[U]{done: make(chan struct{})}
}

// settle records the outcome exactly once and releases waiters.
func (f *Future[U]) settle(res U, err error) {
	f.once.Do(func() {
		f.result = res
		f.err = err
		close(f.done)
	})
}

// Await waits for the computation to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// IsComplete checks whether the computation has settled without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async executes fn on its own goroutine and returns a Future.
// A context that is already canceled settles the future with ctx.Err() without calling fn.
// A panic inside fn settles the future with ErrPanic.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := newFuture[U]()

	go func() {
		if err := ctx.Err(); err != nil {
			var zero U
			f.settle(zero, err)
			return
		}
		f.settle(call(func() (U, error) { return fn(ctx, param) }))
	}()

	return f
}

// Run executes fn on the calling goroutine and returns an already settled Future.
// It lets synchronous work join the same fan-in as goroutine-backed futures.
func Run[U any](fn func() (U, error)) *Future[U] {
	f := newFuture[U]()
	f.settle(call(fn))
	return f
}

// Resolved returns a Future that is already settled with the given outcome.
func Resolved[U any](result U, err error) *Future[U] {
	f := newFuture[U]()
	f.settle(result, err)
	return f
}

func call[U any](fn func() (U, error)) (res U, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero U
			res, err = zero, fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return fn()
}

// WaitAll waits until every future has settled and returns the results in the
// order the futures were passed, regardless of completion order.
// The returned error is the error of the lowest-indexed failed future.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	var firstErr error

	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return results, firstErr
}
