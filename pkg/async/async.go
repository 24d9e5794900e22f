package async

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext waits for completion or for ctx to end, whichever comes first.
// A future that completed before ctx ended always wins.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	default:
	}

	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return zero, errors.Join(ErrTimeout, ctx.Err())
		}
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout waits for the asynchronous function to complete with a timeout.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the future has completed without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

func (f *Future[U]) complete(res U, err error) {
	f.once.Do(func() {
		f.result = res
		f.err = err
		close(f.done)
	})
}

// Async executes fn in a new goroutine and returns a Future for its result.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		// Pre-canceled context: skip the call entirely.
		if err := ctx.Err(); err != nil {
			var zero U
			f.complete(zero, err)
			return
		}

		res, err := fn(ctx, param)
		f.complete(res, err)
	}()

	return f
}

// Resolved returns a Future that is already complete with the given value.
func Resolved[U any](value U) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}
	f.complete(value, nil)
	return f
}

// Rejected returns a Future that is already complete with the given error.
func Rejected[U any](err error) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}
	var zero U
	f.complete(zero, err)
	return f
}

// WaitAll awaits every future in order and returns their results.
// It stops at the first error, returning the results collected so far.
// Nil futures are reported as ErrNilFuture.
func WaitAll[U any](ctx context.Context, futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	for i, future := range futures {
		if future == nil {
			return results, ErrNilFuture
		}
		result, err := future.AwaitContext(ctx)
		results[i] = result
		if err != nil {
			return results, err
		}
	}

	return results, nil
}
