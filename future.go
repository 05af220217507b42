// Package futures provides a Future type which can be used to model the
// result of an ongoing computation which could fail.
//
// Futures are not the idiomatic way to deal with concurrency in Go.
// Go APIs should be synchronous not asynchronous.
// If your API returns a Future: you are doing it wrong.
// That being said, some systems really are asynchronous, and futures,
// especially the Promises, can help build synchronous APIs on top of them.
//
// Every Future in this package is bound to an Executor, and all of its
// callbacks run there, one burst at a time. Two transformations registered
// on futures bound to the same Executor can never race each other, so
// chains of callbacks share state without taking a lock.
package futures

import (
	"context"
)

// cell holds the eventual outcome for one future: the write-once value and
// error, and the callbacks waiting on them. The done channel may be read
// from any goroutine; everything else must only be touched while running on
// the owning future's executor.
type cell[T any] struct {
	done  chan struct{} // closed exactly once, after value and err are set
	value T
	err   error
	cbs   callbackList
}

func (c *cell[T]) resolved() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// trySet stores the outcome and hands back the callbacks that were waiting,
// or an empty list if the cell already resolved. A failure keeps the zero
// value, whatever was passed alongside the error. Caller must be on the
// owning executor.
func (c *cell[T]) trySet(value T, err error) callbackList {
	if c.resolved() {
		return callbackList{}
	}
	if err == nil {
		c.value = value
	}
	c.err = err
	cbs := c.cbs
	c.cbs = callbackList{}
	close(c.done)
	return cbs
}

// add registers cb, running it immediately if the cell already resolved.
// Caller must be on the owning executor.
func (c *cell[T]) add(cb callback) callbackList {
	if c.resolved() {
		return cb()
	}
	c.cbs.append(cb)
	return callbackList{}
}

// Future is a read handle for a value of type T which will be delivered by
// some process which can fail. Futures are created through NewPromise,
// NewSuccess, NewFailure, Go, or one of the transformations in this package.
//
// Two handles refer to the same eventual result exactly when the pointers
// are equal.
type Future[T any] struct {
	exec Executor
	cell cell[T]
}

func newFuture[T any](e Executor) *Future[T] {
	if e == nil {
		panic("futures: nil Executor")
	}
	return &Future[T]{
		exec: e,
		cell: cell[T]{done: make(chan struct{})},
	}
}

// Executor returns the executor this future is bound to.
func (f *Future[T]) Executor() Executor {
	return f.exec
}

// IsDone returns true if the future has resolved. It does not block.
func (f *Future[T]) IsDone() bool {
	return f.cell.resolved()
}

// IsSuccess returns true if the future has resolved successfully.
// It returns false if the future failed, or has not resolved yet.
func (f *Future[T]) IsSuccess() bool {
	return f.IsDone() && f.cell.err == nil
}

// IsFailure returns true if the future has resolved with an error.
// It returns false if the future succeeded, or has not resolved yet.
func (f *Future[T]) IsFailure() bool {
	return f.IsDone() && f.cell.err != nil
}

// whenComplete is the registration primitive everything else funnels
// through. On the bound executor it registers cb directly and runs whatever
// is ready; from any other goroutine it submits the registration as a task,
// so cb still fires on the bound executor.
func (f *Future[T]) whenComplete(cb callback) {
	if f.exec.InContext() {
		f.cell.add(cb).run()
	} else {
		f.exec.Submit(func() {
			f.cell.add(cb).run()
		})
	}
}

// resolve is the counterpart of whenComplete for the write side.
func (f *Future[T]) resolve(value T, err error) {
	if f.exec.InContext() {
		f.cell.trySet(value, err).run()
	} else {
		f.exec.Submit(func() {
			f.cell.trySet(value, err).run()
		})
	}
}

// WhenSuccess runs fn with the value if the future succeeds. Observers are
// terminal: they cannot change the outcome. Use Map or Then to keep
// deriving.
func (f *Future[T]) WhenSuccess(fn func(T)) {
	f.whenComplete(func() callbackList {
		if f.cell.err == nil {
			fn(f.cell.value)
		}
		return callbackList{}
	})
}

// WhenFailure runs fn with the error if the future fails.
func (f *Future[T]) WhenFailure(fn func(error)) {
	f.whenComplete(func() callbackList {
		if f.cell.err != nil {
			fn(f.cell.err)
		}
		return callbackList{}
	})
}

// WhenComplete runs fn with the outcome however the future resolves.
// Exactly one of the value and the error is meaningful: the error is nil on
// success, and the value is the zero value on failure.
func (f *Future[T]) WhenComplete(fn func(T, error)) {
	f.whenComplete(func() callbackList {
		fn(f.cell.value, f.cell.err)
		return callbackList{}
	})
}

// Await blocks until the future resolves and returns the outcome. If ctx
// expires first, Await returns ctx.Err(); the future is unaffected and can
// be awaited again.
//
// Await must not be called while running on the future's own executor,
// since the goroutine it would wait for is the one calling it. Doing so
// panics instead of deadlocking.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	checkNotInContext(f.exec)
	if err := f.wait(ctx); err != nil {
		var zero T
		return zero, err
	}
	return f.cell.value, f.cell.err
}

func (f *Future[T]) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-f.cell.done:
		return nil
	}
}

func checkNotInContext(e Executor) {
	if e.InContext() {
		panic("futures: cannot block on a future from its own executor")
	}
}
