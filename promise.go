package futures

// Promise is the write half of a Future: the capability to resolve it.
// Values should be written to the Promise, and read from the Future.
// The zero value is not useful; create promises with NewPromise.
type Promise[T any] struct {
	future *Future[T]
}

// NewPromise returns a promise for a value of type T, bound to e.
// Keep the Promise on the producing side and hand the Future to consumers.
func NewPromise[T any](e Executor) *Promise[T] {
	p := &Promise[T]{future: newFuture[T](e)}
	watchPromise(p)
	return p
}

// Future returns the future this promise resolves.
func (p *Promise[T]) Future() *Future[T] {
	return p.future
}

// Succeed resolves the future with x. The resolution, and the callbacks it
// releases, run on the bound executor no matter which goroutine calls
// Succeed. After a future has resolved, further calls to Succeed and Fail
// do nothing.
func (p *Promise[T]) Succeed(x T) {
	p.future.resolve(x, nil)
}

// Fail resolves the future with err, which must not be nil.
func (p *Promise[T]) Fail(err error) {
	if err == nil {
		panic("futures: Fail with nil error")
	}
	var zero T
	p.future.resolve(zero, err)
}

// Complete resolves the future from a conventional Go return pair:
// Fail if err is non-nil, Succeed otherwise.
func (p *Promise[T]) Complete(x T, err error) {
	if err != nil {
		p.Fail(err)
	} else {
		p.Succeed(x)
	}
}

// Go runs fn in a new goroutine and returns a Future, bound to e, which
// resolves with fn's return.
func Go[T any](e Executor, fn func() (T, error)) *Future[T] {
	p := NewPromise[T](e)
	go func() {
		p.Complete(fn())
	}()
	return p.Future()
}
