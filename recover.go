package futures

// Recover derives a future which cannot fail: a failure is replaced by
// fn's value, and a success passes through. fn runs on f's executor.
func (f *Future[T]) Recover(fn func(error) T) *Future[T] {
	next := newFuture[T](f.exec)
	f.whenComplete(func() callbackList {
		if f.cell.err == nil {
			return next.cell.trySet(f.cell.value, nil)
		}
		return next.cell.trySet(fn(f.cell.err), nil)
	})
	return next
}

// Catch intercepts a failure with a recovery which can itself fail: fn
// either produces a replacement value or a replacement error. A success
// passes through without invoking fn.
func (f *Future[T]) Catch(fn func(error) (T, error)) *Future[T] {
	next := newFuture[T](f.exec)
	f.whenComplete(func() callbackList {
		if f.cell.err == nil {
			return next.cell.trySet(f.cell.value, nil)
		}
		return next.cell.trySet(fn(f.cell.err))
	})
	return next
}

// CatchWith intercepts a failure with asynchronous recovery work: fn
// returns a future whose outcome replaces the failure. A success passes
// through without invoking fn. The executor splicing rules of Then apply
// to the returned future.
func (f *Future[T]) CatchWith(fn func(error) *Future[T]) *Future[T] {
	next := newFuture[T](f.exec)
	f.whenComplete(func() callbackList {
		if f.cell.err == nil {
			return next.cell.trySet(f.cell.value, nil)
		}
		inner := fn(f.cell.err)
		if inner.exec == f.exec {
			return inner.cell.add(func() callbackList {
				return next.cell.trySet(inner.cell.value, inner.cell.err)
			})
		}
		inner.Cascade(&Promise[T]{future: next})
		return callbackList{}
	})
	return next
}
