package futures

// Then chains asynchronous work onto f: when f succeeds, fn runs with the
// value on f's executor, and the future it returns feeds the result. When f
// fails, fn never runs and the failure passes through.
//
// When fn returns a future bound to the same executor, its outcome is
// spliced directly into the result; a future from another executor costs
// one extra task submission at resolution time.
func Then[T, U any](f *Future[T], fn func(T) *Future[U]) *Future[U] {
	next := newFuture[U](f.exec)
	f.whenComplete(func() callbackList {
		if f.cell.err != nil {
			var zero U
			return next.cell.trySet(zero, f.cell.err)
		}
		inner := fn(f.cell.value)
		if inner.exec == f.exec {
			return inner.cell.add(func() callbackList {
				return next.cell.trySet(inner.cell.value, inner.cell.err)
			})
		}
		inner.Cascade(&Promise[U]{future: next})
		return callbackList{}
	})
	return next
}
