package futures

// Map derives a future by applying fn to the success value. A failure
// passes through without invoking fn. fn runs on f's executor.
func Map[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	next := newFuture[U](f.exec)
	f.whenComplete(func() callbackList {
		if f.cell.err != nil {
			var zero U
			return next.cell.trySet(zero, f.cell.err)
		}
		return next.cell.trySet(fn(f.cell.value), nil)
	})
	return next
}

// TryMap is Map for transformations which can fail: a non-nil error from
// fn fails the derived future. An incoming failure still passes through
// without invoking fn.
func TryMap[T, U any](f *Future[T], fn func(T) (U, error)) *Future[U] {
	next := newFuture[U](f.exec)
	f.whenComplete(func() callbackList {
		if f.cell.err != nil {
			var zero U
			return next.cell.trySet(zero, f.cell.err)
		}
		return next.cell.trySet(fn(f.cell.value))
	})
	return next
}
