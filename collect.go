package futures

// Collect gathers the values of futs into one future, bound to e, which
// succeeds with a slice in input order once every input has succeeded, or
// fails with the first failure observed on e. The inputs may be bound to
// any mix of executors; assembly happens on e.
func Collect[T any](e Executor, futs []*Future[T]) *Future[[]T] {
	if len(futs) == 0 {
		return NewSuccess(e, []T{})
	}
	next := newFuture[[]T](e)
	out := make([]T, len(futs))
	remaining := len(futs)
	for i, f := range futs {
		i := i
		hopped := f.HopTo(e)
		hopped.whenComplete(func() callbackList {
			if hopped.cell.err != nil {
				return next.cell.trySet(nil, hopped.cell.err)
			}
			out[i] = hopped.cell.value
			remaining--
			if remaining == 0 {
				return next.cell.trySet(out, nil)
			}
			return callbackList{}
		})
	}
	return next
}
