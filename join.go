package futures

// Pair holds the two values produced by And.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// And joins a and b into a future which succeeds with both values once
// both succeed, or fails with the first failure its executor observes,
// ignoring the other side's outcome from then on.
//
// The result is bound to a's executor and the join runs entirely there;
// b is hopped over first, so the join's intermediate state is never
// touched from two executors.
func And[T, U any](a *Future[T], b *Future[U]) *Future[Pair[T, U]] {
	next := newFuture[Pair[T, U]](a.exec)
	var (
		left      T
		right     U
		haveLeft  bool
		haveRight bool
	)
	a.whenComplete(func() callbackList {
		if a.cell.err != nil {
			return next.cell.trySet(Pair[T, U]{}, a.cell.err)
		}
		if haveRight {
			return next.cell.trySet(Pair[T, U]{Left: a.cell.value, Right: right}, nil)
		}
		left, haveLeft = a.cell.value, true
		return callbackList{}
	})
	hopped := b.HopTo(a.exec)
	hopped.whenComplete(func() callbackList {
		if hopped.cell.err != nil {
			return next.cell.trySet(Pair[T, U]{}, hopped.cell.err)
		}
		if haveLeft {
			return next.cell.trySet(Pair[T, U]{Left: left, Right: hopped.cell.value}, nil)
		}
		right, haveRight = hopped.cell.value, true
		return callbackList{}
	})
	return next
}

// AndValue joins a with a value which is already known, as if joining with
// a future that had already succeeded with x.
func AndValue[T, U any](a *Future[T], x U) *Future[Pair[T, U]] {
	return And(a, NewSuccess(a.exec, x))
}

// AndAll resolves once every future in futs has succeeded, discarding the
// values, or fails with the first failure observed on e. An empty input
// yields an already-succeeded future.
func AndAll[T any](e Executor, futs []*Future[T]) *Future[struct{}] {
	acc := NewSuccess(e, struct{}{})
	for _, f := range futs {
		acc = Map(And(acc, f), func(Pair[struct{}, T]) struct{} {
			return struct{}{}
		})
	}
	return acc
}
