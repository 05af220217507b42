package futures

// HopTo returns a future, bound to e, carrying the same eventual outcome
// as f. If e is already f's executor, f itself is returned; otherwise the
// outcome is forwarded through a promise on e, costing one task submission
// at resolution time.
//
// Hopping moves where downstream callbacks run. State owned by one
// executor should only be touched by callbacks on futures bound to it;
// HopTo is how a result crosses that boundary.
func (f *Future[T]) HopTo(e Executor) *Future[T] {
	if e == f.exec {
		return f
	}
	p := NewPromise[T](e)
	f.Cascade(p)
	return p.Future()
}

// Cascade forwards f's eventual outcome into p. It is useful when the
// promise to fulfill already exists, rather than deriving yet another
// future from f.
func (f *Future[T]) Cascade(p *Promise[T]) {
	f.WhenComplete(func(x T, err error) {
		p.Complete(x, err)
	})
}

// CascadeFailure forwards only a failure of f into p. If f succeeds, p is
// left untouched, presumably for some other writer to resolve.
func CascadeFailure[T, U any](f *Future[T], p *Promise[U]) {
	f.WhenFailure(p.Fail)
}
