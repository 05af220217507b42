package futures

// NewSuccess returns a future, bound to e, which has already succeeded
// with x. No task is submitted; IsDone is true immediately.
func NewSuccess[T any](e Executor, x T) *Future[T] {
	f := newFuture[T](e)
	f.cell.value = x
	close(f.cell.done)
	return f
}

// NewFailure returns a future, bound to e, which has already failed with
// err, which must not be nil.
func NewFailure[T any](e Executor, err error) *Future[T] {
	if err == nil {
		panic("futures: NewFailure with nil error")
	}
	f := newFuture[T](e)
	f.cell.err = err
	close(f.cell.done)
	return f
}
