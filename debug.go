//go:build !futures_debug

package futures

// watchPromise is a hook for the futures_debug build tag.
// In normal builds it does nothing and costs nothing.
func watchPromise[T any](p *Promise[T]) {}
