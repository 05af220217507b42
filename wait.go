package futures

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type waiter interface {
	wait(ctx context.Context) error
}

// Await2 blocks until both futures resolve, then returns both values, or
// the first error among context expiry and stored failures. Like Await, it
// must not be called on either future's own executor.
func Await2[A, B any](ctx context.Context, af *Future[A], bf *Future[B]) (retA A, retB B, _ error) {
	checkNotInContext(af.exec)
	checkNotInContext(bf.exec)
	ws := [...]waiter{af, bf}
	if err := waitAll(ctx, ws[:]); err != nil {
		return retA, retB, err
	}
	a, err := af.Await(ctx)
	if err != nil {
		return retA, retB, err
	}
	b, err := bf.Await(ctx)
	if err != nil {
		return retA, retB, err
	}
	return a, b, nil
}

// Await3 blocks until all three futures resolve, then returns all three
// values, or the first error among context expiry and stored failures.
func Await3[A, B, C any](ctx context.Context, af *Future[A], bf *Future[B], cf *Future[C]) (retA A, retB B, retC C, _ error) {
	checkNotInContext(af.exec)
	checkNotInContext(bf.exec)
	checkNotInContext(cf.exec)
	ws := [...]waiter{af, bf, cf}
	if err := waitAll(ctx, ws[:]); err != nil {
		return retA, retB, retC, err
	}
	a, err := af.Await(ctx)
	if err != nil {
		return retA, retB, retC, err
	}
	b, err := bf.Await(ctx)
	if err != nil {
		return retA, retB, retC, err
	}
	c, err := cf.Await(ctx)
	if err != nil {
		return retA, retB, retC, err
	}
	return a, b, c, nil
}

func waitAll(ctx context.Context, xs []waiter) error {
	eg, ctx := errgroup.WithContext(ctx)
	for i := range xs {
		i := i
		eg.Go(func() error {
			return xs[i].wait(ctx)
		})
	}
	return eg.Wait()
}
