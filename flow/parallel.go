package flow

import (
	"context"
)

// Parallel appends a two-way fan-out step. fn1 and fn2 launch concurrently
// against a single snapshot of the current value and both are awaited. On
// joint success, merge combines the two outcomes into the new current
// value. When a branch fails, the first failure observed (in completion
// order) surfaces and a later failure from the other branch is discarded.
// Fan-out steps dispatch no hooks.
func Parallel[S, A, B1, B2, C any](
	p *Pipeline[S, A],
	fn1 func(ctx context.Context, in A) (B1, error),
	fn2 func(ctx context.Context, in A) (B2, error),
	merge func(B1, B2) C,
) *Pipeline[S, C] {
	prev := p.run

	return extend(p, func(ctx context.Context, in S, env *execEnv) (C, error) {
		var zero C
		cur, err := prev(ctx, in, env)
		if err != nil {
			return zero, err
		}

		var out1 B1
		var out2 B2
		errc := make(chan error, 2)

		go func() {
			v, err := fn1(ctx, cur)
			out1 = v
			errc <- err
		}()
		go func() {
			v, err := fn2(ctx, cur)
			out2 = v
			errc <- err
		}()

		// Both branches must settle; the first observed failure wins.
		var firstErr error
		for i := 0; i < 2; i++ {
			if err := <-errc; err != nil && firstErr == nil {
				firstErr = err
			}
		}
		if firstErr != nil {
			return zero, firstErr
		}
		return merge(out1, out2), nil
	})
}
