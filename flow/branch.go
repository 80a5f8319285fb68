package flow

import (
	"context"
)

// Builder constructs a branch sub-pipeline from a fresh empty pipeline
// scoped to the current value's type.
type Builder[A, B any] func(*Pipeline[A, A]) *Pipeline[A, B]

// StepIf appends a branching step. At execution time cond is evaluated
// synchronously on the current value; the matching builder then receives a
// fresh empty pipeline and the sub-pipeline it returns is executed fully
// against the current value, whose result becomes the new current value.
//
// The sub-pipeline is rebuilt on every execution, never cached, and starts
// with empty hook slots and a step count of zero — its derived step names
// restart at step-0.
func StepIf[S, A, B any](p *Pipeline[S, A], cond func(A) bool, whenTrue, whenFalse Builder[A, B]) *Pipeline[S, B] {
	prev := p.run

	return extend(p, func(ctx context.Context, in S, env *execEnv) (B, error) {
		var zero B
		cur, err := prev(ctx, in, env)
		if err != nil {
			return zero, err
		}

		builder := whenFalse
		if cond(cur) {
			builder = whenTrue
		}
		return builder(Start[A]()).Run(ctx, cur)
	})
}
