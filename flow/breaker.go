package flow

import (
	"context"
	stderrors "errors"

	"github.com/kbukum/flowkit/errors"
	"github.com/kbukum/flowkit/resilience"
)

// StepWithBreaker appends a step routed through a circuit breaker. While
// the breaker is closed the step behaves like a plain unhooked step and its
// failures count toward opening the circuit. Once open, execution fails
// fast with a BREAKER_OPEN error without invoking fn until the breaker's
// reset timeout lets a probe through. The same breaker may be shared
// between steps and pipelines. Breaker steps dispatch no hooks.
func StepWithBreaker[S, A, B any](p *Pipeline[S, A], fn func(ctx context.Context, in A) (B, error), cb *resilience.CircuitBreaker, name ...string) *Pipeline[S, B] {
	sname := stepName(p.steps, name)
	prev := p.run

	return extend(p, func(ctx context.Context, in S, env *execEnv) (B, error) {
		var zero B
		cur, err := prev(ctx, in, env)
		if err != nil {
			return zero, err
		}

		var out B
		err = cb.Execute(func() error {
			v, err := fn(ctx, cur)
			if err != nil {
				return err
			}
			out = v
			return nil
		})
		if stderrors.Is(err, resilience.ErrCircuitOpen) {
			return zero, errors.BreakerOpen(sname).WithCause(err)
		}
		if err != nil {
			return zero, err
		}
		return out, nil
	})
}
