package flow

import (
	"context"
	"time"

	"github.com/kbukum/flowkit/logger"
)

// Step appends a plain transformation step. Before the step function runs,
// the start hook fires with the step's name; on success the success hook
// fires with (name, elapsed) and the result becomes the current value; on
// failure the error hook fires with (name, err) and the same error
// propagates, aborting the rest of the chain.
//
// The optional name overrides the derived default. Hooks are synchronous
// best-effort callbacks; the engine does not recover from a panic inside
// a hook.
func Step[S, A, B any](p *Pipeline[S, A], fn func(ctx context.Context, in A) (B, error), name ...string) *Pipeline[S, B] {
	sname := stepName(p.steps, name)
	prev := p.run

	return extend(p, func(ctx context.Context, in S, env *execEnv) (B, error) {
		var zero B
		cur, err := prev(ctx, in, env)
		if err != nil {
			return zero, err
		}

		if env.hooks.start != nil {
			env.hooks.start(sname)
		}

		started := time.Now()
		out, err := fn(ctx, cur)
		if err != nil {
			if env.log != nil {
				env.log.Error("step failed", logger.Fields(
					logger.FieldStep, sname,
					logger.FieldError, err.Error(),
				))
			}
			if env.hooks.failure != nil {
				env.hooks.failure(sname, err)
			}
			return zero, err
		}

		elapsed := time.Since(started)
		if env.log != nil {
			env.log.Debug("step completed", logger.Fields(
				logger.FieldStep, sname,
				logger.FieldDuration, elapsed.Milliseconds(),
			))
		}
		if env.hooks.success != nil {
			env.hooks.success(sname, elapsed)
		}
		return out, nil
	})
}
