package flow

import (
	"context"
	"time"

	"github.com/kbukum/flowkit/errors"
	"github.com/kbukum/flowkit/logger"
)

// StepWithTimeout appends a step raced against a timer. fn runs with a
// context that expires after timeout, so cooperative functions can stop
// early. If the timer wins, the step fails with a TIMEOUT error carrying
// the step name and budget; a function that ignores its context keeps
// running in the background with no observer, and its eventual outcome is
// discarded. Timed steps dispatch no hooks.
func StepWithTimeout[S, A, B any](p *Pipeline[S, A], fn func(ctx context.Context, in A) (B, error), timeout time.Duration, name ...string) *Pipeline[S, B] {
	sname := stepName(p.steps, name)
	prev := p.run

	return extend(p, func(ctx context.Context, in S, env *execEnv) (B, error) {
		var zero B
		cur, err := prev(ctx, in, env)
		if err != nil {
			return zero, err
		}

		fnCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		type outcome struct {
			val B
			err error
		}
		// Buffered so the losing goroutine can always deliver and exit.
		done := make(chan outcome, 1)
		go func() {
			v, err := fn(fnCtx, cur)
			done <- outcome{val: v, err: err}
		}()

		timer := time.NewTimer(timeout)
		defer timer.Stop()

		select {
		case o := <-done:
			return o.val, o.err
		case <-timer.C:
			if env.log != nil {
				env.log.Warn("step timed out", logger.Fields(
					logger.FieldStep, sname,
					logger.FieldDuration, timeout.Milliseconds(),
				))
			}
			return zero, errors.Timeout(sname, timeout)
		}
	})
}
