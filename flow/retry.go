package flow

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/kbukum/flowkit/config"
	"github.com/kbukum/flowkit/errors"
	"github.com/kbukum/flowkit/resilience"
)

// RetryConfig configures a retrying step.
type RetryConfig struct {
	// Attempts is the maximum number of attempts, including the first.
	// Zero or negative means 3.
	Attempts int
	// Delay is the pause between a failed attempt and the next one. The
	// pause only happens when another attempt remains. Zero retries
	// immediately.
	Delay time.Duration
}

// Defaults carries engine-wide step defaults derived from configuration.
type Defaults struct {
	Retry   RetryConfig
	Timeout time.Duration
}

// DefaultsFrom derives step defaults from loaded engine configuration.
func DefaultsFrom(cfg config.EngineConfig) Defaults {
	cfg.ApplyDefaults()
	return Defaults{
		Retry:   RetryConfig{Attempts: cfg.RetryAttempts, Delay: cfg.RetryDelay},
		Timeout: cfg.StepTimeout,
	}
}

// StepWithRetry appends a retrying step: fn is attempted up to cfg.Attempts
// times, pausing cfg.Delay between failed attempts. When every attempt
// fails, the step fails with a RETRY_EXHAUSTED error carrying the attempt
// count; the last attempt's error stays reachable through errors.Unwrap.
//
// Retrying steps dispatch no hooks — hook observation is exclusive to
// plain steps. Context cancellation aborts between attempts and is
// propagated unwrapped.
func StepWithRetry[S, A, B any](p *Pipeline[S, A], fn func(ctx context.Context, in A) (B, error), cfg RetryConfig) *Pipeline[S, B] {
	prev := p.run

	return extend(p, func(ctx context.Context, in S, env *execEnv) (B, error) {
		var zero B
		cur, err := prev(ctx, in, env)
		if err != nil {
			return zero, err
		}

		out, attempts, err := resilience.Retry(ctx, resilience.RetryConfig{
			Attempts: cfg.Attempts,
			Delay:    cfg.Delay,
		}, func() (B, error) {
			return fn(ctx, cur)
		})
		if err != nil {
			if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
				return zero, err
			}
			return zero, errors.RetryExhausted(attempts, err)
		}
		return out, nil
	})
}
