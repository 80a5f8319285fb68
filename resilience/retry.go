package resilience

import (
	"context"
	"time"
)

// RetryConfig configures retry behavior.
type RetryConfig struct {
	// Attempts is the maximum number of attempts (including the first).
	Attempts int
	// Delay is the fixed pause between a failed attempt and the next one.
	// Zero means retry immediately.
	Delay time.Duration
	// OnRetry is called after a failed attempt, before the next one starts.
	OnRetry func(attempt int, err error)
}

// DefaultAttempts is used when RetryConfig.Attempts is not positive.
const DefaultAttempts = 3

// Retry executes fn up to cfg.Attempts times, pausing cfg.Delay between
// failed attempts. The pause only happens when another attempt remains.
// It returns fn's first successful result, the number of attempts made,
// and the last error when every attempt failed. The context is checked
// before each attempt and during the delay wait.
func Retry[T any](ctx context.Context, cfg RetryConfig, fn func() (T, error)) (T, int, error) {
	var zero T
	var lastErr error

	if cfg.Attempts <= 0 {
		cfg.Attempts = DefaultAttempts
	}

	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		select {
		case <-ctx.Done():
			return zero, attempt - 1, ctx.Err()
		default:
		}

		result, err := fn()
		if err == nil {
			return result, attempt, nil
		}
		lastErr = err

		if attempt == cfg.Attempts {
			break
		}

		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, err)
		}

		if cfg.Delay > 0 {
			timer := time.NewTimer(cfg.Delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return zero, attempt, ctx.Err()
			case <-timer.C:
			}
		}
	}

	return zero, cfg.Attempts, lastErr
}

// RetryFunc executes a function that returns only an error.
func RetryFunc(ctx context.Context, cfg RetryConfig, fn func() error) (int, error) {
	_, attempts, err := Retry(ctx, cfg, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return attempts, err
}
