package flow

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/kbukum/flowkit/errors"
	"github.com/kbukum/flowkit/resilience"
)

func TestStepWithBreaker_ClosedPassesThrough(t *testing.T) {
	cb := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{MaxFailures: 3, ResetTimeout: time.Hour})
	p := StepWithBreaker(Start[int](), double, cb)

	out, err := p.Run(context.Background(), 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out != 10 {
		t.Errorf("expected 10, got %d", out)
	}
}

func TestStepWithBreaker_UserErrorPassesUnwrapped(t *testing.T) {
	boom := stderrors.New("boom")
	cb := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{MaxFailures: 10, ResetTimeout: time.Hour})
	p := StepWithBreaker(Start[int](), func(_ context.Context, _ int) (int, error) {
		return 0, boom
	}, cb)

	_, err := p.Run(context.Background(), 1)
	if !stderrors.Is(err, boom) {
		t.Errorf("expected the step's own error, got %v", err)
	}
	if errors.IsBreakerOpen(err) {
		t.Error("a closed breaker must not mask the step error")
	}
}

func TestStepWithBreaker_OpenFailsFast(t *testing.T) {
	cb := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{MaxFailures: 2, ResetTimeout: time.Hour})
	calls := 0
	p := StepWithBreaker(Start[int](), func(_ context.Context, _ int) (int, error) {
		calls++
		return 0, stderrors.New("down")
	}, cb, "remote")

	// Two failing runs open the breaker.
	_, _ = p.Run(context.Background(), 1)
	_, _ = p.Run(context.Background(), 1)

	_, err := p.Run(context.Background(), 1)
	if !errors.IsBreakerOpen(err) {
		t.Fatalf("expected BREAKER_OPEN, got %v", err)
	}
	if calls != 2 {
		t.Errorf("open breaker must not invoke the step, got %d calls", calls)
	}

	appErr, _ := errors.AsAppError(err)
	if appErr.Details[errors.DetailStep] != "remote" {
		t.Errorf("expected step detail 'remote', got %v", appErr.Details)
	}
	if !stderrors.Is(err, resilience.ErrCircuitOpen) {
		t.Error("expected the breaker sentinel as cause")
	}
}

func TestStepWithBreaker_SharedAcrossPipelines(t *testing.T) {
	cb := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{MaxFailures: 1, ResetTimeout: time.Hour})

	failing := StepWithBreaker(Start[int](), func(_ context.Context, _ int) (int, error) {
		return 0, stderrors.New("down")
	}, cb)
	_, _ = failing.Run(context.Background(), 1)

	healthy := StepWithBreaker(Start[int](), double, cb)
	_, err := healthy.Run(context.Background(), 1)
	if !errors.IsBreakerOpen(err) {
		t.Errorf("expected shared breaker state to fail fast, got %v", err)
	}
}
