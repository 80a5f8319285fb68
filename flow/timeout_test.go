package flow

import (
	"context"
	stderrors "errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kbukum/flowkit/errors"
)

func TestStepWithTimeout_FastStepReturnsResult(t *testing.T) {
	p := StepWithTimeout(Start[int](), func(_ context.Context, n int) (int, error) {
		return n * 2, nil
	}, time.Second, "fast")

	out, err := p.Run(context.Background(), 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out != 10 {
		t.Errorf("expected 10, got %d", out)
	}
}

func TestStepWithTimeout_SlowStepTimesOut(t *testing.T) {
	timeout := 20 * time.Millisecond
	p := StepWithTimeout(Start[int](), func(_ context.Context, n int) (int, error) {
		time.Sleep(200 * time.Millisecond)
		return n, nil // would have succeeded, still discarded
	}, timeout, "slow")

	_, err := p.Run(context.Background(), 5)
	if !errors.IsTimeout(err) {
		t.Fatalf("expected TIMEOUT, got %v", err)
	}

	appErr, _ := errors.AsAppError(err)
	if appErr.Details[errors.DetailStep] != "slow" {
		t.Errorf("expected step detail 'slow', got %v", appErr.Details)
	}
	if appErr.Details[errors.DetailTimeout] != timeout {
		t.Errorf("expected timeout detail %s, got %v", timeout, appErr.Details)
	}
}

func TestStepWithTimeout_CooperativeStepSeesCancellation(t *testing.T) {
	var sawCancel atomic.Bool
	p := StepWithTimeout(Start[int](), func(ctx context.Context, n int) (int, error) {
		<-ctx.Done()
		sawCancel.Store(true)
		return 0, ctx.Err()
	}, 10*time.Millisecond)

	_, err := p.Run(context.Background(), 1)
	if !errors.IsTimeout(err) {
		t.Fatalf("expected TIMEOUT, got %v", err)
	}

	// Give the losing goroutine a moment to observe the deadline.
	time.Sleep(30 * time.Millisecond)
	if !sawCancel.Load() {
		t.Error("step context should be cancelled when the timer wins")
	}
}

func TestStepWithTimeout_StepErrorBeforeDeadline(t *testing.T) {
	boom := stderrors.New("boom")
	p := StepWithTimeout(Start[int](), func(_ context.Context, _ int) (int, error) {
		return 0, boom
	}, time.Second)

	_, err := p.Run(context.Background(), 1)
	if !stderrors.Is(err, boom) {
		t.Errorf("expected the step's own error, got %v", err)
	}
}

func TestStepWithTimeout_DispatchesNoHooks(t *testing.T) {
	p := StepWithTimeout(Start[int](), func(_ context.Context, _ int) (int, error) {
		time.Sleep(50 * time.Millisecond)
		return 0, nil
	}, 5*time.Millisecond, "slow").
		OnStepStart(func(name string) { t.Errorf("unexpected start hook %s", name) }).
		OnStepError(func(name string, err error) { t.Errorf("unexpected error hook %s: %v", name, err) })

	if _, err := p.Run(context.Background(), 1); !errors.IsTimeout(err) {
		t.Errorf("expected TIMEOUT, got %v", err)
	}
}
