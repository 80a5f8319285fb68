package errors

import (
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

func TestValidation(t *testing.T) {
	err := Validation("amount must be positive")

	if err.Code != ErrCodeValidation {
		t.Errorf("expected code %s, got %s", ErrCodeValidation, err.Code)
	}
	if err.Retryable {
		t.Error("validation errors must not be retryable")
	}
	if !strings.Contains(err.Error(), "amount must be positive") {
		t.Errorf("message not surfaced in Error(): %s", err.Error())
	}
}

func TestTimeout_CarriesStepAndDuration(t *testing.T) {
	err := Timeout("fetch", 50*time.Millisecond)

	if err.Code != ErrCodeTimeout {
		t.Errorf("expected code %s, got %s", ErrCodeTimeout, err.Code)
	}
	if got := err.Details[DetailStep]; got != "fetch" {
		t.Errorf("expected step detail 'fetch', got %v", got)
	}
	if got := err.Details[DetailTimeout]; got != 50*time.Millisecond {
		t.Errorf("expected timeout detail 50ms, got %v", got)
	}
	if !err.Retryable {
		t.Error("timeouts should be retryable")
	}
}

func TestRetryExhausted_PreservesCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := RetryExhausted(3, cause)

	if !stderrors.Is(err, cause) {
		t.Error("cause must be reachable via errors.Is")
	}
	if got := err.Details[DetailAttempts]; got != 3 {
		t.Errorf("expected attempts detail 3, got %v", got)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("cause not surfaced in Error(): %s", err.Error())
	}
}

func TestTypeMismatch(t *testing.T) {
	err := TypeMismatch("user", "string", "int")

	if !IsTypeMismatch(err) {
		t.Error("expected IsTypeMismatch to match")
	}
	if got := err.Details[DetailExpected]; got != "string" {
		t.Errorf("expected 'string' detail, got %v", got)
	}
	if got := err.Details[DetailActual]; got != "int" {
		t.Errorf("expected 'int' detail, got %v", got)
	}
}

func TestAsAppError_Wrapped(t *testing.T) {
	inner := Validation("bad input")
	wrapped := stderrors.Join(stderrors.New("outer"), inner)

	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to find the AppError")
	}
	if appErr.Code != ErrCodeValidation {
		t.Errorf("expected code %s, got %s", ErrCodeValidation, appErr.Code)
	}
}

func TestHasCode_NonAppError(t *testing.T) {
	if HasCode(stderrors.New("plain"), ErrCodeTimeout) {
		t.Error("plain errors must not match any code")
	}
	if IsAppError(nil) {
		t.Error("nil is not an AppError")
	}
}

func TestWithDetailAndCause(t *testing.T) {
	cause := stderrors.New("root")
	err := Validation("v").WithCause(cause).WithDetail("field", "name")

	if !stderrors.Is(err, cause) {
		t.Error("WithCause must make the cause unwrappable")
	}
	if err.Details["field"] != "name" {
		t.Errorf("expected detail to be set, got %v", err.Details)
	}
}
