package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// Detail keys used by the constructors below.
const (
	DetailStep     = "step"
	DetailTimeout  = "timeout"
	DetailAttempts = "attempts"
	DetailKey      = "key"
	DetailExpected = "expected"
	DetailActual   = "actual"
)

// AppError is the unified flowkit error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// --- Constructors ---

// Validation creates a new AppError for a failed validation gate.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeValidation, Message: message,
		Retryable: IsRetryableCode(ErrCodeValidation),
	}
}

// Timeout creates a new AppError for a step that exceeded its time budget.
func Timeout(step string, timeout time.Duration) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: fmt.Sprintf("step %q timed out after %s", step, timeout),
		Retryable: IsRetryableCode(ErrCodeTimeout),
		Details:   map[string]any{DetailStep: step, DetailTimeout: timeout},
	}
}

// RetryExhausted creates a new AppError for a step whose attempts are all spent.
// The last attempt's error is preserved as the inspectable cause.
func RetryExhausted(attempts int, cause error) *AppError {
	return &AppError{
		Code: ErrCodeRetryExhausted, Message: fmt.Sprintf("step failed after %d attempts", attempts),
		Retryable: IsRetryableCode(ErrCodeRetryExhausted),
		Details:   map[string]any{DetailAttempts: attempts},
		Cause:     cause,
	}
}

// TypeMismatch creates a new AppError for a metadata payload read as the wrong type.
func TypeMismatch(key, expected, actual string) *AppError {
	return &AppError{
		Code: ErrCodeTypeMismatch, Message: fmt.Sprintf("metadata key %q holds %s, not %s", key, actual, expected),
		Retryable: IsRetryableCode(ErrCodeTypeMismatch),
		Details:   map[string]any{DetailKey: key, DetailExpected: expected, DetailActual: actual},
	}
}

// BreakerOpen creates a new AppError for a step rejected by an open circuit breaker.
func BreakerOpen(step string) *AppError {
	return &AppError{
		Code: ErrCodeBreakerOpen, Message: fmt.Sprintf("step %q rejected: circuit breaker is open", step),
		Retryable: IsRetryableCode(ErrCodeBreakerOpen),
		Details:   map[string]any{DetailStep: step},
	}
}

// --- Inspection helpers ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return HasCode(err, ErrCodeValidation) }

// IsTimeout reports whether err is a step timeout.
func IsTimeout(err error) bool { return HasCode(err, ErrCodeTimeout) }

// IsRetryExhausted reports whether err is a retry exhaustion.
func IsRetryExhausted(err error) bool { return HasCode(err, ErrCodeRetryExhausted) }

// IsTypeMismatch reports whether err is a metadata type mismatch.
func IsTypeMismatch(err error) bool { return HasCode(err, ErrCodeTypeMismatch) }

// IsBreakerOpen reports whether err is a circuit breaker rejection.
func IsBreakerOpen(err error) bool { return HasCode(err, ErrCodeBreakerOpen) }
