package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Execution errors (retryable)
const (
	// ErrCodeTimeout indicates a step exceeded its wall-clock budget.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeRetryExhausted indicates a step failed on every permitted attempt.
	ErrCodeRetryExhausted ErrorCode = "RETRY_EXHAUSTED"
	// ErrCodeBreakerOpen indicates a step was rejected by an open circuit breaker.
	ErrCodeBreakerOpen ErrorCode = "BREAKER_OPEN"
)

// Data errors
const (
	// ErrCodeValidation indicates a validation gate rejected the current value.
	ErrCodeValidation ErrorCode = "VALIDATION_FAILED"
	// ErrCodeTypeMismatch indicates a metadata payload was read as the wrong type.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTimeout:        true,
	ErrCodeBreakerOpen:    true,
	ErrCodeRetryExhausted: false,
	ErrCodeValidation:     false,
	ErrCodeTypeMismatch:   false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
