// Package resilience provides the retry and circuit breaker primitives
// that back flow.StepWithRetry and flow.StepWithBreaker. They are usable
// on their own for any fallible operation.
package resilience
