// Package errors provides the structured error types raised by flowkit
// pipelines. Every engine-originated failure is an *AppError carrying a
// machine-readable code and inspectable details; errors returned by user
// step functions are never wrapped and pass through the engine verbatim,
// except for retry exhaustion, which wraps the last attempt's error as an
// inspectable cause.
package errors
