// Package observability provides OpenTelemetry tracing for pipeline runs:
// a tracer provider initializer with an OTLP/HTTP exporter, and small span
// helpers used by flow.WithTracing.
package observability
