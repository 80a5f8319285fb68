// Package flow provides a composable, type-safe pipeline builder. Callers
// assemble an ordered chain of transformation steps over a value whose type
// evolves along the chain, then execute the chain against an input.
//
// Pipelines are immutable values — every builder call returns a new
// pipeline sharing its predecessor's steps, so handles taken at different
// points of a chain never interfere and a pipeline may be run concurrently.
//
// Type-changing combinators are package-level functions (Go methods cannot
// introduce type parameters); type-preserving ones are methods:
//
//   - Step: plain transformation with start/success/error hook dispatch
//   - StepWithRetry: retry with a fixed delay, wrapping exhaustion
//   - StepWithTimeout: race against a timer, losing work is abandoned
//   - StepIf: conditional branch into a sub-pipeline built per execution
//   - Parallel: two-way fan-out over one snapshot, merged on joint success
//   - StepWithBreaker: route a step through a circuit breaker
//   - Validate / ValidateStruct: synchronous gates, value passes unchanged
//
// # Usage
//
//	p := flow.Start[int]()
//	doubled := flow.Step(p, func(_ context.Context, n int) (int, error) {
//	    return n * 2, nil
//	}, "double")
//	labeled := flow.Step(doubled, func(_ context.Context, n int) (string, error) {
//	    return fmt.Sprintf("result=%d", n), nil
//	})
//	out, err := labeled.Run(ctx, 5) // "result=10"
//
// Hooks observe plain steps only; retry, timeout, branch, parallel, breaker
// and validation steps never dispatch hooks. A hook registered after steps
// were appended still observes them: hooks are read when Run executes, not
// when steps are appended.
//
// Execution is a left fold. The first failing step aborts the rest and its
// error reaches the caller unchanged; retry exhaustion is the only place
// the engine wraps an error, and the last attempt's error stays reachable
// through errors.Unwrap.
package flow
