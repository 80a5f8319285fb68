package flow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/flowkit/logger"
	"github.com/kbukum/flowkit/observability"
)

// hookSet holds at most one handler per hook kind.
type hookSet struct {
	start   func(name string)
	success func(name string, elapsed time.Duration)
	failure func(name string, err error)
}

// observe holds optional run observability settings.
type observe struct {
	log      *logger.Logger
	spanName string
}

// execEnv carries per-run state into the composed step closures. Hooks are
// resolved here, at execution time, so registrations made after steps were
// appended still apply to them.
type execEnv struct {
	hooks hookSet
	log   *logger.Logger
	runID string
}

// Pipeline is an ordered chain of steps from input type S to output type T.
// It is an immutable value: builder calls return new pipelines and never
// mutate the receiver, so a pipeline can be extended from any point and run
// concurrently without synchronization.
type Pipeline[S, T any] struct {
	steps int
	hooks hookSet
	obs   observe
	run   func(ctx context.Context, in S, env *execEnv) (T, error)
}

// Start returns an empty pipeline whose output type equals its input type.
func Start[T any]() *Pipeline[T, T] {
	return &Pipeline[T, T]{
		run: func(_ context.Context, in T, _ *execEnv) (T, error) {
			return in, nil
		},
	}
}

// extend derives a pipeline with one more step, carrying over hook and
// observability settings.
func extend[S, A, B any](p *Pipeline[S, A], run func(ctx context.Context, in S, env *execEnv) (B, error)) *Pipeline[S, B] {
	return &Pipeline[S, B]{
		steps: p.steps + 1,
		hooks: p.hooks,
		obs:   p.obs,
		run:   run,
	}
}

// defaultName derives a step name from the step count at append time.
// Branch sub-pipelines count from zero again, so identical default names
// can appear in different branches; pass explicit names to disambiguate.
func defaultName(n int) string {
	return fmt.Sprintf("step-%d", n)
}

// stepName picks the explicit name when given, the derived one otherwise.
func stepName(p int, name []string) string {
	if len(name) > 0 && name[0] != "" {
		return name[0]
	}
	return defaultName(p)
}

// Len returns the number of steps appended so far.
func (p *Pipeline[S, T]) Len() int { return p.steps }

// OnStepStart registers the start hook for plain steps. A pipeline holds a
// single handler per hook kind; registering replaces any prior one.
func (p *Pipeline[S, T]) OnStepStart(h func(name string)) *Pipeline[S, T] {
	q := *p
	q.hooks.start = h
	return &q
}

// OnStepSuccess registers the success hook for plain steps, called with the
// step name and the elapsed wall time of the step function. Replaces any
// prior registration.
func (p *Pipeline[S, T]) OnStepSuccess(h func(name string, elapsed time.Duration)) *Pipeline[S, T] {
	q := *p
	q.hooks.success = h
	return &q
}

// OnStepError registers the error hook for plain steps, called before the
// step's error propagates. Hooks are notifications, not recovery: the error
// continues to the caller unchanged. Replaces any prior registration.
func (p *Pipeline[S, T]) OnStepError(h func(name string, err error)) *Pipeline[S, T] {
	q := *p
	q.hooks.failure = h
	return &q
}

// WithLogger attaches a structured logger. Runs and plain step outcomes are
// logged with a per-run correlation ID, independent of any user hooks.
func (p *Pipeline[S, T]) WithLogger(log *logger.Logger) *Pipeline[S, T] {
	q := *p
	q.obs.log = log.WithComponent("flow")
	return &q
}

// WithTracing wraps Run in an OpenTelemetry span with the given name.
func (p *Pipeline[S, T]) WithTracing(name string) *Pipeline[S, T] {
	q := *p
	q.obs.spanName = name
	return &q
}

// Run folds the step chain left to right over input and returns the final
// value. The first step to fail aborts the remaining steps and its error is
// returned as-is. Run never mutates the pipeline; concurrent runs of the
// same pipeline are safe, though hook handlers are shared between them and
// may observe interleaved invocations.
func (p *Pipeline[S, T]) Run(ctx context.Context, input S) (T, error) {
	env := &execEnv{hooks: p.hooks, log: p.obs.log, runID: uuid.NewString()}
	if env.log != nil {
		env.log = env.log.WithFields(map[string]interface{}{logger.FieldRunID: env.runID})
	}

	if p.obs.spanName != "" {
		var span trace.Span
		ctx, span = observability.StartSpan(ctx, p.obs.spanName)
		defer span.End()
		observability.SetSpanAttribute(ctx, observability.AttrRunID, env.runID)
		observability.SetSpanAttribute(ctx, observability.AttrSteps, p.steps)
	}

	if env.log != nil {
		env.log.Debug("run started", logger.Fields("steps", p.steps))
	}

	started := time.Now()
	out, err := p.run(ctx, input, env)
	if err != nil {
		if p.obs.spanName != "" {
			observability.SetSpanError(ctx, err)
		}
		if env.log != nil {
			env.log.Error("run failed", logger.Fields(
				logger.FieldError, err.Error(),
				logger.FieldDuration, time.Since(started).Milliseconds(),
			))
		}
		return out, err
	}

	if env.log != nil {
		env.log.Debug("run finished", logger.Fields(
			logger.FieldDuration, time.Since(started).Milliseconds(),
		))
	}
	return out, nil
}
