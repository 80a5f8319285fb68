package ctxflow

import (
	"context"

	"github.com/kbukum/flowkit/meta"
)

// Pipeline is an ordered chain of container steps over value type T. Like
// flow.Pipeline it is an immutable value: builder calls return new
// pipelines, never mutate the receiver.
type Pipeline[T any] struct {
	steps int
	run   func(ctx context.Context, c *meta.Container[T]) error
}

// Start returns an empty context pipeline over value type T.
func Start[T any]() *Pipeline[T] {
	return &Pipeline[T]{
		run: func(_ context.Context, _ *meta.Container[T]) error { return nil },
	}
}

// Len returns the number of steps appended so far.
func (p *Pipeline[T]) Len() int { return p.steps }

// Step appends an effect-only unit: fn receives the container and may
// mutate its side channel; the primary value is left alone. An error from
// fn aborts the remaining units and propagates unchanged.
func (p *Pipeline[T]) Step(fn func(ctx context.Context, c *meta.Container[T]) error) *Pipeline[T] {
	prev := p.run
	return &Pipeline[T]{
		steps: p.steps + 1,
		run: func(ctx context.Context, c *meta.Container[T]) error {
			if err := prev(ctx, c); err != nil {
				return err
			}
			return fn(ctx, c)
		},
	}
}

// Transform appends a value-replacing unit: fn computes a new value from
// the container, which replaces the container's current value. An error
// from fn aborts the remaining units and propagates unchanged.
func (p *Pipeline[T]) Transform(fn func(ctx context.Context, c *meta.Container[T]) (T, error)) *Pipeline[T] {
	prev := p.run
	return &Pipeline[T]{
		steps: p.steps + 1,
		run: func(ctx context.Context, c *meta.Container[T]) error {
			if err := prev(ctx, c); err != nil {
				return err
			}
			v, err := fn(ctx, c)
			if err != nil {
				return err
			}
			c.SetValue(v)
			return nil
		},
	}
}

// Run wraps input in a fresh container, folds the unit chain over it, and
// returns the container's final value. The container lives for exactly one
// run. The first failing unit aborts the rest and its error is returned
// as-is.
func (p *Pipeline[T]) Run(ctx context.Context, input T) (T, error) {
	c := meta.New(input)
	if err := p.run(ctx, c); err != nil {
		var zero T
		return zero, err
	}
	return c.Value(), nil
}
