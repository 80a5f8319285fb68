package flow

import (
	"context"

	"github.com/kbukum/flowkit/errors"
	"github.com/kbukum/flowkit/validation"
)

// DefaultValidationMessage is used when Validate is given an empty message.
const DefaultValidationMessage = "Validation failed."

// Validate appends a synchronous gate. When pred rejects the current value
// the pipeline fails with a VALIDATION_FAILED error carrying msg (or
// DefaultValidationMessage when msg is empty) and no later step runs;
// otherwise the value passes through unchanged. Gates dispatch no hooks.
func (p *Pipeline[S, T]) Validate(pred func(T) bool, msg string) *Pipeline[S, T] {
	if msg == "" {
		msg = DefaultValidationMessage
	}
	prev := p.run

	return extend(p, func(ctx context.Context, in S, env *execEnv) (T, error) {
		cur, err := prev(ctx, in, env)
		if err != nil {
			return cur, err
		}
		if !pred(cur) {
			var zero T
			return zero, errors.Validation(msg)
		}
		return cur, nil
	})
}

// ValidateStruct appends a gate that checks the current value against its
// `validate` struct tags. A failing value aborts the run with a
// VALIDATION_FAILED error aggregating every failing field; a passing value
// flows through unchanged.
func (p *Pipeline[S, T]) ValidateStruct() *Pipeline[S, T] {
	prev := p.run

	return extend(p, func(ctx context.Context, in S, env *execEnv) (T, error) {
		cur, err := prev(ctx, in, env)
		if err != nil {
			return cur, err
		}
		if err := validation.Struct(cur); err != nil {
			var zero T
			return zero, err
		}
		return cur, nil
	})
}
