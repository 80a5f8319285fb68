package meta

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kbukum/flowkit/errors"
)

// Container holds one primary value and a string-keyed side channel.
// The container owns its side channel exclusively; the value is freely
// replaceable by transforming steps.
type Container[T any] struct {
	id    string
	value T
	data  map[string]any
}

// New creates a container wrapping value with an empty side channel.
// Each container gets a unique ID for run correlation in logs.
func New[T any](value T) *Container[T] {
	return &Container[T]{
		id:    uuid.NewString(),
		value: value,
		data:  make(map[string]any),
	}
}

// ID returns the container's unique identifier.
func (c *Container[T]) ID() string { return c.id }

// Value returns the primary value.
func (c *Container[T]) Value() T { return c.value }

// SetValue replaces the primary value.
func (c *Container[T]) SetValue(value T) { c.value = value }

// Set upserts payload under key. It always succeeds.
func (c *Container[T]) Set(key string, payload any) {
	c.data[key] = payload
}

// Has reports whether key is present in the side channel.
func (c *Container[T]) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}

// Keys returns the side channel's keys in unspecified order.
func (c *Container[T]) Keys() []string {
	keys := make([]string, 0, len(c.data))
	for k := range c.data {
		keys = append(keys, k)
	}
	return keys
}

// Get retrieves a typed payload from the container's side channel.
// An absent key yields V's zero value with a nil error. A present key whose
// payload is not a V fails with a TYPE_MISMATCH error.
func Get[V any, T any](c *Container[T], key string) (V, error) {
	var zero V
	raw, ok := c.data[key]
	if !ok {
		return zero, nil
	}
	val, ok := raw.(V)
	if !ok {
		return zero, errors.TypeMismatch(key, fmt.Sprintf("%T", zero), fmt.Sprintf("%T", raw))
	}
	return val, nil
}
