package listops

import (
	"context"

	"github.com/utkarsh5026/iterpar/parallel"
)

// NonEmpty is a slice known to hold at least one element.
type NonEmpty[T any] struct {
	values []T
}

// NewNonEmpty wraps values, failing with ErrEmptyInput if there are none.
// The slice is not copied.
func NewNonEmpty[T any](values []T) (NonEmpty[T], error) {
	if len(values) == 0 {
		return NonEmpty[T]{}, ErrEmptyInput
	}
	return NonEmpty[T]{values: values}, nil
}

// Values returns the wrapped slice.
func (n NonEmpty[T]) Values() []T { return n.values }

// Len returns the number of elements.
func (n NonEmpty[T]) Len() int { return len(n.values) }

// MaximumOf is Maximum over a slice already known to be non-empty.
func MaximumOf[T any](
	ctx context.Context,
	ex parallel.Executor,
	threads int,
	values NonEmpty[T],
	cmp func(a, b T) int,
) (T, error) {
	return Maximum(ctx, ex, threads, values.values, cmp)
}

// MinimumOf is Minimum over a slice already known to be non-empty.
func MinimumOf[T any](
	ctx context.Context,
	ex parallel.Executor,
	threads int,
	values NonEmpty[T],
	cmp func(a, b T) int,
) (T, error) {
	return Minimum(ctx, ex, threads, values.values, cmp)
}
