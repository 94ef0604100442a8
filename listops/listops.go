package listops

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/utkarsh5026/iterpar/parallel"
)

// ErrEmptyInput is returned by Maximum and Minimum for an empty slice.
var ErrEmptyInput = parallel.ErrEmptyInput

// Map applies f to every element and returns the results in input order.
func Map[T, R any](
	ctx context.Context,
	ex parallel.Executor,
	threads int,
	values []T,
	f func(T) R,
) ([]R, error) {
	return parallel.Reduce(ctx, ex, threads, values,
		func(chunk []T) []R {
			return lo.Map(chunk, func(v T, _ int) R { return f(v) })
		},
		parallel.SliceConcat[R](),
	)
}

// Filter returns the elements satisfying keep, in input order.
func Filter[T any](
	ctx context.Context,
	ex parallel.Executor,
	threads int,
	values []T,
	keep func(T) bool,
) ([]T, error) {
	return parallel.Reduce(ctx, ex, threads, values,
		func(chunk []T) []T {
			return lo.Filter(chunk, func(v T, _ int) bool { return keep(v) })
		},
		parallel.SliceConcat[T](),
	)
}

// Concat joins the default string form of every element with no separator.
func Concat[T any](
	ctx context.Context,
	ex parallel.Executor,
	threads int,
	values []T,
) (string, error) {
	return parallel.Reduce(ctx, ex, threads, values,
		func(chunk []T) string {
			var sb strings.Builder
			for _, v := range chunk {
				sb.WriteString(fmt.Sprint(v))
			}
			return sb.String()
		},
		parallel.StringConcat(),
	)
}

// All reports whether every element satisfies pred. It is true for an
// empty slice.
func All[T any](
	ctx context.Context,
	ex parallel.Executor,
	threads int,
	values []T,
	pred func(T) bool,
) (bool, error) {
	return parallel.Reduce(ctx, ex, threads, values,
		func(chunk []T) bool {
			return lo.EveryBy(chunk, pred)
		},
		parallel.BoolAnd(),
	)
}

// Any reports whether some element satisfies pred. It is false for an
// empty slice.
func Any[T any](
	ctx context.Context,
	ex parallel.Executor,
	threads int,
	values []T,
	pred func(T) bool,
) (bool, error) {
	all, err := All(ctx, ex, threads, values, func(v T) bool { return !pred(v) })
	if err != nil {
		return false, err
	}
	return !all, nil
}

// Count returns the number of elements satisfying pred.
func Count[T any](
	ctx context.Context,
	ex parallel.Executor,
	threads int,
	values []T,
	pred func(T) bool,
) (int, error) {
	return parallel.Reduce(ctx, ex, threads, values,
		func(chunk []T) int {
			return lo.CountBy(chunk, pred)
		},
		parallel.Sum[int](),
	)
}

// Maximum returns the greatest element under cmp, which reports a negative
// number when a < b, zero when equal and a positive number otherwise.
// Among equal greatest elements the left-most one is returned.
func Maximum[T any](
	ctx context.Context,
	ex parallel.Executor,
	threads int,
	values []T,
	cmp func(a, b T) int,
) (T, error) {
	pick := func(a, b T) T {
		if cmp(a, b) < 0 {
			return b
		}
		return a
	}

	return parallel.Reduce(ctx, ex, threads, values,
		func(chunk []T) T {
			return lo.Reduce(chunk[1:], func(acc T, v T, _ int) T {
				return pick(acc, v)
			}, chunk[0])
		},
		parallel.First(pick),
	)
}

// Minimum returns the least element under cmp. Among equal least elements
// the left-most one is returned.
func Minimum[T any](
	ctx context.Context,
	ex parallel.Executor,
	threads int,
	values []T,
	cmp func(a, b T) int,
) (T, error) {
	return Maximum(ctx, ex, threads, values, func(a, b T) int { return cmp(b, a) })
}
