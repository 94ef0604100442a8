package parallel

import (
	"context"
	"fmt"

	"github.com/utkarsh5026/iterpar/pool"
)

// ErrInvalidThreadCount is returned for a non-positive thread count.
var ErrInvalidThreadCount = pool.ErrInvalidThreadCount

// MapChunks partitions values into at most threads chunks, applies chunk to
// each on ex and returns the per-chunk results in chunk order.
//
// chunk receives a sub-slice whose capacity ends at the chunk boundary, so
// appending to it never writes into a neighbouring chunk.
func MapChunks[T, R any](
	ctx context.Context,
	ex Executor,
	threads int,
	values []T,
	chunk func([]T) R,
) ([]R, error) {
	if threads <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidThreadCount, threads)
	}

	parts := Partitions(len(values), threads)
	out := make([]R, len(parts))
	tasks := make([]pool.Task, len(parts))
	for i, part := range parts {
		tasks[i] = func() error {
			out[i] = chunk(values[part.Start:part.End:part.End])
			return nil
		}
	}

	if len(tasks) == 0 {
		return out, nil
	}
	if err := ex.Run(ctx, tasks); err != nil {
		return nil, err
	}
	return out, nil
}

// Reduce computes chunk over every partition of values on ex and folds the
// partial results left to right with m.
//
// An empty input yields m's identity, or ErrEmptyInput if it has none.
// A failing chunk fails the whole call; nothing is combined in that case.
//
// Example:
//
//	total, err := parallel.Reduce(ctx, parallel.Threads(), 4, nums,
//	    func(chunk []int) int {
//	        s := 0
//	        for _, n := range chunk {
//	            s += n
//	        }
//	        return s
//	    },
//	    parallel.Sum[int](),
//	)
func Reduce[T, R any](
	ctx context.Context,
	ex Executor,
	threads int,
	values []T,
	chunk func([]T) R,
	m Monoid[R],
) (R, error) {
	var zero R
	if threads <= 0 {
		return zero, fmt.Errorf("%w: got %d", ErrInvalidThreadCount, threads)
	}

	if len(values) == 0 {
		if id, ok := m.Identity(); ok {
			return id, nil
		}
		return zero, ErrEmptyInput
	}

	partials, err := MapChunks(ctx, ex, threads, values, chunk)
	if err != nil {
		return zero, err
	}
	return m.Fold(partials)
}
