// Package listops provides parallel list operations over ordered slices.
//
// Every operation splits its input into at most threads contiguous chunks,
// computes a partial result per chunk on the given parallel.Executor and
// combines the partials in input order. The same call gives the same result
// whether it runs on fresh goroutines or on a shared pool:
//
//	p, _ := pool.New(runtime.NumCPU())
//	defer p.Close()
//
//	lengths, err := listops.Map(ctx, parallel.Pooled(p), 4, words,
//	    func(s string) int { return len(s) })
//
// Maximum and Minimum have no neutral element and fail with ErrEmptyInput on
// an empty slice; use NewNonEmpty with MaximumOf and MinimumOf to check that
// once, up front.
package listops
