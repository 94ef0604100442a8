// Package parallel implements split/compute/combine over slices.
//
// Reduce partitions its input into at most threads contiguous chunks,
// computes one partial result per chunk through an Executor, and folds the
// partial results left to right with a Monoid. The fold always follows chunk
// order, never completion order, so any associative combiner gives the same
// answer as a sequential left fold, including order-sensitive ones such as
// "first maximum wins".
//
// Two executors are provided:
//
//   - Threads: one goroutine per chunk, started and joined on every call
//   - Pooled: chunks are submitted as one batch to a long-lived pool.WorkerPool
//
// Code built on Reduce takes an Executor and never branches on which one it got.
package parallel
