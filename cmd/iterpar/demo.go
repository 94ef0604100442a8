package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/utkarsh5026/iterpar/listops"
	"github.com/utkarsh5026/iterpar/parallel"
)

// scenario is one list operation with a known answer.
type scenario struct {
	name string
	want string
	run  func(ctx context.Context, ex parallel.Executor, threads int) (string, error)
}

func intCmp(a, b int) int { return a - b }

func isEven(n int) bool { return n%2 == 0 }

func demoScenarios() []scenario {
	words := []string{"test", "mamkaIgnata", "your", "memchiki))", "sick", "#"}
	nums := []int{3, 1, 4, 1, 5, 9, 2, 6}

	return []scenario{
		{
			name: "map len",
			want: "[4 11 4 10 4 1]",
			run: func(ctx context.Context, ex parallel.Executor, threads int) (string, error) {
				got, err := listops.Map(ctx, ex, threads, words, func(s string) int { return len(s) })
				return fmt.Sprint(got), err
			},
		},
		{
			name: "concat",
			want: "abc",
			run: func(ctx context.Context, ex parallel.Executor, threads int) (string, error) {
				return listops.Concat(ctx, ex, threads, []string{"a", "b", "c"})
			},
		},
		{
			name: "filter even",
			want: "[2 4 6]",
			run: func(ctx context.Context, ex parallel.Executor, threads int) (string, error) {
				got, err := listops.Filter(ctx, ex, threads, []int{1, 2, 3, 4, 5, 6}, isEven)
				return fmt.Sprint(got), err
			},
		},
		{
			name: "maximum",
			want: "9",
			run: func(ctx context.Context, ex parallel.Executor, threads int) (string, error) {
				got, err := listops.Maximum(ctx, ex, threads, nums, intCmp)
				return fmt.Sprint(got), err
			},
		},
		{
			name: "minimum",
			want: "1",
			run: func(ctx context.Context, ex parallel.Executor, threads int) (string, error) {
				got, err := listops.Minimum(ctx, ex, threads, nums, intCmp)
				return fmt.Sprint(got), err
			},
		},
		{
			name: "all on empty",
			want: "true",
			run: func(ctx context.Context, ex parallel.Executor, threads int) (string, error) {
				got, err := listops.All(ctx, ex, threads, []int{}, isEven)
				return fmt.Sprint(got), err
			},
		},
		{
			name: "any on empty",
			want: "false",
			run: func(ctx context.Context, ex parallel.Executor, threads int) (string, error) {
				got, err := listops.Any(ctx, ex, threads, []int{}, isEven)
				return fmt.Sprint(got), err
			},
		},
		{
			name: "any contains #",
			want: "true",
			run: func(ctx context.Context, ex parallel.Executor, threads int) (string, error) {
				got, err := listops.Any(ctx, ex, threads, words, func(s string) bool {
					return strings.Contains(s, "#")
				})
				return fmt.Sprint(got), err
			},
		},
		{
			name: "maximum on empty",
			want: "error: " + listops.ErrEmptyInput.Error(),
			run: func(ctx context.Context, ex parallel.Executor, threads int) (string, error) {
				got, err := listops.Maximum(ctx, ex, threads, []int{}, intCmp)
				return fmt.Sprint(got), err
			},
		},
		{
			name: "zero threads",
			want: "error: " + parallel.ErrInvalidThreadCount.Error(),
			run: func(ctx context.Context, ex parallel.Executor, _ int) (string, error) {
				got, err := listops.Map(ctx, ex, 0, words, func(s string) int { return len(s) })
				return fmt.Sprint(got), err
			},
		},
	}
}

// runDemo runs every scenario on every strategy and reports mismatches.
func runDemo(ctx context.Context, cfg *Config) (err error) {
	s, err := newStrategies(cfg)
	if err != nil {
		return err
	}
	defer s.closeInto(&err)

	printSectionHeader("LIST OPERATIONS",
		fmt.Sprintf("Each row runs with %d threads on every strategy.", cfg.Threads))

	header := []any{"Operation", "Expected"}
	for _, ex := range s.executors {
		header = append(header, ex.Name())
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.Header(header...)

	failures := 0
	for _, sc := range demoScenarios() {
		row := []any{sc.name, sc.want}
		for _, ex := range s.executors {
			got, err := sc.run(ctx, ex, cfg.Threads)
			if err != nil {
				got = "error: " + unwrapSentinel(err).Error()
			}
			if got == sc.want {
				row = append(row, green.Sprint(got))
			} else {
				row = append(row, red.Sprint(got))
				failures++
			}
		}
		_ = table.Append(row...)
	}

	if err := table.Render(); err != nil {
		colorPrintLn(red, "Error in rendering demo table")
	}

	if cfg.Metrics {
		printMetrics(s.registry)
	}

	if failures > 0 {
		return fmt.Errorf("%d results did not match", failures)
	}
	colorPrintLn(green, "All results match.")
	return nil
}

// unwrapSentinel strips context added around a package error so the demo
// prints the same text on every strategy.
func unwrapSentinel(err error) error {
	for _, sentinel := range []error{parallel.ErrInvalidThreadCount, parallel.ErrEmptyInput} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return err
}
