package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"

	"github.com/utkarsh5026/iterpar/internal/log"
	"github.com/utkarsh5026/iterpar/listops"
	"github.com/utkarsh5026/iterpar/parallel"
)

// benchOp is one list operation timed by the bench command.
type benchOp struct {
	name string
	run  func(ctx context.Context, ex parallel.Executor, threads int, data []int) error
}

// benchResult is the outcome of all rounds of one operation on one strategy.
type benchResult struct {
	Op       string
	Strategy string
	Total    time.Duration
	Rounds   int
	Size     int
	Err      error
	Rank     int
}

func (r benchResult) perRound() time.Duration {
	return r.Total / time.Duration(r.Rounds)
}

func (r benchResult) elemsPerSec() float64 {
	if r.Total <= 0 {
		return 0
	}
	return float64(r.Size*r.Rounds) / r.Total.Seconds()
}

func benchOps() []benchOp {
	return []benchOp{
		{"map", func(ctx context.Context, ex parallel.Executor, threads int, data []int) error {
			_, err := listops.Map(ctx, ex, threads, data, func(v int) int { return v * v })
			return err
		}},
		{"filter", func(ctx context.Context, ex parallel.Executor, threads int, data []int) error {
			_, err := listops.Filter(ctx, ex, threads, data, isEven)
			return err
		}},
		{"concat", func(ctx context.Context, ex parallel.Executor, threads int, data []int) error {
			_, err := listops.Concat(ctx, ex, threads, data)
			return err
		}},
		{"all", func(ctx context.Context, ex parallel.Executor, threads int, data []int) error {
			_, err := listops.All(ctx, ex, threads, data, func(v int) bool { return v >= 0 })
			return err
		}},
		{"any", func(ctx context.Context, ex parallel.Executor, threads int, data []int) error {
			_, err := listops.Any(ctx, ex, threads, data, func(v int) bool { return v < 0 })
			return err
		}},
		{"maximum", func(ctx context.Context, ex parallel.Executor, threads int, data []int) error {
			_, err := listops.Maximum(ctx, ex, threads, data, intCmp)
			return err
		}},
		{"minimum", func(ctx context.Context, ex parallel.Executor, threads int, data []int) error {
			_, err := listops.Minimum(ctx, ex, threads, data, intCmp)
			return err
		}},
	}
}

func makeProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Benchmarking"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func generateInput(size int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	data := make([]int, size)
	for i := range data {
		data[i] = rng.Intn(1_000_000)
	}
	return data
}

// runBench times every operation on every strategy and renders one ranking
// table per operation.
func runBench(ctx context.Context, cfg *Config) (err error) {
	s, err := newStrategies(cfg)
	if err != nil {
		return err
	}
	defer s.closeInto(&err)

	s.poller.Start(ctx)
	defer s.poller.Stop()

	data := generateInput(cfg.Size, cfg.Seed)
	ops := benchOps()
	log.Verbosef("generated %d elements (seed %d)", len(data), cfg.Seed)

	var bar *progressbar.ProgressBar
	if !cfg.NoProgress {
		colorPrintLn(bold, "Running Benchmarks...")
		fmt.Println()
		bar = makeProgressBar(len(ops) * len(s.executors) * cfg.Rounds)
	}

	results := make([]benchResult, 0, len(ops)*len(s.executors))
	for _, op := range ops {
		for _, ex := range s.executors {
			if bar != nil {
				bar.Describe(fmt.Sprintf("Testing: %s on %s", op.name, ex.Name()))
			}
			res := timeOp(ctx, op, ex, cfg, data, bar)
			log.Verbosef("%s on %s: %s per round", op.name, ex.Name(), res.perRound())
			results = append(results, res)
			runtime.GC()
		}
	}

	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}

	for _, op := range ops {
		renderRanking(op.name, lo.Filter(results, func(r benchResult, _ int) bool {
			return r.Op == op.name
		}))
	}

	if cfg.Metrics {
		s.poller.Collect()
		printMetrics(s.registry)
	}

	failed := lo.CountBy(results, func(r benchResult) bool { return r.Err != nil })
	if failed > 0 {
		return fmt.Errorf("%d of %d runs failed", failed, len(results))
	}
	colorPrintf(green, "✅ Benchmarked %d operations on %d strategies\n", len(ops), len(s.executors))
	return nil
}

func timeOp(
	ctx context.Context,
	op benchOp,
	ex parallel.Executor,
	cfg *Config,
	data []int,
	bar *progressbar.ProgressBar,
) benchResult {
	res := benchResult{Op: op.name, Strategy: ex.Name(), Rounds: cfg.Rounds, Size: len(data)}
	for range cfg.Rounds {
		start := time.Now()
		err := op.run(ctx, ex, cfg.Threads, data)
		res.Total += time.Since(start)
		if bar != nil {
			_ = bar.Add(1)
		}
		if err != nil {
			res.Err = err
			return res
		}
	}
	return res
}

func renderRanking(op string, results []benchResult) {
	ok := lo.Filter(results, func(r benchResult, _ int) bool { return r.Err == nil })

	printSectionHeader(strings.ToUpper(op))
	if len(ok) > 0 {
		sort.Slice(ok, func(i, j int) bool { return ok[i].Total < ok[j].Total })
		fastest := ok[0].Total

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Rank", "Strategy", "Total Time", "Per Round", "Elements/sec", "vs Fastest")
		for i := range ok {
			ok[i].Rank = i + 1
			r := ok[i]
			_ = table.Append(
				getRankIcon(r.Rank),
				r.Strategy,
				r.Total.Round(time.Microsecond).String(),
				FormatLatency(r.perRound()),
				FormatNumber(int(r.elemsPerSec())),
				getVsFastestStr(r.Total, fastest, r.Rank),
			)
		}
		if err := table.Render(); err != nil {
			colorPrintLn(red, "Error in rendering "+op+" table")
		}
	}

	for _, r := range results {
		if r.Err != nil {
			colorPrintf(red, "  • %s: %v\n", r.Strategy, r.Err)
		}
	}
}

func getRankIcon(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return strconv.Itoa(rank)
	}
}

func getVsFastestStr(total, fastest time.Duration, rank int) string {
	if rank == 1 || fastest <= 0 {
		return "baseline"
	}
	return fmt.Sprintf("%.2fx", float64(total)/float64(fastest))
}
