package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/pflag"
)

// Config holds the flags shared by every subcommand.
type Config struct {
	// Threads is the chunk count passed to every list operation.
	Threads int

	// Workers is the size of the shared pool.
	Workers int

	// Size is the number of elements benchmarked.
	Size int

	// Rounds is how many times each operation runs per strategy.
	Rounds int

	// Rate limits the pool to this many tasks per second. Zero disables it.
	Rate  float64
	Burst int

	// ShutdownTimeout bounds how long closing the pool may take.
	ShutdownTimeout time.Duration

	Pin        bool
	Seed       int64
	Verbose    bool
	NoProgress bool
	Metrics    bool
}

// NewDefaultConfig returns the configuration used when no flags are given.
func NewDefaultConfig() *Config {
	n := runtime.NumCPU()
	return &Config{
		Threads: n,
		Workers: n,
		Size:    1_000_000,
		Rounds:  10,
		Burst:   1,
		Seed:    1,

		ShutdownTimeout: 10 * time.Second,
	}
}

// DefineFlags registers the configuration on flags.
func (cfg *Config) DefineFlags(flags *pflag.FlagSet) {
	default0 := NewDefaultConfig()
	flags.IntVarP(&cfg.Threads, "threads", "t", default0.Threads, "number of chunks each operation is split into")
	flags.IntVarP(&cfg.Workers, "workers", "w", default0.Workers, "number of workers in the shared pool")
	flags.IntVarP(&cfg.Size, "size", "n", default0.Size, "number of elements in the benchmark input")
	flags.IntVarP(&cfg.Rounds, "rounds", "r", default0.Rounds, "timed runs per operation and strategy")
	flags.Float64Var(&cfg.Rate, "rate", default0.Rate, "limit the pool to this many tasks per second (0 = unlimited)")
	flags.IntVar(&cfg.Burst, "burst", default0.Burst, "rate limiter burst size")
	flags.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", default0.ShutdownTimeout, "how long to wait for pool workers on exit (0 = forever)")
	flags.BoolVar(&cfg.Pin, "pin", default0.Pin, "pin each pool worker to its own CPU")
	flags.Int64Var(&cfg.Seed, "seed", default0.Seed, "seed for the generated benchmark input")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", default0.Verbose, "print verbose progress logs")
	flags.BoolVar(&cfg.NoProgress, "no-progress", default0.NoProgress, "do not draw a progress bar")
	flags.BoolVar(&cfg.Metrics, "metrics", default0.Metrics, "print the pool's Prometheus metrics when done")
}

// Validate checks the values that cannot be fixed up by the operations
// themselves. A non-positive thread count is left for the list operations
// to reject.
func (cfg *Config) Validate() error {
	if cfg.Workers <= 0 {
		return fmt.Errorf("--workers must be positive, got %d", cfg.Workers)
	}
	if cfg.Size < 0 {
		return fmt.Errorf("--size must not be negative, got %d", cfg.Size)
	}
	if cfg.Rounds <= 0 {
		return fmt.Errorf("--rounds must be positive, got %d", cfg.Rounds)
	}
	if cfg.ShutdownTimeout < 0 {
		return fmt.Errorf("--shutdown-timeout must not be negative, got %v", cfg.ShutdownTimeout)
	}
	if cfg.Rate < 0 {
		return fmt.Errorf("--rate must not be negative, got %v", cfg.Rate)
	}
	return nil
}
