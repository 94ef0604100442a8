// Command iterpar runs the parallel list operations on every dispatch
// strategy and compares them.
//
// Usage:
//
//	iterpar demo  [flags]   check every operation against known answers
//	iterpar bench [flags]   time every operation on every strategy
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/utkarsh5026/iterpar/internal/log"
)

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, cfg *Config) error
}

var commands = []command{
	{"demo", "check every operation against known answers", runDemo},
	{"bench", "time every operation on every strategy", runBench},
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: iterpar <command> [flags]\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-6s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(os.Stderr, "\nRun 'iterpar <command> --help' for the flags.\n")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var cmd *command
	for i := range commands {
		if commands[i].name == os.Args[1] {
			cmd = &commands[i]
		}
	}
	if cmd == nil {
		usage()
		os.Exit(2)
	}

	cfg := NewDefaultConfig()
	flags := pflag.NewFlagSet(cmd.name, pflag.ContinueOnError)
	cfg.DefineFlags(flags)
	if err := flags.Parse(os.Args[2:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("invalid flags: %v", err)
		os.Exit(2)
	}
	if cfg.Verbose {
		log.EnableVerbose()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.run(ctx, cfg); err != nil {
		colorPrintf(red, "iterpar %s: %v\n", cmd.name, err)
		stop()
		os.Exit(1)
	}
}
