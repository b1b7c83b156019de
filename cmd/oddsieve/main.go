// Command oddsieve prints and/or counts the primes up to an upper limit.
//
// Usage:
//
//	oddsieve [-p|-P] [-c|-C] <upper_limit>
//
// -p prints the primes, -c prints how many there are. The sieve always runs
// and the time it took is always reported.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/oddsieve"
	"github.com/hupe1980/oddsieve/internal/cli"
	"github.com/hupe1980/oddsieve/internal/resource"
	"github.com/hupe1980/oddsieve/internal/simd"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

// run executes the command and returns the process exit status.
// It panics if stdout cannot be written.
func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	start := time.Now()

	a, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	env, err := cli.LoadEnv(getenv)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger := newLogger(env, stderr)
	metrics := &oddsieve.BasicMetricsCollector{}
	opts := []oddsieve.Option{
		oddsieve.WithLogger(logger),
		oddsieve.WithMetricsCollector(metrics),
		oddsieve.WithMemoryLimit(env.MemoryLimit),
	}

	s, err := oddsieve.Build(a.Limit, opts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	r := s.Result()
	defer r.Close()

	compute := time.Since(start)

	var mode oddsieve.Mode
	if a.Print {
		mode |= oddsieve.ModeList
	}
	if a.Count {
		mode |= oddsieve.ModeCount
	}

	if mode != 0 {
		var out io.Writer = stdout
		if env.OutputRate > 0 {
			rc := resource.NewController(resource.Config{OutputBytesPerSec: env.OutputRate})
			out = resource.NewRateLimitedWriter(context.Background(), stdout, rc)
		}
		if err := oddsieve.Emit(out, r, mode, opts...); err != nil {
			panic(fmt.Sprintf("error writing to the standard output stream: %v", err))
		}
	}

	output := time.Since(start) - compute

	if err := oddsieve.WriteTimings(stdout, compute, output, mode != 0); err != nil {
		panic(fmt.Sprintf("error writing to the standard output stream: %v", err))
	}

	stats := metrics.GetStats()
	logger.Debug("run finished",
		"limit", a.Limit,
		"mode", mode.String(),
		"isa", simd.ActiveISA().String(),
		"build", time.Duration(stats.BuildAvgNanos),
		"output", time.Duration(stats.OutputAvgNanos),
	)

	return 0
}

func newLogger(env cli.Env, w io.Writer) *oddsieve.Logger {
	opts := &slog.HandlerOptions{Level: env.LogLevel}
	if env.LogFormat == cli.LogFormatJSON {
		return oddsieve.NewLogger(slog.NewJSONHandler(w, opts))
	}
	return oddsieve.NewLogger(slog.NewTextHandler(w, opts))
}
