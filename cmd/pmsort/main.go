// Command pmsort benchmarks the parallel merge sort on synthetic inputs.
//
// Usage:
//
//	pmsort -n 10000000 -input random
//	pmsort -n 10000000 -input 2 -alg serial -iterations 5
//	pmsort -n 10000000 -budget 8
//
// Input modes are random (0), sorted (1), almost-sorted (2), constant (3),
// and reverse (4). Every iteration sorts a fresh copy of the same input and
// checks the result. The command exits with status 1 for invalid arguments
// or failed output, and with status 2 if a result is not sorted.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/exascience/pmsort/internal/bench"
	"github.com/exascience/pmsort/internal/input"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the command with the given arguments, writing all output to
// stderr, and returns the exit status.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("pmsort", flag.ContinueOnError)
	flags.SetOutput(stderr)
	size := flags.Int("n", 0, "Number of keys to sort (required)")
	inputMode := flags.String("input", "random", "Input mode: random, sorted, almost-sorted, constant, reverse, or 0-4")
	algorithm := flags.String("alg", "parallel", "Algorithm: parallel or serial")
	budget := flags.Int("budget", 0, "Execution-unit budget (default: available parallelism)")
	iterations := flags.Int("iterations", 10, "Number of timed iterations")

	if err := flags.Parse(args); err != nil {
		return exitStatus(errUsage)
	}

	sizeSet := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "n" {
			sizeSet = true
		}
	})
	if !sizeSet {
		fmt.Fprintf(stderr, "Error: -n flag is required\n\n")
		flags.Usage()
		return exitStatus(errUsage)
	}

	cfg, err := parseConfig(*size, *inputMode, *algorithm, *budget, *iterations)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		flags.Usage()
		return exitStatus(err)
	}

	report, err := bench.Run(cfg, stderr)
	if err == nil {
		_, err = report.WriteTo(stderr)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return exitStatus(err)
}

// exitStatus maps the outcome of a run to the exit status of the command.
func exitStatus(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, bench.ErrNotSorted):
		return 2
	default:
		return 1
	}
}

func parseConfig(size int, inputMode, algorithm string, budget, iterations int) (bench.Config, error) {
	mode, err := input.ParseMode(inputMode)
	if err != nil {
		return bench.Config{}, err
	}
	alg, err := bench.ParseAlgorithm(algorithm)
	if err != nil {
		return bench.Config{}, err
	}
	cfg := bench.Config{
		N:          size,
		Mode:       mode,
		Algorithm:  alg,
		Budget:     budget,
		Iterations: iterations,
	}
	return cfg, cfg.Validate()
}
