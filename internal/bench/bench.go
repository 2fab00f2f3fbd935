// Package bench times the merge sort on generated inputs and checks every
// result for sortedness.
package bench

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/exascience/pmsort"
	"github.com/exascience/pmsort/internal/input"
	"github.com/exascience/pmsort/parallel"
	"github.com/exascience/pmsort/sequential"
	"github.com/exascience/pmsort/sort"
)

// MaxN is the largest input size a Config accepts.
const MaxN = 1000000000

// keySize is the size of a float32 key in bytes, for the sort rate.
const keySize = 4

// ErrNotSorted reports a result that failed the sortedness check. It
// signals a defect in the sort, not a condition to recover from.
var ErrNotSorted = errors.New("result is not sorted")

// An Algorithm selects how a run uses its budget.
type Algorithm int

const (
	// Parallel sorts with the configured budget.
	Parallel Algorithm = iota
	// Serial sorts with a budget of one.
	Serial
)

func (a Algorithm) String() string {
	switch a {
	case Parallel:
		return "parallel"
	case Serial:
		return "serial"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm accepts "parallel" or "serial", or their codes 0 and 1.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "0", "parallel":
		return Parallel, nil
	case "1", "serial":
		return Serial, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q", s)
	}
}

// A Config describes a benchmark run.
type Config struct {
	// N is the number of keys to sort.
	N int
	// Mode selects the generated input.
	Mode input.Mode
	// Algorithm selects parallel or serial sorting.
	Algorithm Algorithm
	// Budget is the execution-unit budget; 0 means
	// pmsort.AvailableParallelism(). Serial runs ignore it.
	Budget int
	// Iterations is the number of timed sorts of the same input.
	Iterations int
}

// Validate reports the first invalid field of c, if any.
func (c Config) Validate() error {
	switch {
	case c.N < 1 || c.N > MaxN:
		return fmt.Errorf("input size %d out of range [1, %d]", c.N, MaxN)
	case !c.Mode.Valid():
		return fmt.Errorf("invalid input mode: %v", c.Mode)
	case c.Algorithm != Parallel && c.Algorithm != Serial:
		return fmt.Errorf("invalid algorithm: %v", c.Algorithm)
	case c.Budget < 0:
		return fmt.Errorf("invalid budget: %d", c.Budget)
	case c.Iterations < 1:
		return fmt.Errorf("invalid number of iterations: %d", c.Iterations)
	}
	return nil
}

// EffectiveBudget is the budget the sort runs with.
func (c Config) EffectiveBudget() int {
	if c.Algorithm == Serial {
		return 1
	}
	return pmsort.ComputeEffectiveBudget(c.Budget)
}

// A Report summarizes the timings of a run, in seconds.
type Report struct {
	N      int
	Budget int
	Times  []float64
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Rate returns the mean sort rate in MB/s.
func (r *Report) Rate() float64 {
	return keySize * float64(r.N) / (r.Mean * 1e6)
}

// WriteTo prints the summary of r.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w,
		"Average time: %9.3f ms.\n"+
			"Std deviation: %9.3f ms, min %9.3f ms, max %9.3f ms.\n"+
			"Average sort rate: %6.3f MB/s\n",
		r.Mean*1e3, r.StdDev*1e3, r.Min*1e3, r.Max*1e3, r.Rate())
	return int64(n), err
}

// Run generates the input for cfg once and sorts it cfg.Iterations times,
// printing the time of every iteration to w. The work and output buffers
// are allocated once and reused for all iterations.
func Run(cfg Config, w io.Writer) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	budget := cfg.EffectiveBudget()

	data, err := input.Generate(cfg.Mode, cfg.N)
	if err != nil {
		return nil, err
	}
	work := make([]float32, cfg.N)
	out := make([]float32, cfg.N)

	refill := parallel.Range
	if budget == 1 {
		refill = sequential.Range
	}

	fmt.Fprintf(w, "N %d\n", cfg.N)
	fmt.Fprintf(w, "Using %v mergesort, budget %d, %v input\n", cfg.Algorithm, budget, cfg.Mode)
	fmt.Fprintf(w, "Execution times (ms) for %d iterations:\n", cfg.Iterations)

	times := make([]float64, 0, cfg.Iterations)
	for iter := 0; iter < cfg.Iterations; iter++ {
		refill(0, cfg.N, budget, func(low, high int) {
			copy(work[low:high], data[low:high])
		})

		start := time.Now()
		sort.MergeSortInto(work, out, budget)
		elapsed := time.Since(start).Seconds()

		times = append(times, elapsed)
		fmt.Fprintf(w, "%9.3f\n", elapsed*1e3)

		if !sort.Float32sAreSorted(out, budget) {
			return nil, fmt.Errorf("iteration %d: %w", iter, ErrNotSorted)
		}
	}

	report := &Report{
		N:      cfg.N,
		Budget: budget,
		Times:  times,
		Mean:   stat.Mean(times, nil),
		Min:    floats.Min(times),
		Max:    floats.Max(times),
	}
	if len(times) > 1 {
		report.StdDev = stat.StdDev(times, nil)
	}
	return report, nil
}
