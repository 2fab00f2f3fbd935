// Package sequential provides sequential implementations of the range
// functions provided by the parallel and speculative packages. The sort
// package and the benchmark harness use them whenever the execution-unit
// budget is one, so that a budget of one never starts a goroutine.
package sequential

import (
	"fmt"

	"github.com/exascience/pmsort/internal"
)

// Range receives a range, a batch count n, and a range function f, divides
// the range into batches, and invokes the range function for each of these
// batches sequentially, covering the half-open interval from low to high,
// including low but excluding high.
//
// The batches are the same as those of parallel.Range for the same
// arguments, and are visited from left to right.
//
// Range panics if high < low, or if n < 1.
func Range(low, high, n int, f func(low, high int)) {
	var recur func(int, int, int)
	recur = func(low, high, n int) {
		switch {
		case n == 1:
			f(low, high)
		case n > 1:
			batchSize := ((high - low - 1) / n) + 1
			half := n / 2
			mid := low + batchSize*half
			if mid >= high {
				f(low, high)
				return
			}
			recur(low, mid, half)
			recur(mid, high, n-half)
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	recur(low, high, internal.ComputeNofBatches(low, high, n))
}

// RangeAnd receives a range, a batch count n, and a range predicate
// function f, divides the range into batches, and invokes the range
// predicate for each of these batches sequentially, combining the return
// values with the && operator. Batches to the right of the first batch
// that returns false are not visited.
//
// RangeAnd panics if high < low, or if n < 1.
func RangeAnd(low, high, n int, f func(low, high int) bool) bool {
	var recur func(int, int, int) bool
	recur = func(low, high, n int) bool {
		switch {
		case n == 1:
			return f(low, high)
		case n > 1:
			batchSize := ((high - low - 1) / n) + 1
			half := n / 2
			mid := low + batchSize*half
			if mid >= high {
				return f(low, high)
			}
			return recur(low, mid, half) && recur(mid, high, n-half)
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n))
}
