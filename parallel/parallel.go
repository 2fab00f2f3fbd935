// Package parallel provides the fork-join primitives for the parallel
// merge sort in this module.
//
// Callers pass an explicit number of batches or an explicit pair of thunks;
// nothing in this package keeps a global pool of workers. A forked thunk
// runs in its own goroutine, and every function returns only when all the
// work it started has terminated.
package parallel

import (
	"sync"

	"github.com/exascience/pmsort/internal"
)

// Do receives zero or more thunks and executes them in parallel.
//
// The left-most thunk is invoked on the calling goroutine, the others each
// in their own goroutine, and Do returns only when all thunks have
// terminated.
//
// If one or more thunks panic, the corresponding goroutines recover the
// panics, and Do eventually panics with the left-most recovered panic
// value.
func Do(thunks ...func()) {
	switch len(thunks) {
	case 0:
		return
	case 1:
		thunks[0]()
		return
	}
	var p0, p1 interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	switch len(thunks) {
	case 2:
		go func() {
			defer func() {
				p1 = internal.WrapPanic(recover())
				wg.Done()
			}()
			thunks[1]()
		}()
		func() {
			defer func() {
				p0 = recover()
			}()
			thunks[0]()
		}()
	default:
		half := len(thunks) / 2
		go func() {
			defer func() {
				p1 = internal.WrapPanic(recover())
				wg.Done()
			}()
			Do(thunks[half:]...)
		}()
		func() {
			defer func() {
				p0 = recover()
			}()
			Do(thunks[:half]...)
		}()
	}
	wg.Wait()
	if p0 != nil {
		panic(p0)
	}
	if p1 != nil {
		panic(p1)
	}
}

// Range receives a range, a batch count n, and a range function f, divides
// the range into batches, and invokes the range function for each of these
// batches in parallel, covering the half-open interval from low to high,
// including low but excluding high.
//
// The range is specified by a low and high integer, with low <= high. The
// batches are determined by dividing up the size of the range (high - low)
// by the execution-unit budget n, which must be at least 1.
//
// The range function is invoked for each batch in its own goroutine, with
// 0 <= low <= high, and Range returns only when all range functions have
// terminated.
//
// Range panics if high < low, or if n < 1.
//
// If one or more range function invocations panic, the corresponding
// goroutines recover the panics, and Range eventually panics with the
// left-most recovered panic value.
func Range(low, high, n int, f func(low, high int)) {
	var recur func(int, int, int)
	recur = func(low, high, n int) {
		if n == 1 {
			f(low, high)
			return
		}
		batchSize := ((high - low - 1) / n) + 1
		half := n / 2
		mid := low + batchSize*half
		if mid >= high {
			f(low, high)
			return
		}
		Do(
			func() { recur(low, mid, half) },
			func() { recur(mid, high, n-half) },
		)
	}
	recur(low, high, internal.ComputeNofBatches(low, high, n))
}
