/*
Package speculative provides range functions similar to those in package
parallel, except that the implementations here terminate early when they
can.

RangeAnd terminates early if the final return value is known early, that
is, if any of the predicates invoked in parallel returns false.

RangeAnd also handles panics, similar to the functions in package
parallel. However, panics may not propagate to the invoking goroutine in
case it terminates early because of a known return value.

RangeAnd does not stop the execution of invoked functions that may still
be running in parallel in case of early termination. Predicates that scan
large batches should poll some form of cancelation flag to free up compute
resources in such cases; see sort.IsSorted in this module for an example.
*/
package speculative

import (
	"sync"

	"github.com/exascience/pmsort/internal"
)

/*
RangeAnd receives a range, a batch count n, and a range predicate
function f, divides the range into batches, and invokes the range
predicate for each of these batches in parallel, covering the half-open
interval from low to high, including low but excluding high.

The range is specified by a low and high integer, with low <= high. The
batches are determined by dividing up the size of the range (high - low)
by the execution-unit budget n, which must be at least 1.

The range predicate is invoked for each batch in its own goroutine, with
0 <= low <= high, and RangeAnd returns either when all range predicates
have terminated, combining all return values with the && operator; or
when one or more range predicates return false, returning false without
waiting for the other range predicates to terminate.

RangeAnd panics if high < low, or if n < 1.

If one or more range predicate invocations panic, the corresponding
goroutines recover the panics, and RangeAnd may eventually panic with the
left-most recovered panic value.
*/
func RangeAnd(low, high, n int, f func(low, high int) bool) bool {
	var recur func(int, int, int) bool
	recur = func(low, high, n int) bool {
		if n == 1 {
			return f(low, high)
		}
		batchSize := ((high - low - 1) / n) + 1
		half := n / 2
		mid := low + batchSize*half
		if mid >= high {
			return f(low, high)
		}
		var b1 bool
		var p interface{}
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			b1 = recur(mid, high, n-half)
		}()
		if !recur(low, mid, half) {
			return false
		}
		wg.Wait()
		if p != nil {
			panic(p)
		}
		return b1
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n))
}
