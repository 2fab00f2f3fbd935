/*
Package sort provides a parallel merge sort whose parallelism is bounded by
an explicit execution-unit budget.

The sort recursively halves its range, sorts both halves, and merges them.
The merge itself is recursive as well: it takes the median of the longer
run, finds its insertion point in the other run by binary search, stores
it at its final position, and then merges the elements before and after
it independently. Both the two half sorts and the two sub-merges write to
disjoint parts of the destination, so they can run in parallel without any
synchronization beyond the final join.

A budget of n allows a call to fork while n > 1, handing n/2 to each of
the two forked calls. Once the budget is down to one, the remaining
subtree runs on the calling goroutine. The partitioning never depends on
the budget, so the result is bit-identical for every budget.

The sort is not stable, and it needs an auxiliary buffer of the same size
as the input.
*/
package sort

import (
	"sync/atomic"

	"golang.org/x/exp/constraints"

	"github.com/exascience/pmsort/internal"
	"github.com/exascience/pmsort/parallel"
	"github.com/exascience/pmsort/sequential"
	"github.com/exascience/pmsort/speculative"
)

// Key is the set of types MergeSort can order with the < and <= operators.
// Floating-point NaNs are not ordered, and sorting them yields an
// unspecified order.
type Key interface {
	constraints.Ordered
}

const checkGrainSize = 0x1000

// fork runs the two halves of every split of the sort and the merge. Only
// calls with a budget greater than one fork.
var fork = parallel.Do

/*
IsSorted determines whether data is sorted in increasing order. With a
budget greater than one, the check runs in parallel and attempts to
terminate early when the return value is false.
*/
func IsSorted[T Key](data []T, budget int) bool {
	internal.CheckBudget(budget)
	size := len(data)
	if size < 2 {
		return true
	}
	if budget == 1 || size < checkGrainSize {
		return sequential.RangeAnd(1, size, 1, func(low, high int) bool {
			for i := low; i < high; i++ {
				if data[i] < data[i-1] {
					return false
				}
			}
			return true
		})
	}
	var done int32
	defer atomic.StoreInt32(&done, 1)
	return speculative.RangeAnd(1, size, budget, func(low, high int) bool {
		for i := low; i < high; i++ {
			if ((i % 1024) == 0) && (atomic.LoadInt32(&done) != 0) {
				return false
			}
			if data[i] < data[i-1] {
				return false
			}
		}
		return true
	})
}

// Float32s returns a sorted copy of a slice of float32s, in increasing
// order. See MergeSort.
func Float32s(a []float32, budget int) []float32 {
	return MergeSort(a, budget)
}

/*
Float32sAreSorted determines whether a slice of float32s is sorted in
increasing order. See IsSorted.
*/
func Float32sAreSorted(a []float32, budget int) bool {
	return IsSorted(a, budget)
}
