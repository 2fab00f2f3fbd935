package sort

import (
	"fmt"

	"github.com/exascience/pmsort/internal"
)

// sSort sorts the range [l, r] on the calling goroutine. The range is
// initially held by in. If intoOut is set, the sorted range ends up in out,
// otherwise in in. The two halves are sorted into the buffer opposite to
// this call's, so every level of the recursion merges from one buffer into
// the other, and a single element is copied only if it has to change
// buffers.
func sSort[T Key](in, out []T, l, r int, intoOut bool) {
	if l == r {
		if intoOut {
			out[l] = in[l]
		}
		return
	}
	mid := l + (r-l)/2
	sSort(in, out, l, mid, !intoOut)
	sSort(in, out, mid+1, r, !intoOut)
	if intoOut {
		sMerge(in, out, l, mid, mid+1, r, l)
	} else {
		sMerge(out, in, l, mid, mid+1, r, l)
	}
}

// pSort sorts like sSort, forking the two half sorts with half of the
// budget each until the budget is down to one. Once both halves are
// sorted, no sort work of this subtree is outstanding anymore, so the
// merge gets the full budget.
func pSort[T Key](in, out []T, l, r int, intoOut bool, budget int) {
	if l == r {
		if intoOut {
			out[l] = in[l]
		}
		return
	}
	mid := l + (r-l)/2
	if budget > 1 {
		half := budget / 2
		fork(
			func() { pSort(in, out, l, mid, !intoOut, half) },
			func() { pSort(in, out, mid+1, r, !intoOut, half) },
		)
	} else {
		sSort(in, out, l, mid, !intoOut)
		sSort(in, out, mid+1, r, !intoOut)
	}
	if intoOut {
		pMerge(in, out, l, mid, mid+1, r, l, budget)
	} else {
		pMerge(out, in, l, mid, mid+1, r, l, budget)
	}
}

/*
MergeSortInto sorts the elements of in in increasing order and stores the
result in out, using at most budget goroutines at a time. Both slices are
owned by the caller and must have the same length; in is used as
auxiliary memory and holds an unspecified permutation of its elements
afterwards.

MergeSortInto is useful when the same buffers are reused for many sorts.
It panics if budget < 1 or if the lengths of in and out differ.
*/
func MergeSortInto[T Key](in, out []T, budget int) {
	internal.CheckBudget(budget)
	if len(in) != len(out) {
		panic(fmt.Sprintf("mismatched buffer lengths: %v and %v", len(in), len(out)))
	}
	if len(in) == 0 {
		return
	}
	pSort(in, out, 0, len(in)-1, true, budget)
}

/*
MergeSort returns a new slice that holds the elements of data in
increasing order. It uses a parallel merge sort that forks as long as
the execution-unit budget allows, halving the budget at every fork, so
that at most budget goroutines work on the sort at a time. With a
budget of one, the sort runs entirely on the calling goroutine.

MergeSort leaves data untouched and allocates two slices of the same
length. The result is not stable, but it is the same for every budget.

MergeSort panics if budget < 1. Use pmsort.ComputeEffectiveBudget to
derive a budget from the available parallelism.
*/
func MergeSort[T Key](data []T, budget int) []T {
	internal.CheckBudget(budget)
	in := make([]T, len(data))
	copy(in, data)
	out := make([]T, len(data))
	MergeSortInto(in, out, budget)
	return out
}
