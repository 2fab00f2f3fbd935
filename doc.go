// Package pmsort provides a parallel merge sort whose parallelism is bounded
// by an explicit execution-unit budget. While Go schedules goroutines on its
// own, the algorithms in this module decide up front how many goroutines a
// recursive call may fork, so that the number of concurrently running tasks
// stays close to the budget rather than growing with the problem size.
//
// Pmsort provides the following subpackages:
//
// pmsort/sort provides the merge sort kernel. Both the sort and the merge
// step are recursive fork-join algorithms: a merge is split by a binary
// search on the median of the longer run, which yields two independent
// sub-merges that write to disjoint parts of the destination.
//
// pmsort/parallel provides the fork-join primitives the kernel is built on.
//
// pmsort/speculative provides a parallel conjunction over ranges that
// terminates early, used to check sortedness.
//
// pmsort/sequential provides sequential implementations of the range
// functions, used when the budget is one.
//
// The command pmsort/cmd/pmsort benchmarks the kernel on synthetic inputs.
//
// The merge algorithm follows the parallel merge described in chapter 27 of
// https://mitpress.mit.edu/books/introduction-algorithms, and
// http://www.drdobbs.com/parallel/parallel-merge/229204454 for the
// variant that always splits the longer run.
package pmsort
