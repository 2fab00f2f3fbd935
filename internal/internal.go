// Package internal holds the budget bookkeeping and panic handling shared by
// the fork-join packages of this module.
package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
)

// CheckBudget panics unless budget is a valid execution-unit budget, that
// is, at least one.
func CheckBudget(budget int) {
	if budget < 1 {
		panic(fmt.Sprintf("invalid budget: %v", budget))
	}
}

// ComputeNofBatches returns the number of batches a range function splits
// the range from low to high into: one per execution unit of the budget,
// but never more batches than the range has elements. An empty range yields
// a single batch.
func ComputeNofBatches(low, high, budget int) int {
	CheckBudget(budget)
	switch size := high - low; {
	case size < 0:
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	case size == 0:
		return 1
	case budget > size:
		return size
	default:
		return budget
	}
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic, so that a
// panic in a forked goroutine still shows where it originated after it is
// rethrown on the joining goroutine.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		s := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
		if _, isError := p.(error); isError {
			r := errors.New(s)
			if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
				return runtimeError{r}
			}
			return r
		}
		return s
	}
	return nil
}
