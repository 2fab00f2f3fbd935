package pmsort

import (
	"fmt"
	"runtime"
)

/*
AvailableParallelism returns the number of execution units a sort can
use on this platform: runtime.GOMAXPROCS(0), further limited by the
number of CPUs in the scheduler affinity mask of the current process
where the platform exposes one.
*/
func AvailableParallelism() int {
	n := runtime.GOMAXPROCS(0)
	if m := affinityCount(); m > 0 && m < n {
		n = m
	}
	return n
}

/*
ComputeEffectiveBudget determines the execution-unit budget for the
sort.MergeSort group of functions.

If the input budget is > 0, it is returned unchanged.

If the input budget is == 0, the return value is
AvailableParallelism().

A negative budget is invalid and causes a panic.
*/
func ComputeEffectiveBudget(budget int) int {
	switch {
	case budget > 0:
		return budget
	case budget == 0:
		return AvailableParallelism()
	default:
		panic(fmt.Sprintf("invalid budget: %v", budget))
	}
}
