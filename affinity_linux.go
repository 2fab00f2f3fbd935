//go:build linux

package pmsort

import "golang.org/x/sys/unix"

// affinityCount returns the number of CPUs the calling thread may run on,
// or 0 if the affinity mask cannot be read.
func affinityCount() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return 0
	}
	return set.Count()
}
