//go:build !linux

package pmsort

func affinityCount() int { return 0 }
