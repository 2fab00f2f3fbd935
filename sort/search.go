package sort

// lowerBound returns the smallest index i in [left, right+1] such that
// a[i] >= v, or right+1 if there is no such index. The range a[left:right+1]
// must be sorted. An empty range, right < left, yields left.
func lowerBound[T Key](v T, a []T, left, right int) int {
	low, high := left, right+1
	if high < low {
		return low
	}
	for low < high {
		mid := low + (high-low)/2
		if v <= a[mid] {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return high
}
