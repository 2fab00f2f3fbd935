package sort

// split prepares the merge of the sorted runs src[p1:r1+1] and
// src[p2:r2+1] into dst, starting at index p3. It stores the median of the
// longer run at its final position in dst and returns the two sub-merges
// that remain: the elements before the median go to dst[p3:q3], the
// elements after it to dst[q3+1:]. The two sub-merges write to disjoint
// ranges of dst. If both runs are empty, split reports false.
func split[T Key](src, dst []T, p1, r1, p2, r2, p3 int) (before, after mergeRange, ok bool) {
	if r1-p1 < r2-p2 {
		p1, r1, p2, r2 = p2, r2, p1, r1
	}
	if r1 < p1 {
		return
	}
	q1 := p1 + (r1-p1)/2
	q2 := lowerBound(src[q1], src, p2, r2)
	q3 := p3 + (q1 - p1) + (q2 - p2)
	dst[q3] = src[q1]
	before = mergeRange{p1, q1 - 1, p2, q2 - 1, p3}
	after = mergeRange{q1 + 1, r1, q2, r2, q3 + 1}
	return before, after, true
}

// A mergeRange describes the merge of the runs [p1, r1] and [p2, r2] of a
// source buffer into a destination buffer starting at p3. A run with
// r < p is empty.
type mergeRange struct {
	p1, r1, p2, r2, p3 int
}

// sMerge merges the sorted runs src[p1:r1+1] and src[p2:r2+1] into dst,
// starting at index p3, on the calling goroutine.
func sMerge[T Key](src, dst []T, p1, r1, p2, r2, p3 int) {
	for {
		before, after, ok := split(src, dst, p1, r1, p2, r2, p3)
		if !ok {
			return
		}
		sMerge(src, dst, before.p1, before.r1, before.p2, before.r2, before.p3)
		p1, r1, p2, r2, p3 = after.p1, after.r1, after.p2, after.r2, after.p3
	}
}

// pMerge merges like sMerge, forking the two sub-merges of every split
// with half of the budget each until the budget is down to one.
func pMerge[T Key](src, dst []T, p1, r1, p2, r2, p3, budget int) {
	if budget <= 1 {
		sMerge(src, dst, p1, r1, p2, r2, p3)
		return
	}
	before, after, ok := split(src, dst, p1, r1, p2, r2, p3)
	if !ok {
		return
	}
	half := budget / 2
	fork(
		func() { pMerge(src, dst, before.p1, before.r1, before.p2, before.r2, before.p3, half) },
		func() { pMerge(src, dst, after.p1, after.r1, after.p2, after.r2, after.p3, half) },
	)
}
