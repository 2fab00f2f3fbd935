package sequential

import (
	"reflect"
	"testing"
)

func TestRangeOrder(t *testing.T) {
	var batches [][2]int
	Range(0, 10, 4, func(low, high int) {
		batches = append(batches, [2]int{low, high})
	})
	want := [][2]int{{0, 3}, {3, 6}, {6, 8}, {8, 10}}
	if !reflect.DeepEqual(batches, want) {
		t.Errorf("Range batches = %v, want %v", batches, want)
	}
}

func TestRangeAnd(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 0, 7, 8}
	ascending := func(low, high int) bool {
		for i := low; i < high; i++ {
			if data[i] < data[i-1] {
				return false
			}
		}
		return true
	}
	if RangeAnd(1, len(data), 3, ascending) {
		t.Errorf("RangeAnd missed the descent at index 5")
	}
	if !RangeAnd(1, 5, 3, ascending) {
		t.Errorf("RangeAnd rejected an ascending prefix")
	}

	var visited []int
	RangeAnd(0, 8, 8, func(low, high int) bool {
		visited = append(visited, low)
		return low < 2
	})
	if !reflect.DeepEqual(visited, []int{0, 1, 2}) {
		t.Errorf("RangeAnd visited %v after the first false batch", visited)
	}
}
