package parallel_test

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/exascience/pmsort/parallel"
)

func ExampleDo() {
	var fib func(int) int

	fib = func(n int) int {
		if n < 2 {
			return n
		}
		return fib(n-1) + fib(n-2)
	}

	var parallelFib func(n, budget int) int

	parallelFib = func(n, budget int) int {
		if n < 20 || budget == 1 {
			return fib(n)
		}
		var n1, n2 int
		parallel.Do(
			func() { n1 = parallelFib(n-1, budget/2) },
			func() { n2 = parallelFib(n-2, budget/2) },
		)
		return n1 + n2
	}

	fmt.Println(parallelFib(30, 8))

	// Output:
	// 832040
}

func ExampleRange() {
	squares := make([]int, 10)
	parallel.Range(0, len(squares), 4, func(low, high int) {
		for i := low; i < high; i++ {
			squares[i] = i * i
		}
	})
	fmt.Println(squares)

	// Output:
	// [0 1 4 9 16 25 36 49 64 81]
}

func TestDoRunsAllThunks(t *testing.T) {
	for n := 0; n <= 9; n++ {
		var count int32
		thunks := make([]func(), n)
		for i := range thunks {
			thunks[i] = func() { atomic.AddInt32(&count, 1) }
		}
		parallel.Do(thunks...)
		if int(count) != n {
			t.Errorf("Do with %v thunks ran %v of them", n, count)
		}
	}
}

func TestDoPanics(t *testing.T) {
	defer func() {
		p := recover()
		if p == nil {
			t.Fatalf("Do did not propagate the panic")
		}
		if s, ok := p.(string); !ok || !strings.HasPrefix(s, "right") {
			t.Errorf("unexpected panic value %v", p)
		}
	}()
	parallel.Do(
		func() {},
		func() { panic("right") },
	)
}

func TestRangeCoversInterval(t *testing.T) {
	for _, test := range []struct{ low, high, n int }{
		{0, 0, 1},
		{0, 1, 4},
		{3, 17, 4},
		{0, 1000, 7},
		{0, 1000, 3},
		{10, 11, 64},
	} {
		hits := make([]int32, test.high)
		parallel.Range(test.low, test.high, test.n, func(low, high int) {
			if low < test.low || high > test.high || low > high {
				t.Errorf("batch %v:%v outside %v:%v", low, high, test.low, test.high)
				return
			}
			for i := low; i < high; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i := test.low; i < test.high; i++ {
			if hits[i] != 1 {
				t.Errorf("Range(%v, %v, %v) visited index %v %v times", test.low, test.high, test.n, i, hits[i])
			}
		}
	}
}
