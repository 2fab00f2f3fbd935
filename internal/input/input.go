// Package input generates the synthetic key sequences the benchmark sorts.
package input

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// A Mode selects the shape of a generated sequence.
type Mode int

const (
	// Random draws keys uniformly from [0, 1).
	Random Mode = iota
	// Sorted yields 0, 1, 2, ...
	Sorted
	// AlmostSorted is Sorted with n/100+1 random pairs swapped.
	AlmostSorted
	// Constant yields n copies of 1.
	Constant
	// Reverse yields n+1, n, n-1, ..., 2.
	Reverse
)

const (
	randomSeed  = 123
	shuffleSeed = 1234
)

var modeNames = [...]string{
	Random:       "random",
	Sorted:       "sorted",
	AlmostSorted: "almost-sorted",
	Constant:     "constant",
	Reverse:      "reverse",
}

// Modes lists all modes in order of their numeric codes.
var Modes = []Mode{Random, Sorted, AlmostSorted, Constant, Reverse}

func (m Mode) String() string {
	if m.Valid() {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m >= Random && m <= Reverse
}

// ParseMode accepts a numeric mode code or a mode name.
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if code, err := strconv.Atoi(s); err == nil {
		if m := Mode(code); m.Valid() {
			return m, nil
		}
		return 0, fmt.Errorf("input mode %d out of range [0, %d]", code, int(Reverse))
	}
	for _, m := range Modes {
		if modeNames[m] == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown input mode %q", s)
}

// Generate returns a new sequence of n keys shaped according to mode. The
// random modes use fixed seeds, so the same arguments always produce the
// same sequence.
func Generate(mode Mode, n int) ([]float32, error) {
	if n < 1 {
		return nil, fmt.Errorf("invalid input size: %d", n)
	}
	a := make([]float32, n)
	switch mode {
	case Random:
		u := distuv.Uniform{Min: 0, Max: 1, Src: rand.NewSource(randomSeed)}
		for i := range a {
			a[i] = float32(u.Rand())
		}
	case Sorted:
		for i := range a {
			a[i] = float32(i)
		}
	case AlmostSorted:
		for i := range a {
			a[i] = float32(i)
		}
		rnd := rand.New(rand.NewSource(shuffleSeed))
		for s := n/100 + 1; s > 0; s-- {
			j, k := rnd.Intn(n), rnd.Intn(n)
			a[j], a[k] = a[k], a[j]
		}
	case Constant:
		for i := range a {
			a[i] = 1
		}
	case Reverse:
		for i := range a {
			a[i] = float32(n + 1 - i)
		}
	default:
		return nil, fmt.Errorf("invalid input mode: %v", mode)
	}
	return a, nil
}
