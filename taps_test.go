package fizzle

import (
	"os"
	"testing"
)

// TestTapsPeriod walks every register in the table and checks that it returns
// to its seed after exactly 2^n - 1 steps without touching zero.
//
// Degrees above 24 take minutes to walk; set FIZZLE_FULL_TAPS=1 to check the
// whole table up to MaxDegree.
func TestTapsPeriod(t *testing.T) {
	maxChecked := 20
	switch {
	case os.Getenv("FIZZLE_FULL_TAPS") != "":
		maxChecked = MaxDegree
	case !testing.Short():
		maxChecked = 24
	}

	for degree := MinDegree; degree <= maxChecked; degree++ {
		taps, ok := TapsFor(degree)
		if !ok {
			t.Fatalf("TapsFor(%d) not found", degree)
		}
		if got, want := walkPeriod(t, degree, taps), period(degree); got != want {
			t.Errorf("degree %d (taps %#x): period %d, want %d", degree, taps, got, want)
		}
	}
}

// walkPeriod steps a register from DefaultSeed until it returns, failing if
// it hits zero or runs past the maximal period.
func walkPeriod(t *testing.T, degree int, taps uint32) uint64 {
	t.Helper()
	limit := period(degree)

	register := DefaultSeed
	var steps uint64
	for {
		register = galoisStep(register, taps)
		steps++
		if register == 0 {
			t.Fatalf("degree %d: register reached zero after %d steps", degree, steps)
		}
		if register == DefaultSeed || steps > limit {
			return steps
		}
	}
}

func TestTapsTopBit(t *testing.T) {
	// The highest tap of an n-bit Galois register is bit n-1, otherwise the
	// register would be narrower than its degree.
	for degree := MinDegree; degree <= MaxDegree; degree++ {
		taps, _ := TapsFor(degree)
		if taps>>(degree-1) != 1 {
			t.Errorf("degree %d: taps %#x do not top out at bit %d", degree, taps, degree-1)
		}
	}
}

func TestTapsForBounds(t *testing.T) {
	for _, degree := range []int{-1, 0, 1, MaxDegree + 1} {
		if _, ok := TapsFor(degree); ok {
			t.Errorf("TapsFor(%d) ok = true, want false", degree)
		}
	}
	if taps, ok := TapsFor(ClassicDegree); !ok || taps != FeedbackTaps {
		t.Errorf("TapsFor(ClassicDegree) = %#x, %v, want FeedbackTaps", taps, ok)
	}
}

func TestGaloisStepPredecessorOfSeed(t *testing.T) {
	// Every cycle reaches the seed 1 from 2, which fixes the last cell word.
	for degree := MinDegree; degree <= MaxDegree; degree++ {
		taps, _ := TapsFor(degree)
		if got := galoisStep(2, taps); got != 1 {
			t.Errorf("degree %d: galoisStep(2) = %#x, want 1", degree, got)
		}
	}
}
