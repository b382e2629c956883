package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	RequireBounded(t, s, 1)
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	RequireSliceNearlyEqual(t, a, b, 0)

	c := DeterministicNoise(43, 1.0, 64)
	if d, _ := MaxAbsDiff(a, c); d == 0 {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestRamp(t *testing.T) {
	r := Ramp(-1, 1, 5)
	RequireSliceNearlyEqual(t, r, []float64{-1, -0.5, 0, 0.5, 1}, 1e-15)
	RequireStrictlyIncreasing(t, r)

	if one := Ramp(3, 9, 1); len(one) != 1 || one[0] != 3 {
		t.Fatalf("Ramp(3, 9, 1) = %v", one)
	}
}

func TestIndexAndPeriodicSine(t *testing.T) {
	x := Index(1000)
	if x[0] != 0 || x[999] != 999 {
		t.Fatalf("unexpected index endpoints: %v %v", x[0], x[999])
	}
	y := PeriodicSine(x, 1000)
	if math.Abs(y[250]-1) > 1e-12 {
		t.Fatalf("y[250] = %v, want 1", y[250])
	}
}
