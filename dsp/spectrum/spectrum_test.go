package spectrum

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-wave/dsp/core"
	"github.com/cwbudde/algo-wave/internal/testutil"
)

// naiveRealDFT is the O(N^2) reference for RealFFT.
func naiveRealDFT(x []float64) []complex128 {
	n := len(x)
	out := make([]complex128, n/2+1)
	for k := range out {
		var sum complex128
		for j, v := range x {
			sum += complex(v, 0) * cmplx.Rect(1, -2*math.Pi*float64(j*k)/float64(n))
		}
		out[k] = sum
	}
	return out
}

func TestRealFFTMatchesNaiveDFT(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 8, 12, 17, 64, 100, 127, 1000} {
		x := testutil.DeterministicNoise(int64(n), 1, n)

		got, err := RealFFT(x)
		if err != nil {
			t.Fatalf("n=%d: RealFFT error: %v", n, err)
		}
		want := naiveRealDFT(x)
		if len(got) != n/2+1 {
			t.Fatalf("n=%d: len = %d, want %d", n, len(got), n/2+1)
		}
		for k := range want {
			if cmplx.Abs(got[k]-want[k]) > 1e-8*float64(n) {
				t.Fatalf("n=%d bin %d: got %v, want %v", n, k, got[k], want[k])
			}
		}
	}
}

// Bluestein sizes that show up as real buffer lengths. A full naive DFT is too
// slow here, so a spread of bins is checked against a direct sum.
func TestRealFFTLargeNonPowerOf2(t *testing.T) {
	for _, n := range []int{44100, 48000} {
		x := testutil.DeterministicNoise(int64(n), 1, n)

		got, err := RealFFT(x)
		if err != nil {
			t.Fatalf("n=%d: RealFFT error: %v", n, err)
		}
		if len(got) != n/2+1 {
			t.Fatalf("n=%d: len = %d, want %d", n, len(got), n/2+1)
		}

		bins := []int{0, 1, 2, n / 2}
		for k := 3; k < n/2; k += n / 64 {
			bins = append(bins, k)
		}
		for _, k := range bins {
			var want complex128
			for j, v := range x {
				want += complex(v, 0) * cmplx.Rect(1, -2*math.Pi*float64((j*k)%n)/float64(n))
			}
			if cmplx.Abs(got[k]-want) > 1e-8*float64(n) {
				t.Fatalf("n=%d bin %d: got %v, want %v", n, k, got[k], want)
			}
		}
	}
}

func TestRealFFTEmpty(t *testing.T) {
	if _, err := RealFFT(nil); !errors.Is(err, core.ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}

func TestFrequencies(t *testing.T) {
	got, err := Frequencies(8, 48000)
	if err != nil {
		t.Fatalf("Frequencies error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 6000, 12000, 18000, 24000}, 1e-9)

	odd, err := Frequencies(7, 7)
	if err != nil {
		t.Fatalf("Frequencies error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, odd, []float64{0, 1, 2, 3}, 1e-12)
}

func TestFrequenciesErrors(t *testing.T) {
	if _, err := Frequencies(0, 48000); !errors.Is(err, core.ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
	if _, err := Frequencies(8, 0); !errors.Is(err, core.ErrInvalidRate) {
		t.Fatalf("err = %v, want ErrInvalidRate", err)
	}
}

func TestComputeShape(t *testing.T) {
	for _, n := range []int{2, 9, 256, 4410} {
		s, err := Compute(testutil.DeterministicNoise(3, 1, n), 44100)
		if err != nil {
			t.Fatalf("n=%d: Compute error: %v", n, err)
		}
		if s.Len() != n/2+1 || len(s.Frequencies) != n/2+1 {
			t.Fatalf("n=%d: len = %d/%d, want %d", n, s.Len(), len(s.Frequencies), n/2+1)
		}
		if s.Frequencies[0] != 0 {
			t.Fatalf("n=%d: f[0] = %v, want 0", n, s.Frequencies[0])
		}
		if last := s.Frequencies[len(s.Frequencies)-1]; last > 44100.0/2 {
			t.Fatalf("n=%d: last frequency %v above Nyquist", n, last)
		}
		testutil.RequireStrictlyIncreasing(t, s.Frequencies)
		if s.Rate != 44100 || s.Size != n {
			t.Fatalf("n=%d: metadata = %d/%d", n, s.Rate, s.Size)
		}
	}
}

func TestComputeSinePeak(t *testing.T) {
	const (
		rate = 1000
		n    = 1000
	)
	x := testutil.DeterministicSine(50, rate, 1, n)

	s, err := Compute(x, rate)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	peak := 0
	for k, m := range s.Magnitudes {
		if m > s.Magnitudes[peak] {
			peak = k
		}
	}
	if s.Frequencies[peak] != 50 {
		t.Fatalf("peak at %v Hz, want 50", s.Frequencies[peak])
	}
	if math.Abs(s.Magnitudes[peak]-n/2) > 1e-6 {
		t.Fatalf("peak magnitude = %v, want %v", s.Magnitudes[peak], n/2)
	}
}

func TestComputeInvalidRate(t *testing.T) {
	if _, err := Compute([]float64{1, 2}, -1); !errors.Is(err, core.ErrInvalidRate) {
		t.Fatalf("err = %v, want ErrInvalidRate", err)
	}
	if _, err := Compute(nil, 8000); !errors.Is(err, core.ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}

func TestDecibels(t *testing.T) {
	s := Spectrum{Magnitudes: []float64{4, 0.4, 0}}
	db, err := s.Decibels()
	if err != nil {
		t.Fatalf("Decibels error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, db[:2], []float64{0, -20}, 1e-12)
	if !math.IsInf(db[2], -1) {
		t.Fatalf("db[2] = %v, want -Inf", db[2])
	}

	silent := Spectrum{Magnitudes: make([]float64, 5)}
	if _, err := silent.Decibels(); !errors.Is(err, core.ErrDegenerateSignal) {
		t.Fatalf("err = %v, want ErrDegenerateSignal", err)
	}
}

func TestSmooth(t *testing.T) {
	values := make([]float64, 40)
	for i := range values {
		values[i] = -10
	}
	out, err := Smooth(values, 16)
	if err != nil {
		t.Fatalf("Smooth error: %v", err)
	}
	if len(out) != len(values) {
		t.Fatalf("len = %d, want %d", len(out), len(values))
	}
	if math.Abs(out[20]+10) > 1e-12 {
		t.Fatalf("interior = %v, want -10", out[20])
	}
	if math.Abs(out[0]+5) > 1e-12 {
		t.Fatalf("edge = %v, want -5", out[0])
	}

	if _, err := Smooth(nil, 16); !errors.Is(err, core.ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
	if _, err := Smooth(values, 0); err == nil {
		t.Fatal("expected error for zero window")
	}
}

func TestMagnitude(t *testing.T) {
	mag := Magnitude([]complex128{3 + 4i, -1 - 1i, 0})
	testutil.RequireSliceNearlyEqual(t, mag, []float64{5, math.Sqrt2, 0}, 1e-12)

	if Magnitude(nil) != nil {
		t.Fatal("expected nil for empty input")
	}
}

func TestHelpers(t *testing.T) {
	tests := []struct{ in, next int }{{0, 1}, {1, 1}, {2, 2}, {3, 4}, {1000, 1024}, {1024, 1024}}
	for _, tt := range tests {
		if got := nextPowerOf2(tt.in); got != tt.next {
			t.Fatalf("nextPowerOf2(%d) = %d, want %d", tt.in, got, tt.next)
		}
	}
	if isPowerOf2(0) || !isPowerOf2(1) || isPowerOf2(6) || !isPowerOf2(64) {
		t.Fatal("isPowerOf2 mismatch")
	}
}
