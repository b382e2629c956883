package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a sine wave sampled at sampleRate.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Index returns 0, 1, ..., n-1 as float64 values.
func Index(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// Ramp returns n evenly spaced values from lo to hi inclusive.
func Ramp(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}

// PeriodicSine evaluates sin(2*pi*x/period) for each x.
func PeriodicSine(x []float64, period float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Sin(2 * math.Pi * v / period)
	}
	return out
}
