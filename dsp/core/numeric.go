package core

import "math"

// LinearToDB converts an amplitude to decibels, 20*log10(linear).
// Zero maps to -Inf and negative amplitudes to NaN.
func LinearToDB(linear float64) float64 {
	switch {
	case linear < 0:
		return math.NaN()
	case linear == 0:
		return math.Inf(-1)
	default:
		return 20 * math.Log10(linear)
	}
}

// FloorDB replaces values below floor, including -Inf and NaN, with floor
// in place, so dB series stay plottable.
func FloorDB(dst []float64, floor float64) {
	for i, v := range dst {
		if math.IsNaN(v) || v < floor {
			dst[i] = floor
		}
	}
}
