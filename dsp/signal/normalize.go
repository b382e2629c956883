package signal

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-wave/dsp/core"
)

// Normalize scales samples so the largest absolute value becomes 1.
//
// Signs are preserved and exact zeros stay zero. An empty buffer returns
// [core.ErrEmptyInput]; a buffer without any non-zero sample returns
// [core.ErrDegenerateSignal].
func Normalize(samples []float64) ([]float64, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("normalize: %w", core.ErrEmptyInput)
	}

	peak := vecmath.MaxAbs(samples)
	if peak == 0 {
		return nil, fmt.Errorf("normalize: %w: peak amplitude is 0 over %d samples", core.ErrDegenerateSignal, len(samples))
	}
	if math.IsNaN(peak) || math.IsInf(peak, 0) {
		return nil, fmt.Errorf("normalize: %w: non-finite peak %v", core.ErrDegenerateSignal, peak)
	}

	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = v / peak
	}
	return out, nil
}

// Peak returns max(|s|) over samples, or 0 for an empty buffer.
func Peak(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	return vecmath.MaxAbs(samples)
}

// Loudness converts amplitudes to decibels: 20*log10(|s|).
//
// Exact zeros map to -Inf. That is well-defined floating-point behavior, not
// an error; renderers must clip it (see [core.FloorDB]).
func Loudness(samples []float64) []float64 {
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = core.LinearToDB(math.Abs(v))
	}
	return out
}

// LoudnessComplex converts complex bins to decibels of their magnitude.
func LoudnessComplex(bins []complex128) []float64 {
	out := make([]float64, len(bins))
	for i, c := range bins {
		out[i] = core.LinearToDB(cmplx.Abs(c))
	}
	return out
}

// MixDown averages interleaved multi-channel frames into a single channel.
//
// len(interleaved) must be a multiple of channels. A single channel is
// returned as a copy.
func MixDown(interleaved []float64, channels int) ([]float64, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("mixdown channels must be > 0: %d", channels)
	}
	if len(interleaved) == 0 {
		return nil, fmt.Errorf("mixdown: %w", core.ErrEmptyInput)
	}
	if len(interleaved)%channels != 0 {
		return nil, fmt.Errorf("mixdown: %w: %d samples is not a whole number of %d-channel frames",
			core.ErrLengthMismatch, len(interleaved), channels)
	}

	if channels == 1 {
		out := make([]float64, len(interleaved))
		copy(out, interleaved)
		return out, nil
	}

	frames := len(interleaved) / channels
	out := make([]float64, frames)
	inv := 1 / float64(channels)
	for f := range out {
		frame := interleaved[f*channels : (f+1)*channels]
		out[f] = vecmath.Sum(frame) * inv
	}
	return out, nil
}
