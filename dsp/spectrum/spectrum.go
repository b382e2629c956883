package spectrum

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-wave/dsp/conv"
	"github.com/cwbudde/algo-wave/dsp/core"
	"github.com/cwbudde/algo-wave/dsp/signal"
)

// Spectrum is a one-sided magnitude spectrum.
type Spectrum struct {
	// Frequencies holds bin centers in Hz, starting at 0 and strictly
	// increasing up to at most rate/2.
	Frequencies []float64
	// Magnitudes holds linear |X[k]| for each bin.
	Magnitudes []float64
	// Rate is the sample rate of the analyzed buffer.
	Rate int
	// Size is the analyzed buffer length N.
	Size int
}

// Len returns the bin count N/2+1.
func (s Spectrum) Len() int { return len(s.Magnitudes) }

// Compute returns the magnitude spectrum of samples taken at rate Hz.
func Compute(samples []float64, rate int) (Spectrum, error) {
	if rate <= 0 {
		return Spectrum{}, fmt.Errorf("spectrum: %w: %d", core.ErrInvalidRate, rate)
	}

	bins, err := RealFFT(samples)
	if err != nil {
		return Spectrum{}, err
	}

	freqs, err := Frequencies(len(samples), rate)
	if err != nil {
		return Spectrum{}, err
	}

	return Spectrum{
		Frequencies: freqs,
		Magnitudes:  Magnitude(bins),
		Rate:        rate,
		Size:        len(samples),
	}, nil
}

// Decibels returns the magnitudes normalized to their peak and converted to
// dB, so the strongest bin reads 0 dB. Empty bins read -Inf.
func (s Spectrum) Decibels() ([]float64, error) {
	normalized, err := signal.Normalize(s.Magnitudes)
	if err != nil {
		return nil, fmt.Errorf("spectrum decibels: %w", err)
	}
	return signal.Loudness(normalized), nil
}

// Frequencies returns the bin centers k*rate/n for k = 0..n/2.
func Frequencies(n, rate int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("frequencies: %w", core.ErrEmptyInput)
	}
	if rate <= 0 {
		return nil, fmt.Errorf("frequencies: %w: %d", core.ErrInvalidRate, rate)
	}

	out := make([]float64, n/2+1)
	r := float64(rate)
	size := float64(n)
	for k := range out {
		out[k] = float64(k) * r / size
	}
	return out, nil
}

// Smooth applies a centered moving average of window bins to values. The
// output has the same length; edge bins only sum the part of the window that
// lies inside the series but still divide by window, so they taper.
func Smooth(values []float64, window int) ([]float64, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("smooth: %w", core.ErrEmptyInput)
	}
	out, err := conv.MovingAverage(values, window)
	if err != nil {
		return nil, fmt.Errorf("smooth: %w", err)
	}
	return out, nil
}

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// Bins are split into real and imaginary planes in pooled scratch memory and
// reduced with the SIMD kernels of algo-vecmath.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	buf := scratchPool.Get().(*scratchBuf)
	defer scratchPool.Put(buf)

	n := len(in)
	if cap(buf.data) < 2*n {
		buf.data = make([]float64, 2*n)
	}
	re, im := buf.data[:n], buf.data[n:2*n]
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, n)
	vecmath.Magnitude(out, re, im)
	return out
}
