package stats

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wave/dsp/core"
)

// Stats holds level statistics of a sample buffer.
type Stats struct {
	Length        int
	DC            float64 // mean
	Min           float64
	Max           float64
	Peak          float64 // max(|min|, |max|)
	PeakDB        float64
	RMS           float64
	RMSDB         float64
	CrestFactor   float64 // peak / RMS
	CrestFactorDB float64
	ZeroCrossings int
}

func empty() Stats {
	return Stats{
		PeakDB:        math.Inf(-1),
		RMSDB:         math.Inf(-1),
		CrestFactorDB: math.Inf(-1),
	}
}

// Calculate summarizes samples. An empty buffer yields zero levels with
// -Inf decibel fields.
func Calculate(samples []float64) Stats {
	n := len(samples)
	if n == 0 {
		return empty()
	}

	minVal, maxVal := samples[0], samples[0]
	crossings := 0
	for i, x := range samples {
		minVal = min(minVal, x)
		maxVal = max(maxVal, x)
		if i > 0 && samples[i-1]*x < 0 {
			crossings++
		}
	}

	nf := float64(n)
	peak := vecmath.MaxAbs(samples)
	rms := math.Sqrt(vecmath.DotProduct(samples, samples) / nf)

	s := Stats{
		Length:        n,
		DC:            vecmath.Sum(samples) / nf,
		Min:           minVal,
		Max:           maxVal,
		Peak:          peak,
		PeakDB:        core.LinearToDB(peak),
		RMS:           rms,
		RMSDB:         core.LinearToDB(rms),
		ZeroCrossings: crossings,
	}
	if rms > 0 {
		s.CrestFactor = peak / rms
		s.CrestFactorDB = core.LinearToDB(s.CrestFactor)
	}
	return s
}

// Duration returns the buffer length in seconds at rate, or 0 for a
// non-positive rate.
func (s Stats) Duration(rate int) float64 {
	if rate <= 0 {
		return 0
	}
	return float64(s.Length) / float64(rate)
}
