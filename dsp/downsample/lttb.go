package downsample

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wave/dsp/core"
)

// LTTB reduces (x, y) to at most limit points.
//
// Series with len(x) <= limit are returned as-is (the same slices). Longer
// series yield exactly limit points whose first and last entries equal the
// first and last input points; selected indices are strictly increasing,
// so an ascending x stays ascending. A limit of 1 keeps only the first point.
func LTTB(x, y []float64, limit int) ([]float64, []float64, error) {
	idx, err := Indices(x, y, limit)
	if err != nil {
		return nil, nil, err
	}
	if idx == nil {
		return x, y, nil
	}

	xr := make([]float64, len(idx))
	yr := make([]float64, len(idx))
	for i, j := range idx {
		xr[i] = x[j]
		yr[i] = y[j]
	}
	return xr, yr, nil
}

// Indices returns the positions LTTB keeps, or nil when no reduction is
// needed because len(x) <= limit.
func Indices(x, y []float64, limit int) ([]int, error) {
	if err := validate(x, y, limit); err != nil {
		return nil, err
	}

	n := len(x)
	if n <= limit {
		return nil, nil
	}
	out := make([]int, 0, limit)
	out = append(out, 0)
	if limit == 1 {
		return out, nil
	}
	if limit == 2 {
		return append(out, n-1), nil
	}

	// Interior points [1, n-1) are split into limit-2 buckets.
	every := float64(n-2) / float64(limit-2)
	bucketStart := func(i int) int {
		return int(math.Floor(float64(i)*every)) + 1
	}

	a := 0
	for i := 0; i < limit-2; i++ {
		lo, hi := bucketStart(i), bucketStart(i+1)

		nextLo, nextHi := hi, bucketStart(i+2)
		if nextHi > n {
			nextHi = n
		}
		if nextLo >= nextHi {
			nextLo, nextHi = n-1, n
		}
		avgX, avgY := mean(x[nextLo:nextHi]), mean(y[nextLo:nextHi])

		ax, ay := x[a], y[a]
		best, bestArea := lo, -1.0
		for j := lo; j < hi; j++ {
			// Twice the triangle area; the factor does not affect the argmax.
			area := math.Abs((ax-avgX)*(y[j]-ay) - (ax-x[j])*(avgY-ay))
			if area > bestArea {
				best, bestArea = j, area
			}
		}

		out = append(out, best)
		a = best
	}

	return append(out, n-1), nil
}

func validate(x, y []float64, limit int) error {
	if len(x) != len(y) {
		return fmt.Errorf("downsample: %w: len(x)=%d len(y)=%d", core.ErrLengthMismatch, len(x), len(y))
	}
	if len(x) == 0 {
		return fmt.Errorf("downsample: %w", core.ErrEmptyInput)
	}
	if limit <= 0 {
		return fmt.Errorf("downsample: %w: must be > 0: %d", core.ErrInvalidLimit, limit)
	}
	return nil
}

func mean(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}
