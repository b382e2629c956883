package signal

import (
	"fmt"

	"github.com/cwbudde/algo-wave/dsp/core"
)

// TimeAxis returns the sample instants t[i] = i/rate for i in [0, n).
//
// Every series in this module uses this convention, so the last instant is
// (n-1)/rate and the spacing is exactly one sample period.
func TimeAxis(n, rate int) ([]float64, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("time axis: %w: %d", core.ErrInvalidRate, rate)
	}
	if n < 0 {
		return nil, fmt.Errorf("time axis sample count must be >= 0: %d", n)
	}

	out := make([]float64, n)
	r := float64(rate)
	for i := range out {
		out[i] = float64(i) / r
	}
	return out, nil
}

// Duration returns n/rate in seconds.
func Duration(n, rate int) (float64, error) {
	if rate <= 0 {
		return 0, fmt.Errorf("duration: %w: %d", core.ErrInvalidRate, rate)
	}
	return float64(n) / float64(rate), nil
}
