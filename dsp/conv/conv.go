package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput  = errors.New("conv: empty input")
	ErrEmptyKernel = errors.New("conv: empty kernel")
)

// Mode specifies the output mode for convolution.
type Mode int

const (
	// ModeFull returns the full convolution result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as the first input.
	ModeSame

	// ModeValid returns only the portion where signals fully overlap,
	// with length max(len(a), len(b)) - min(len(a), len(b)) + 1.
	ModeValid
)

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated destination.
// dst must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) {
	for i := range dst {
		dst[i] = 0
	}

	const simdThreshold = 4
	if len(b) >= simdThreshold {
		directToSIMD(dst, a, b)
	} else {
		directToScalar(dst, a, b)
	}
}

func directToScalar(dst, a, b []float64) {
	for i := range a {
		for j := range b {
			dst[i+j] += a[i] * b[j]
		}
	}
}

// directToSIMD accumulates a[i]*b into dst[i:i+len(b)] with vecmath kernels.
func directToSIMD(dst, a, b []float64) {
	temp := make([]float64, len(b))
	for i := range a {
		vecmath.ScaleBlock(temp, b, a[i])
		vecmath.AddBlockInPlace(dst[i:i+len(b)], temp)
	}
}

// ConvolveMode performs convolution with the specified output mode.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Direct(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// trimToMode extracts the appropriate portion of a full convolution result.
func trimToMode(full []float64, lenA, lenB int, mode Mode) []float64 {
	switch mode {
	case ModeSame:
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		if lenA >= lenB {
			return full[lenB-1 : lenA]
		}
		return full[lenA-1 : lenB]
	default:
		return full
	}
}

// Boxcar returns a length-n kernel of 1/n taps.
func Boxcar(n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("boxcar length must be > 0: %d", n)
	}
	k := make([]float64, n)
	for i := range k {
		k[i] = 1 / float64(n)
	}
	return k, nil
}

// MovingAverage smooths values with a centered window-tap boxcar.
//
// The output has len(values) samples. Near the edges the missing neighbors
// contribute nothing, so the first and last samples taper toward zero by the
// fraction of the window that falls outside the input.
func MovingAverage(values []float64, window int) ([]float64, error) {
	kernel, err := Boxcar(window)
	if err != nil {
		return nil, err
	}
	return ConvolveMode(values, kernel, ModeSame)
}
