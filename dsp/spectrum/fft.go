package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-wave/dsp/core"
)

// RealFFT returns the non-negative-frequency DFT bins X[0..N/2] of samples.
func RealFFT(samples []float64) ([]complex128, error) {
	n := len(samples)
	if n == 0 {
		return nil, fmt.Errorf("spectrum: %w", core.ErrEmptyInput)
	}

	in := make([]complex128, n)
	for i, v := range samples {
		in[i] = complex(v, 0)
	}

	full, err := dft(in)
	if err != nil {
		return nil, err
	}
	return full[:n/2+1], nil
}

// directThreshold is the length below which the O(N^2) sum beats FFT plan
// setup.
const directThreshold = 64

// dft computes the forward DFT of x for any length. Only power-of-two
// algo-fft plans are used: its mixed-radix plans accept other sizes but
// lose accuracy at some of them (48000 among them), so those lengths go
// through bluestein.
func dft(x []complex128) ([]complex128, error) {
	n := len(x)
	if n < directThreshold {
		return direct(x), nil
	}
	if isPowerOf2(n) {
		return forward(x)
	}
	return bluestein(x)
}

func direct(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for j, v := range x {
			// (j*k) mod n keeps the twiddle angle in [0, 2*pi).
			sum += v * cmplx.Rect(1, -2*math.Pi*float64((j*k)%n)/float64(n))
		}
		out[k] = sum
	}
	return out
}

func forward(x []complex128) ([]complex128, error) {
	plan, err := algofft.NewPlan64(len(x))
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}
	out := make([]complex128, len(x))
	if err := plan.Forward(out, x); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}
	return out, nil
}

// bluestein evaluates an arbitrary-length DFT as a circular convolution of
// chirp-modulated sequences of power-of-two length m >= 2n-1:
//
//	X[k] = w[k] * sum_j (x[j] w[j]) conj(w[k-j]),  w[j] = exp(-i*pi*j^2/n)
func bluestein(x []complex128) ([]complex128, error) {
	n := len(x)
	m := nextPowerOf2(2*n - 1)

	// j^2 mod 2n keeps the chirp phase small and exact for large j.
	chirp := make([]complex128, n)
	twoN := int64(2 * n)
	for j := range chirp {
		jj := int64(j)
		phase := math.Pi * float64((jj*jj)%twoN) / float64(n)
		chirp[j] = cmplx.Rect(1, -phase)
	}

	a := make([]complex128, m)
	for j := range n {
		a[j] = x[j] * chirp[j]
	}

	b := make([]complex128, m)
	b[0] = cmplx.Conj(chirp[0])
	for j := 1; j < n; j++ {
		c := cmplx.Conj(chirp[j])
		b[j] = c
		b[m-j] = c
	}

	plan, err := algofft.NewPlan64(m)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	aFreq := make([]complex128, m)
	if err := plan.Forward(aFreq, a); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}
	bFreq := make([]complex128, m)
	if err := plan.Forward(bFreq, b); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	// ifft(C) = conj(fft(conj(C))) / m, which only relies on the forward
	// transform's scaling.
	for i := range aFreq {
		aFreq[i] = cmplx.Conj(aFreq[i] * bFreq[i])
	}
	conv := make([]complex128, m)
	if err := plan.Forward(conv, aFreq); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	out := make([]complex128, n)
	scale := 1 / float64(m)
	for k := range out {
		c := cmplx.Conj(conv[k])
		out[k] = chirp[k] * complex(real(c)*scale, imag(c)*scale)
	}
	return out, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

func isPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
