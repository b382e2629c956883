// Package conv provides direct time-domain convolution with output modes and
// the moving-average smoother built on it.
//
// Kernels used for rendering preparation are short (a 16-tap boxcar by
// default), so only the O(N*M) direct form is offered:
//
//	full, err := conv.Direct(signal, kernel)
//	same, err := conv.ConvolveMode(signal, kernel, conv.ModeSame)
//	smooth, err := conv.MovingAverage(values, 16)
//
// [ModeSame] follows the usual centered convention: the output has the
// length of the first input and starts (len(kernel)-1)/2 samples into the
// full result. Edge samples therefore see a partial window.
package conv
