// Package spectrum computes one-sided magnitude spectra of real sample
// buffers for frequency-domain plots.
//
// Transforms run on github.com/cwbudde/algo-fft plans. Power-of-two lengths
// use a single plan; any other length N is evaluated exactly (no padding or
// truncation) with Bluestein's chirp-z algorithm on top of power-of-two
// plans, so an N-sample buffer always yields N/2+1 bins at k*rate/N Hz.
package spectrum
