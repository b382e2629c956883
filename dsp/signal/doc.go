// Package signal prepares time-domain sample buffers for rendering.
//
// All functions are pure: they never modify their inputs and return freshly
// allocated slices. Failures are reported with the sentinel errors from
// [github.com/cwbudde/algo-wave/dsp/core], wrapped with the offending value.
package signal
