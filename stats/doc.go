// Package stats summarizes sample buffers for reporting.
//
// [Calculate] produces level figures (peak, RMS, DC, crest factor) in both
// linear and decibel form along with the zero-crossing count, which the
// wavinfo command prints next to each prepared trace.
package stats
