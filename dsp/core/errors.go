package core

import "errors"

// Errors shared by the signal preparation packages. Callers match them with
// errors.Is; packages wrap them with the offending value.
var (
	// ErrEmptyInput is returned when a transform receives a zero-length buffer.
	ErrEmptyInput = errors.New("empty input")

	// ErrDegenerateSignal is returned when a buffer has no non-zero sample
	// and cannot be scaled to unit peak.
	ErrDegenerateSignal = errors.New("degenerate signal")

	// ErrInvalidRate is returned for a non-positive sample rate.
	ErrInvalidRate = errors.New("invalid sample rate")

	// ErrLengthMismatch is returned when paired x/y series differ in length.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrInvalidLimit is returned for a non-positive point budget.
	ErrInvalidLimit = errors.New("invalid point limit")
)
