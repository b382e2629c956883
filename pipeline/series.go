package pipeline

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-wave/dsp/core"
	"github.com/cwbudde/algo-wave/dsp/signal"
)

// ErrUnknownKind is returned for plot kinds other than waveform and
// frequency.
var ErrUnknownKind = errors.New("pipeline: unknown plot kind")

// Series is one signal to plot. Color and Label are opaque to the pipeline
// and are passed through to the resulting [Trace].
type Series struct {
	Rate    int
	Samples []float64
	Color   string
	Label   string
}

// NewSeries validates rate and samples and returns a Series holding its
// own copy of samples.
func NewSeries(rate int, samples []float64, color, label string) (Series, error) {
	if rate <= 0 {
		return Series{}, fmt.Errorf("series %q: %w: %d", label, core.ErrInvalidRate, rate)
	}
	if len(samples) == 0 {
		return Series{}, fmt.Errorf("series %q: %w", label, core.ErrEmptyInput)
	}

	return Series{
		Rate:    rate,
		Samples: append([]float64(nil), samples...),
		Color:   color,
		Label:   label,
	}, nil
}

// Duration returns the series length in seconds.
func (s Series) Duration() float64 {
	d, err := signal.Duration(len(s.Samples), s.Rate)
	if err != nil {
		return 0
	}
	return d
}

// Kind selects the plot a series is prepared for.
type Kind int

const (
	// KindWaveform plots samples against time.
	KindWaveform Kind = iota
	// KindFrequency plots the magnitude spectrum against frequency.
	KindFrequency
)

func (k Kind) String() string {
	switch k {
	case KindWaveform:
		return "waveform"
	case KindFrequency:
		return "frequency"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a plot name to its Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "waveform", "wave", "time":
		return KindWaveform, nil
	case "frequency", "freq", "spectrum":
		return KindFrequency, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}
