package source

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-wave/dsp/signal"
	"github.com/cwbudde/algo-wave/pipeline"
)

// SineFrequency is the frequency of the synthetic sine in Hz.
const SineFrequency = 8

// Linear is a two second ramp from -1 to 1 at signal.DefaultRate.
type Linear struct {
	gen *signal.Generator
}

// NewLinear returns the "linear" test signal.
func NewLinear(opts ...signal.Option) *Linear {
	return &Linear{gen: signal.NewGenerator(opts...)}
}

func (l *Linear) Name() string { return "linear" }
func (l *Linear) Kind() Kind   { return KindLinear }

func (l *Linear) Read(context.Context) (pipeline.Series, error) {
	samples, err := l.gen.Linear(2)
	if err != nil {
		return pipeline.Series{}, fmt.Errorf("linear source: %w", err)
	}
	return pipeline.Series{Rate: l.gen.Rate(), Samples: samples, Label: l.Name()}, nil
}

// Sine is one second of samples holding a SineFrequency Hz sine evaluated
// over a two second phase span.
type Sine struct {
	gen *signal.Generator
}

// NewSine returns the "sine" test signal.
func NewSine(opts ...signal.Option) *Sine {
	return &Sine{gen: signal.NewGenerator(opts...)}
}

func (s *Sine) Name() string { return "sine" }
func (s *Sine) Kind() Kind   { return KindSine }

func (s *Sine) Read(context.Context) (pipeline.Series, error) {
	samples, err := s.gen.Sine(SineFrequency, 1)
	if err != nil {
		return pipeline.Series{}, fmt.Errorf("sine source: %w", err)
	}
	return pipeline.Series{Rate: s.gen.Rate(), Samples: samples, Label: s.Name()}, nil
}
