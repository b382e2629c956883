package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-wave/dsp/core"
	"github.com/cwbudde/algo-wave/dsp/downsample"
	"github.com/cwbudde/algo-wave/dsp/signal"
	"github.com/cwbudde/algo-wave/dsp/spectrum"
)

// Trace is a prepared series ready for rendering. X is strictly increasing.
type Trace struct {
	Kind  Kind
	X     []float64
	Y     []float64
	Color string
	Label string
}

// Len returns the number of points in the trace.
func (t Trace) Len() int { return len(t.X) }

// Prepare derives the trace of s for a plot of the given kind.
//
// Waveform traces plot the samples against t[i] = i/rate. Frequency traces
// plot the spectrum magnitudes, either raw |X[k]| on the linear scale or
// normalized to 0 dB at the peak, optionally smoothed with a centered moving
// average of cfg.Window bins. Decibel values below cfg.FloorDB, including silent bins,
// are clamped to it. Both kinds are downsampled to at most cfg.Limit
// points. Color and Label are copied from s unchanged. The trace never
// shares memory with s.Samples.
func Prepare(s Series, kind Kind, cfg core.PipelineConfig) (Trace, error) {
	var (
		x, y []float64
		err  error
	)
	switch kind {
	case KindWaveform:
		x, y, err = waveform(s)
	case KindFrequency:
		x, y, err = frequency(s, cfg)
	default:
		return Trace{}, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	if err != nil {
		return Trace{}, fmt.Errorf("prepare %s %q: %w", kind, s.Label, err)
	}

	x, y, err = downsample.LTTB(x, y, cfg.Limit)
	if err != nil {
		return Trace{}, fmt.Errorf("prepare %s %q: %w", kind, s.Label, err)
	}

	return Trace{
		Kind:  kind,
		X:     x,
		Y:     y,
		Color: s.Color,
		Label: s.Label,
	}, nil
}

func waveform(s Series) ([]float64, []float64, error) {
	if len(s.Samples) == 0 {
		return nil, nil, core.ErrEmptyInput
	}
	t, err := signal.TimeAxis(len(s.Samples), s.Rate)
	if err != nil {
		return nil, nil, err
	}
	return t, append([]float64(nil), s.Samples...), nil
}

func frequency(s Series, cfg core.PipelineConfig) ([]float64, []float64, error) {
	sp, err := spectrum.Compute(s.Samples, s.Rate)
	if err != nil {
		return nil, nil, err
	}

	var y []float64
	switch cfg.Scale {
	case core.ScaleLinear:
		y = append([]float64(nil), sp.Magnitudes...)
	default:
		y, err = sp.Decibels()
		if err == nil {
			core.FloorDB(y, cfg.FloorDB)
		}
	}
	if err != nil {
		return nil, nil, err
	}

	if cfg.Smooth {
		y, err = spectrum.Smooth(y, cfg.Window)
		if err != nil {
			return nil, nil, err
		}
	}
	return sp.Frequencies, y, nil
}

// PrepareAll prepares every series concurrently and returns the traces in
// input order. Series without a color get [ColorAt] of their position. The
// first failure cancels the remaining work and is returned.
func PrepareAll(ctx context.Context, series []Series, kind Kind, cfg core.PipelineConfig) ([]Trace, error) {
	traces := make([]Trace, len(series))

	g, ctx := errgroup.WithContext(ctx)
	for i, s := range series {
		if s.Color == "" {
			s.Color = ColorAt(i)
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tr, err := Prepare(s, kind, cfg)
			if err != nil {
				return err
			}
			traces[i] = tr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return traces, nil
}

// Range returns the shared x extent [0, hi] for plotting series together:
// the longest duration for waveforms, the highest Nyquist frequency for
// spectra.
func Range(series []Series, kind Kind) (lo, hi float64) {
	for _, s := range series {
		switch kind {
		case KindFrequency:
			if s.Rate > 0 {
				hi = max(hi, float64(s.Rate)/2)
			}
		default:
			hi = max(hi, s.Duration())
		}
	}
	return 0, hi
}
