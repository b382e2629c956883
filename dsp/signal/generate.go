package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-wave/dsp/core"
)

// DefaultRate is the sample rate of synthetic signals.
const DefaultRate = 48000

// Generator creates deterministic synthetic signals at a fixed sample rate.
type Generator struct {
	rate int
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithRate sets the sample rate in Hz. Non-positive values are ignored.
func WithRate(rate int) Option {
	return func(g *Generator) {
		if rate > 0 {
			g.rate = rate
		}
	}
}

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rate: DefaultRate,
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Rate returns the generator sample rate.
func (g *Generator) Rate() int {
	return g.rate
}

// Linear generates a ramp from -1 to 1 lasting the given number of seconds.
func (g *Generator) Linear(seconds float64) ([]float64, error) {
	n, err := g.sampleCount(seconds)
	if err != nil {
		return nil, fmt.Errorf("linear: %w", err)
	}
	return linspace(-1, 1, n), nil
}

// Sine generates a unit sine of freqHz whose phase spans a two second window
// compressed into the requested duration, as the bundled "sine" source does.
//
// With seconds == 1 this yields rate samples covering 2*freqHz cycles.
func (g *Generator) Sine(freqHz, seconds float64) ([]float64, error) {
	if freqHz < 0 {
		return nil, fmt.Errorf("sine frequency must be >= 0: %f", freqHz)
	}
	n, err := g.sampleCount(seconds)
	if err != nil {
		return nil, fmt.Errorf("sine: %w", err)
	}

	t := linspace(0, 2*seconds, n)
	out := make([]float64, n)
	for i, v := range t {
		out[i] = math.Sin(2 * math.Pi * freqHz * v)
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude, seconds float64) ([]float64, error) {
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	n, err := g.sampleCount(seconds)
	if err != nil {
		return nil, fmt.Errorf("noise: %w", err)
	}
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

func (g *Generator) sampleCount(seconds float64) (int, error) {
	if g.rate <= 0 {
		return 0, fmt.Errorf("%w: %d", core.ErrInvalidRate, g.rate)
	}
	if !(seconds > 0) {
		return 0, fmt.Errorf("duration must be > 0: %f", seconds)
	}
	n := int(math.Round(seconds * float64(g.rate)))
	if n < 1 {
		return 0, fmt.Errorf("duration %f s is shorter than one sample at %d Hz", seconds, g.rate)
	}
	return n, nil
}

// linspace returns n evenly spaced values over [start, stop] inclusive.
func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	out[n-1] = stop
	return out
}
