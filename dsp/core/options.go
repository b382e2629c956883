package core

import (
	"fmt"
	"math"
	"strings"
)

// Defaults applied by [DefaultPipelineConfig].
const (
	DefaultLimit  = 8192
	DefaultWindow = 16

	// DefaultFloorDB is the lowest rendered level of a dB spectrum.
	DefaultFloorDB = -120.0
)

// Scale selects the magnitude scale of a prepared frequency series.
type Scale int

const (
	// ScaleDecibel normalizes magnitudes to their peak and converts to dB.
	ScaleDecibel Scale = iota
	// ScaleLinear keeps raw |FFT| magnitudes.
	ScaleLinear
)

// String returns the flag spelling of s.
func (s Scale) String() string {
	switch s {
	case ScaleDecibel:
		return "db"
	case ScaleLinear:
		return "linear"
	default:
		return fmt.Sprintf("Scale(%d)", int(s))
	}
}

// ParseScale maps "db" or "linear" (case-insensitive) to a Scale.
func ParseScale(s string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "db", "decibel":
		return ScaleDecibel, nil
	case "linear", "lin":
		return ScaleLinear, nil
	default:
		return 0, fmt.Errorf("unknown scale %q", s)
	}
}

// PipelineConfig defines how series are prepared for rendering.
type PipelineConfig struct {
	// Limit is the maximum number of rendered points per series.
	Limit int
	// Smooth enables moving-average smoothing of frequency series.
	Smooth bool
	// Window is the moving-average window size in bins.
	Window int
	// Scale is the magnitude scale of frequency series.
	Scale Scale
	// FloorDB clips dB series from below so silent bins stay finite.
	FloorDB float64
}

// PipelineOption mutates a PipelineConfig.
type PipelineOption func(*PipelineConfig)

// DefaultPipelineConfig returns the rendering defaults.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Limit:   DefaultLimit,
		Window:  DefaultWindow,
		Scale:   ScaleDecibel,
		FloorDB: DefaultFloorDB,
	}
}

// WithLimit sets the per-series point budget.
func WithLimit(limit int) PipelineOption {
	return func(cfg *PipelineConfig) {
		if limit > 0 {
			cfg.Limit = limit
		}
	}
}

// WithSmoothing toggles spectrum smoothing.
func WithSmoothing(enabled bool) PipelineOption {
	return func(cfg *PipelineConfig) {
		cfg.Smooth = enabled
	}
}

// WithWindow sets the smoothing window size.
func WithWindow(size int) PipelineOption {
	return func(cfg *PipelineConfig) {
		if size > 0 {
			cfg.Window = size
		}
	}
}

// WithScale sets the magnitude scale of frequency series.
func WithScale(s Scale) PipelineOption {
	return func(cfg *PipelineConfig) {
		if s == ScaleDecibel || s == ScaleLinear {
			cfg.Scale = s
		}
	}
}

// WithFloorDB sets the clipping floor of dB series. It must be finite and
// below 0 dB.
func WithFloorDB(db float64) PipelineOption {
	return func(cfg *PipelineConfig) {
		if db < 0 && !math.IsInf(db, 0) {
			cfg.FloorDB = db
		}
	}
}

// ApplyPipelineOptions applies zero or more options to the default config.
func ApplyPipelineOptions(opts ...PipelineOption) PipelineConfig {
	cfg := DefaultPipelineConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
