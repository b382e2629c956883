// Package webdemo holds the state behind the browser front end: the chosen
// sources, uploaded recordings and the pipeline configuration.
package webdemo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cwbudde/algo-wave/dsp/core"
	"github.com/cwbudde/algo-wave/pipeline"
	"github.com/cwbudde/algo-wave/source"
)

// PlotParams are the user-tunable pipeline settings.
type PlotParams struct {
	Limit  int
	Smooth bool
	Scale  string
}

// Engine resolves selected source names to prepared traces.
type Engine struct {
	mu       sync.Mutex
	loc      source.Location
	cfg      core.PipelineConfig
	uploads  map[string]*source.Upload
	selected []string
}

// NewEngine creates an engine reading bundled recordings below baseURL.
func NewEngine(baseURL string) *Engine {
	return &Engine{
		loc:      source.Location{BaseURL: baseURL},
		cfg:      core.DefaultPipelineConfig(),
		uploads:  make(map[string]*source.Upload),
		selected: []string{"sine"},
	}
}

// SetParams validates and applies p.
func (e *Engine) SetParams(p PlotParams) error {
	if p.Limit <= 0 {
		return fmt.Errorf("limit must be > 0: %d", p.Limit)
	}
	scale, err := core.ParseScale(p.Scale)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg = core.ApplyPipelineOptions(
		core.WithLimit(p.Limit),
		core.WithSmoothing(p.Smooth),
		core.WithScale(scale),
	)
	return nil
}

// Params returns the current settings.
func (e *Engine) Params() PlotParams {
	e.mu.Lock()
	defer e.mu.Unlock()
	return PlotParams{Limit: e.cfg.Limit, Smooth: e.cfg.Smooth, Scale: e.cfg.Scale.String()}
}

// Upload registers a user-supplied recording and returns its source name.
// A later upload with the same name replaces the earlier one. Names that
// select a synthetic signal are rejected.
func (e *Engine) Upload(file string, data []byte) (string, error) {
	if _, err := source.FormatOf(file); err != nil {
		return "", err
	}
	up := source.NewUpload(file, data)
	if source.IsSynthetic(up.Name()) {
		return "", fmt.Errorf("upload %q: %w", file, source.ErrReservedName)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.uploads[up.Name()] = up
	return up.Name(), nil
}

// Sources lists everything that can be selected: uploads first, then the
// synthetic signals, then the bundled recordings.
func (e *Engine) Sources() []string {
	e.mu.Lock()
	names := make([]string, 0, len(e.uploads))
	for name := range e.uploads {
		names = append(names, name)
	}
	e.mu.Unlock()

	sort.Strings(names)
	names = append(names, "linear", "sine")
	return append(names, source.Catalog()...)
}

// Select replaces the selection.
func (e *Engine) Select(names []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selected = append(e.selected[:0], names...)
}

// Plot reads the selected sources and prepares them for kind.
func (e *Engine) Plot(ctx context.Context, kind pipeline.Kind) ([]pipeline.Trace, error) {
	e.mu.Lock()
	cfg := e.cfg
	sources := make([]source.Source, len(e.selected))
	for i, name := range e.selected {
		if up, ok := e.uploads[name]; ok {
			sources[i] = up
			continue
		}
		sources[i] = source.Select(name, e.loc)
	}
	e.mu.Unlock()

	series := make([]pipeline.Series, len(sources))
	for i, src := range sources {
		s, err := src.Read(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s source %q: %w", src.Kind(), src.Name(), err)
		}
		series[i] = s
	}
	return pipeline.PrepareAll(ctx, series, kind, cfg)
}
