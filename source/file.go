package source

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-wave/dsp/signal"
	"github.com/cwbudde/algo-wave/pipeline"
)

// File is a bundled recording read from a Location.
type File struct {
	file string
	loc  Location
}

// NewFile returns the source for the recording data/audio/<file> below loc.
func NewFile(file string, loc Location) *File {
	return &File{file: file, loc: loc}
}

func (f *File) Name() string { return stem(f.file) }
func (f *File) Kind() Kind   { return KindFile }

func (f *File) Read(ctx context.Context) (pipeline.Series, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("file", f.file).Stringer("location", f.loc).Msg("reading recording")

	data, err := f.loc.Open(ctx, f.file)
	if err != nil {
		return pipeline.Series{}, err
	}
	return load(ctx, f.file, data)
}

// Upload is a recording supplied as raw bytes, such as a browser upload.
type Upload struct {
	file string
	data []byte
}

// NewUpload returns the source for data uploaded under the given file name.
// The extension of file selects the codec.
func NewUpload(file string, data []byte) *Upload {
	return &Upload{file: file, data: data}
}

func (u *Upload) Name() string { return stem(u.file) }
func (u *Upload) Kind() Kind   { return KindUpload }

func (u *Upload) Read(ctx context.Context) (pipeline.Series, error) {
	return load(ctx, u.file, u.data)
}

// load decodes data, mixes it down and normalizes it.
func load(ctx context.Context, file string, data []byte) (pipeline.Series, error) {
	format, err := FormatOf(file)
	if err != nil {
		return pipeline.Series{}, err
	}

	a, err := Decode(data, format)
	if err != nil {
		return pipeline.Series{}, fmt.Errorf("%s: %w", file, err)
	}
	mono, err := a.Mono()
	if err != nil {
		return pipeline.Series{}, fmt.Errorf("%s: %w", file, err)
	}
	normalized, err := signal.Normalize(mono)
	if err != nil {
		return pipeline.Series{}, fmt.Errorf("%s: %w", file, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("file", file).
		Stringer("format", format).
		Int("rate", a.Rate).
		Int("channels", a.Channels).
		Int("frames", len(mono)).
		Msg("decoded recording")

	return pipeline.Series{Rate: a.Rate, Samples: normalized, Label: stem(file)}, nil
}
