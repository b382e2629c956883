package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-wave/pipeline"
)

var (
	// ErrUnknownFormat is returned for file names whose extension maps to
	// no supported codec.
	ErrUnknownFormat = errors.New("source: unknown audio format")
	// ErrNoLocation is returned when a file source has neither a directory
	// nor a base URL to read from.
	ErrNoLocation = errors.New("source: no location configured")
	// ErrInvalidName is returned for file names that would escape the audio
	// directory.
	ErrInvalidName = errors.New("source: invalid file name")
	// ErrReservedName is returned for uploads that would shadow a
	// synthetic signal.
	ErrReservedName = errors.New("source: reserved name")
)

// Source produces one signal.
type Source interface {
	// Name is the display label of the signal.
	Name() string
	// Kind reports which variant the source is.
	Kind() Kind
	// Read loads the signal. Decoded recordings are mono and normalized.
	Read(ctx context.Context) (pipeline.Series, error)
}

// Kind enumerates the source variants.
type Kind int

const (
	KindFile Kind = iota
	KindUpload
	KindLinear
	KindSine
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindUpload:
		return "upload"
	case KindLinear:
		return "linear"
	case KindSine:
		return "sine"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Select returns the source for name: the synthetic signals for "linear"
// and "sine" (case-insensitive), a bundled file read from loc otherwise.
func Select(name string, loc Location) Source {
	switch strings.ToLower(name) {
	case "linear":
		return NewLinear()
	case "sine":
		return NewSine()
	default:
		return NewFile(name, loc)
	}
}

// IsSynthetic reports whether name selects one of the synthetic signals.
func IsSynthetic(name string) bool {
	switch strings.ToLower(name) {
	case "linear", "sine":
		return true
	}
	return false
}

// stem strips directories and the extension from a file name.
func stem(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
