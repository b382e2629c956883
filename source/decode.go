package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"

	"github.com/cwbudde/algo-wave/dsp/signal"
)

// Format is an audio container understood by [Decode].
type Format int

const (
	FormatWAV Format = iota
	FormatMP3
	FormatVorbis
)

func (f Format) String() string {
	switch f {
	case FormatWAV:
		return "wav"
	case FormatMP3:
		return "mp3"
	case FormatVorbis:
		return "ogg"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf picks the format from the extension of name.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".wav", ".wave":
		return FormatWAV, nil
	case ".mp3":
		return FormatMP3, nil
	case ".ogg", ".oga":
		return FormatVorbis, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Audio is a decoded recording with interleaved samples at nominal full
// scale 1.
type Audio struct {
	Rate     int
	Channels int
	Samples  []float64
}

// Mono averages the channels of a into one.
func (a Audio) Mono() ([]float64, error) {
	return signal.MixDown(a.Samples, a.Channels)
}

// Decode decodes an in-memory recording of the given format.
func Decode(data []byte, format Format) (Audio, error) {
	var (
		a   Audio
		err error
	)
	switch format {
	case FormatWAV:
		a, err = decodeWAV(data)
	case FormatMP3:
		a, err = decodeMP3(data)
	case FormatVorbis:
		a, err = decodeVorbis(data)
	default:
		return Audio{}, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err != nil {
		return Audio{}, fmt.Errorf("decode %s: %w", format, err)
	}
	if a.Rate <= 0 || a.Channels <= 0 {
		return Audio{}, fmt.Errorf("decode %s: invalid header: rate=%d channels=%d", format, a.Rate, a.Channels)
	}
	return a, nil
}

// WAV format tags of integer PCM streams. Extensible files carry their
// sample layout in an extension block, which go-audio reads past.
const (
	wavFormatPCM        = 0x0001
	wavFormatExtensible = 0xFFFE
)

func decodeWAV(data []byte) (Audio, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return Audio{}, errors.New("not a valid wav file")
	}
	// Only integer PCM maps onto the decoder's int buffer.
	if dec.WavAudioFormat != wavFormatPCM && dec.WavAudioFormat != wavFormatExtensible {
		return Audio{}, fmt.Errorf("unsupported wav encoding %d", dec.WavAudioFormat)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Audio{}, err
	}

	depth := int(dec.BitDepth)
	if depth < 8 || depth > 32 {
		return Audio{}, fmt.Errorf("unsupported bit depth %d", depth)
	}
	scale := float64(int64(1) << (depth - 1))
	offset := 0.0
	// 8-bit PCM is unsigned.
	if depth == 8 {
		offset = scale
	}

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = (float64(v) - offset) / scale
	}
	return Audio{
		Rate:     buf.Format.SampleRate,
		Channels: buf.Format.NumChannels,
		Samples:  samples,
	}, nil
}

func decodeMP3(data []byte) (Audio, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return Audio{}, err
	}

	// go-mp3 always emits 16-bit little-endian stereo.
	pcm, err := io.ReadAll(dec)
	if err != nil {
		return Audio{}, err
	}
	samples := make([]float64, len(pcm)/2)
	for i := range samples {
		v := int16(uint16(pcm[2*i]) | uint16(pcm[2*i+1])<<8)
		samples[i] = float64(v) / 32768.0
	}
	// Drop a trailing partial frame.
	samples = samples[:len(samples)-len(samples)%2]

	return Audio{Rate: dec.SampleRate(), Channels: 2, Samples: samples}, nil
}

func decodeVorbis(data []byte) (Audio, error) {
	pcm, format, err := oggvorbis.ReadAll(bytes.NewReader(data))
	if err != nil {
		return Audio{}, err
	}

	samples := make([]float64, len(pcm))
	for i, v := range pcm {
		samples[i] = float64(v)
	}
	return Audio{Rate: format.SampleRate, Channels: format.Channels, Samples: samples}, nil
}
