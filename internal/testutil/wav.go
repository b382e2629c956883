package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV encodes interleaved 16-bit PCM frames into dir/name and returns
// the file path.
func WriteWAV(t *testing.T, dir, name string, sampleRate, channels int, data []int) string {
	t.Helper()
	return WriteWAVFormat(t, dir, name, sampleRate, channels, 16, 1, data)
}

// WriteWAVFormat is WriteWAV with an explicit bit depth and format tag.
func WriteWAVFormat(t *testing.T, dir, name string, sampleRate, channels, bitDepth, audioFormat int, data []int) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create fixture dir: %v", err)
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, audioFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("finalize fixture: %v", err)
	}
	return path
}
