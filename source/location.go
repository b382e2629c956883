package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// AudioDir is the path of the bundled recordings below a location root.
const AudioDir = "data/audio"

// Location says where bundled recordings live. BaseURL takes precedence
// over Dir when both are set.
type Location struct {
	// Dir is a local directory containing data/audio.
	Dir string
	// BaseURL is an http(s) root serving data/audio.
	BaseURL string
	// Client fetches from BaseURL; nil means http.DefaultClient.
	Client *http.Client
}

// String describes the location for logs.
func (l Location) String() string {
	switch {
	case l.BaseURL != "":
		return l.BaseURL
	case l.Dir != "":
		return l.Dir
	default:
		return "<none>"
	}
}

// Open reads the named recording in full.
func (l Location) Open(ctx context.Context, name string) ([]byte, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	switch {
	case l.BaseURL != "":
		return l.fetch(ctx, name)
	case l.Dir != "":
		data, err := os.ReadFile(filepath.Join(l.Dir, filepath.FromSlash(AudioDir), name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrNoLocation, name)
	}
}

func (l Location) fetch(ctx context.Context, name string) ([]byte, error) {
	u, err := url.Parse(l.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	u = u.JoinPath(path.Join(AudioDir, name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status code is not OK was %d: %s", name, resp.StatusCode, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}
	return data, nil
}
