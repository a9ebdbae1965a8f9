// Package fetch retrieves fragments and data files from URLs or local paths.
package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultMaxBytes = 4 << 20
)

// Source yields the raw contents of a location.
type Source interface {
	Fetch(ctx context.Context) (string, error)
	String() string
}

// Options tunes remote retrieval. Zero values select defaults.
type Options struct {
	Timeout   time.Duration
	Token     string // sent as a Bearer token to http(s) locations
	UserAgent string
	MaxBytes  int64 // response size cap
}

// New returns the source for location: http:// and https:// URLs are fetched
// remotely, file:// URLs and bare paths are read from disk.
func New(location string, opts Options) (Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("fetch: empty location")
	}

	switch {
	case IsRemote(location):
		if _, err := url.ParseRequestURI(location); err != nil {
			return nil, fmt.Errorf("fetch: invalid URL %q: %w", location, err)
		}
		return newHTTPSource(location, opts), nil
	case strings.HasPrefix(location, "file://"):
		u, err := url.Parse(location)
		if err != nil {
			return nil, fmt.Errorf("fetch: invalid URL %q: %w", location, err)
		}
		return FileSource{Path: u.Path}, nil
	}
	return FileSource{Path: location}, nil
}

// IsRemote reports whether location is an http(s) URL.
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Bytes fetches location and returns its raw contents.
func Bytes(ctx context.Context, location string, opts Options) ([]byte, error) {
	src, err := New(location, opts)
	if err != nil {
		return nil, err
	}
	s, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}
