package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPSource GETs a fragment from an http(s) URL.
type HTTPSource struct {
	URL string

	client    *http.Client
	token     string
	userAgent string
	maxBytes  int64
}

func newHTTPSource(u string, opts Options) *HTTPSource {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	return &HTTPSource{
		URL:       u,
		client:    &http.Client{Timeout: timeout},
		token:     opts.Token,
		userAgent: opts.UserAgent,
		maxBytes:  maxBytes,
	}
}

func (s *HTTPSource) String() string { return s.URL }

// Fetch issues a single GET. Non-2xx responses are errors; nothing is retried.
func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return "", fmt.Errorf("fetch: create request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: GET %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 513))
		return "", fmt.Errorf("fetch: GET %s: status %d %s", s.URL, resp.StatusCode, truncateBody(body, 512))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("fetch: read %s: %w", s.URL, err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("fetch: GET %s: response exceeds %d bytes", s.URL, s.maxBytes)
	}
	return string(data), nil
}

func truncateBody(b []byte, max int) string {
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max]) + "..."
}
