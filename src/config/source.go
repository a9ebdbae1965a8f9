package config

import (
	"fmt"
	"time"
)

// SourceConfig locates the fragment for `readmesync update`.
type SourceConfig struct {
	URL     string `yaml:"url" toml:"url"`         // http(s) URL, file:// URL or local path
	Timeout string `yaml:"timeout" toml:"timeout"` // Go duration, e.g. "30s"
	Token   string `yaml:"-" toml:"-"`             // bearer token, environment only
}

// DefaultSourceConfig returns the default fetch settings.
func DefaultSourceConfig() SourceConfig {
	return SourceConfig{Timeout: "30s"}
}

// TimeoutDuration parses Timeout. Empty means the fetch default.
func (s SourceConfig) TimeoutDuration() (time.Duration, error) {
	if s.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", s.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid timeout %q: must be positive", s.Timeout)
	}
	return d, nil
}
