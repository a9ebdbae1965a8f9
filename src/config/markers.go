package config

import (
	"strings"

	"github.com/sofmeright/readmesync/src/readme"
)

// Default marker strings.
const (
	DefaultMarkerLine  = "## Sponsors"
	DefaultStartMarker = "<!-- start-insert -->"
	DefaultEndMarker   = "<!-- end-insert -->"
)

// MarkersConfig holds the marker lines. Start and End stay empty unless
// configured, so their presence can select dual-marker mode.
type MarkersConfig struct {
	Line  string `yaml:"line" toml:"line"`   // single mode anchor
	Start string `yaml:"start" toml:"start"` // dual mode region start
	End   string `yaml:"end" toml:"end"`     // dual mode region end
}

// DefaultMarkersConfig returns the single-mode default anchor.
func DefaultMarkersConfig() MarkersConfig {
	return MarkersConfig{Line: DefaultMarkerLine}
}

// ResolvedMode returns the configured mode. With no explicit mode, dual is
// selected when a start or end marker was configured, single otherwise.
func (c *Config) ResolvedMode() (readme.Mode, error) {
	if strings.TrimSpace(c.Mode) != "" {
		return readme.ParseMode(c.Mode)
	}
	if c.Markers.Start != "" || c.Markers.End != "" {
		return readme.ModeDual, nil
	}
	return readme.ModeSingle, nil
}

// ReadmeMarkers converts the configuration into updater markers, filling in
// defaults for whichever markers the selected mode needs.
func (c *Config) ReadmeMarkers() (readme.Markers, error) {
	mode, err := c.ResolvedMode()
	if err != nil {
		return readme.Markers{}, err
	}
	if mode == readme.ModeDual {
		return readme.DualMarkers(
			orDefault(c.Markers.Start, DefaultStartMarker),
			orDefault(c.Markers.End, DefaultEndMarker),
		), nil
	}
	return readme.SingleMarker(orDefault(c.Markers.Line, DefaultMarkerLine)), nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
