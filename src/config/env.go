package config

import "os"

// LookupFunc retrieves an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// envBinding maps an environment variable to the field it overrides.
type envBinding struct {
	key   string
	field func(c *Config) *string
}

var envBindings = []envBinding{
	{"FILE_PATH", func(c *Config) *string { return &c.File }},
	{"UPDATE_MODE", func(c *Config) *string { return &c.Mode }},
	{"MARKER_LINE", func(c *Config) *string { return &c.Markers.Line }},
	{"START_MARKER", func(c *Config) *string { return &c.Markers.Start }},
	{"END_MARKER", func(c *Config) *string { return &c.Markers.End }},
	{"MARKUP_URL", func(c *Config) *string { return &c.Source.URL }},
	{"MARKUP_TOKEN", func(c *Config) *string { return &c.Source.Token }},
	{"FETCH_TIMEOUT", func(c *Config) *string { return &c.Source.Timeout }},
	{"GH_TOKEN", func(c *Config) *string { return &c.Sponsors.GitHub.Token }},
	{"GITHUB_TOKEN", func(c *Config) *string { return &c.Sponsors.GitHub.Token }},
	{"POLAR_TOKEN", func(c *Config) *string { return &c.Sponsors.Polar.Token }},
	{"SPONSORS_FILE", func(c *Config) *string { return &c.Sponsors.File }},
	{"LOGO_DATA_SOURCE", func(c *Config) *string { return &c.Sponsors.Logos }},
}

// ApplyEnv overrides configuration with environment variables. Unset and
// empty variables leave the current value alone. GITHUB_TOKEN wins over
// GH_TOKEN when both are set.
func (c *Config) ApplyEnv(lookup LookupFunc) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for _, b := range envBindings {
		if v, ok := lookup(b.key); ok && v != "" {
			*b.field(c) = v
		}
	}
}
