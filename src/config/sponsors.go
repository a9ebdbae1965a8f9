package config

// SponsorsConfig configures `readmesync sponsors`.
type SponsorsConfig struct {
	GitHub GitHubSponsorsConfig `yaml:"github" toml:"github"`
	Polar  PolarSponsorsConfig  `yaml:"polar" toml:"polar"`
	File   string               `yaml:"file" toml:"file"`   // static sponsor list (JSON, YAML or TOML)
	Logos  string               `yaml:"logos" toml:"logos"` // logo overrides location
}

// GitHubSponsorsConfig configures the GitHub Sponsors source.
type GitHubSponsorsConfig struct {
	BaseURL string `yaml:"base_url" toml:"base_url"` // GitHub Enterprise server, empty for github.com
	Token   string `yaml:"-" toml:"-"`               // environment only
}

// PolarSponsorsConfig configures the Polar subscriptions source.
type PolarSponsorsConfig struct {
	BaseURL string `yaml:"base_url" toml:"base_url"` // e.g. the sandbox API, empty for api.polar.sh
	Token   string `yaml:"-" toml:"-"`               // organization access token, environment only
}

// DefaultSponsorsConfig returns an empty sponsors config.
func DefaultSponsorsConfig() SponsorsConfig {
	return SponsorsConfig{}
}

// GuardConfig controls fragment checks.
type GuardConfig struct {
	Secrets bool `yaml:"secrets" toml:"secrets"` // reject fragments containing credentials
}

// DefaultGuardConfig returns guard defaults (all checks off).
func DefaultGuardConfig() GuardConfig {
	return GuardConfig{}
}
