// Package config resolves readmesync settings from a config file, a .env
// file, the environment, and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config files probed, in order, when no path is given.
var defaultConfigFiles = []string{".readmesync.yml", ".readmesync.yaml", ".readmesync.toml"}

// Config is the top-level readmesync configuration.
type Config struct {
	RequiredVersion string `yaml:"required_version" toml:"required_version"` // semver constraint on the running build

	File    string        `yaml:"file" toml:"file"`     // document to update
	Mode    string        `yaml:"mode" toml:"mode"`     // single, dual, or empty to infer from markers
	Strict  bool          `yaml:"strict" toml:"strict"` // marker-not-found exits non-zero
	Markers MarkersConfig `yaml:"markers" toml:"markers"`

	Source   SourceConfig   `yaml:"source" toml:"source"`
	Sponsors SponsorsConfig `yaml:"sponsors" toml:"sponsors"`
	Guard    GuardConfig    `yaml:"guard" toml:"guard"`
	Git      GitConfig      `yaml:"git" toml:"git"`
}

// Load reads configuration from a YAML or TOML file (chosen by extension).
// If path is empty, it tries the default files.
// Returns sensible defaults if no file exists.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		for _, name := range defaultConfigFiles {
			if _, err := os.Stat(name); err == nil {
				path = name
				break
			}
		}
		if path == "" {
			return defaults(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, err
	}

	cfg := defaults()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDotEnv exports variables from a .env file into the process
// environment without overriding variables that are already set.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		File:     "README.md",
		Markers:  DefaultMarkersConfig(),
		Source:   DefaultSourceConfig(),
		Sponsors: DefaultSponsorsConfig(),
		Guard:    DefaultGuardConfig(),
		Git:      DefaultGitConfig(),
	}
}
