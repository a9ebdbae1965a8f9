package config

import (
	"errors"
	"fmt"

	"github.com/sofmeright/readmesync/src/version"
)

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var errs []error

	if c.File == "" {
		errs = append(errs, fmt.Errorf("file: must not be empty"))
	}

	if markers, err := c.ReadmeMarkers(); err != nil {
		errs = append(errs, fmt.Errorf("mode: %w", err))
	} else if err := markers.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("markers: %w", err))
	}

	if _, err := c.Source.TimeoutDuration(); err != nil {
		errs = append(errs, fmt.Errorf("source.timeout: %w", err))
	}

	if c.RequiredVersion != "" {
		if err := version.ValidateConstraint(c.RequiredVersion); err != nil {
			errs = append(errs, fmt.Errorf("required_version: %w", err))
		}
	}

	if c.Git.Commit && c.Git.Message == "" {
		errs = append(errs, fmt.Errorf("git.message: must not be empty when git.commit is set"))
	}

	return errors.Join(errs...)
}
