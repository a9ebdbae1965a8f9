package version

import (
	"errors"
	"fmt"

	masterminds "github.com/Masterminds/semver/v3"
)

// These variables are injected at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns a human-readable version string.
func String() string {
	return fmt.Sprintf("readmesync %s (%s, %s)", Version, Commit, BuildDate)
}

// UserAgent is sent with every outbound request.
func UserAgent() string {
	return "readmesync/" + Version
}

// ValidateConstraint reports whether constraint is a parseable semver range.
func ValidateConstraint(constraint string) error {
	if _, err := masterminds.NewConstraint(constraint); err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	return nil
}

// Require checks that running satisfies constraint. Builds whose version
// is not semver (such as "dev") always pass.
func Require(constraint, running string) error {
	if constraint == "" {
		return nil
	}
	c, err := masterminds.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	v, err := masterminds.NewVersion(running)
	if err != nil {
		return nil
	}
	if ok, errs := c.Validate(v); !ok {
		msg := fmt.Sprintf("readmesync %s does not satisfy required_version %q", v, constraint)
		if len(errs) > 0 {
			msg += ": " + errs[0].Error()
		}
		return errors.New(msg)
	}
	return nil
}
