package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofmeright/readmesync/src/config"
	"github.com/sofmeright/readmesync/src/fetch"
	"github.com/sofmeright/readmesync/src/sponsors"
	"github.com/sofmeright/readmesync/src/version"
)

var sponsorsCmd = &cobra.Command{
	Use:   "sponsors",
	Short: "Render sponsors from GitHub Sponsors, Polar and sponsor lists",
	Long: `Collect sponsorships from GitHub Sponsors (GITHUB_TOKEN), Polar
(POLAR_TOKEN) and a static sponsor list (SPONSORS_FILE), merge them in that
order, group them by tier, and render them as HTML.

Logo overrides (LOGO_DATA_SOURCE) replace avatars with company logos and
reveal private sponsors that opted in.`,
}

func init() {
	rootCmd.AddCommand(sponsorsCmd)
}

// sponsorsSource builds the sponsors fragment source from configuration.
func sponsorsSource(c *config.Config) (*sponsors.Source, error) {
	timeout, err := c.Source.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	opts := fetch.Options{Timeout: timeout, UserAgent: version.UserAgent()}

	src := &sponsors.Source{Logos: c.Sponsors.Logos, Options: opts}
	if c.Sponsors.GitHub.Token != "" {
		src.Providers = append(src.Providers, sponsors.NewGitHub(c.Sponsors.GitHub.Token, c.Sponsors.GitHub.BaseURL))
	}
	if c.Sponsors.Polar.Token != "" {
		src.Providers = append(src.Providers, sponsors.NewPolar(c.Sponsors.Polar.Token, c.Sponsors.Polar.BaseURL))
	}
	if c.Sponsors.File != "" {
		src.Providers = append(src.Providers, &sponsors.List{Location: c.Sponsors.File, Options: opts})
	}
	if len(src.Providers) == 0 {
		return nil, fmt.Errorf("no sponsor sources: set GITHUB_TOKEN, POLAR_TOKEN or SPONSORS_FILE (sponsors.file)")
	}
	return src, nil
}
