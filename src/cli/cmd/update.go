package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofmeright/readmesync/src/fetch"
	"github.com/sofmeright/readmesync/src/version"
)

var (
	upFlags updateFlags
	upURL   string
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Splice a remote markup fragment into a document",
	Long: `Fetch the fragment at MARKUP_URL (or --url) and splice it into the
document.

Single-marker mode inserts the fragment, padded by blank lines, after the
first line equal to the marker. Running again with the same fragment is a
no-op; a changed fragment is inserted above the previous one, which stays in
place. Dual-marker mode replaces everything between the first start marker
and the following end marker.

A missing marker leaves the file untouched and prints a warning; --strict
turns it into a failure.`,
	Args: cobra.NoArgs,
	RunE: runUpdateCmd,
}

func init() {
	addUpdateFlags(updateCmd, &upFlags)
	updateCmd.Flags().StringVar(&upURL, "url", "", "fragment location: http(s) URL, file:// URL or path (env MARKUP_URL)")

	rootCmd.AddCommand(updateCmd)
}

func runUpdateCmd(cmd *cobra.Command, args []string) error {
	upFlags.apply(cmd, cfg)
	if cmd.Flags().Changed("url") {
		cfg.Source.URL = upURL
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Source.URL == "" {
		return fmt.Errorf("no fragment source: set MARKUP_URL, source.url, or --url")
	}

	timeout, _ := cfg.Source.TimeoutDuration()
	src, err := fetch.New(cfg.Source.URL, fetch.Options{
		Timeout:   timeout,
		Token:     cfg.Source.Token,
		UserAgent: version.UserAgent(),
	})
	if err != nil {
		return err
	}

	return runUpdate(cmd.Context(), cfg, src, upFlags.dryRun)
}
