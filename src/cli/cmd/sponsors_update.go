package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var spFlags updateFlags

var sponsorsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Render sponsors and splice them into a document",
	Long: `Render the sponsors fragment and splice it into the document, with the
same marker handling as "readmesync update".

Sponsor lists change over time. In single-marker mode (the default) a new
list is inserted above the old one and the old list is never removed, so
every change leaves a stale copy behind. To keep exactly one list, wrap it
in a start and end marker pair and select dual mode:

  <!-- start-insert -->
  <!-- end-insert -->

  readmesync sponsors update --start '<!-- start-insert -->' --end '<!-- end-insert -->'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		spFlags.apply(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		src, err := sponsorsSource(cfg)
		if err != nil {
			return err
		}
		return runUpdate(cmd.Context(), cfg, src, spFlags.dryRun)
	},
}

func init() {
	addUpdateFlags(sponsorsUpdateCmd, &spFlags)
	sponsorsCmd.AddCommand(sponsorsUpdateCmd)
}
