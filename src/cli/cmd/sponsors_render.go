package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sponsorsRenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the rendered sponsors fragment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := sponsorsSource(cfg)
		if err != nil {
			return err
		}
		fragment, err := src.Fetch(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), fragment)
		return nil
	},
}

func init() {
	sponsorsCmd.AddCommand(sponsorsRenderCmd)
}
