package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofmeright/readmesync/src/config"
	"github.com/sofmeright/readmesync/src/output"
	"github.com/sofmeright/readmesync/src/version"
)

var (
	cfgFile string
	envFile string
	verbose bool
	cfg     *config.Config
	out     = output.NewPrinter(false)
)

var rootCmd = &cobra.Command{
	Use:   "readmesync",
	Short: "Splice sponsor fragments into README files",
	Long: `readmesync fetches a sponsor/supporter fragment and splices it into a
README at a marker line (single-marker mode) or between a start and an end
marker (dual-marker mode).

Settings come from .readmesync.yml (or .toml), then .env, then the
environment (FILE_PATH, MARKUP_URL, MARKER_LINE, START_MARKER, END_MARKER,
...), then flags.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		out.Verbose = verbose
		// Skip config loading for commands that don't need it.
		if cmd.Name() == "version" {
			return nil
		}
		if err := config.LoadDotEnv(envFile); err != nil {
			return err
		}
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg.ApplyEnv(nil)
		return version.Require(cfg.RequiredVersion, version.Version)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .readmesync.yml or .readmesync.toml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded into the environment if present")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		out.Error(err)
		return err
	}
	return nil
}
