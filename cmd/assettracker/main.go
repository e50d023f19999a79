// Package main provides the AssetTracker CLI application entry point.
// AssetTracker is an interactive shell for tracking company computers and cellphones.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"assettracker/internal/config"
	"assettracker/internal/logger"
	"assettracker/internal/version"
)

var (
	configFile string
	cfg        *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "assettracker",
	Short: "AssetTracker - track company assets across offices",
	Long: `AssetTracker is an interactive shell for tracking computers and cellphones
across offices, with expiry highlighting, paginated listing and record editing.`,
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
	RunE:              runShell,
}

// seedCmd loads the bundled mock offices and assets into an empty database
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample offices and assets into an empty database",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.GetDetailedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/assettracker/config.yaml)")
	flags.String(config.KeyDB, "assettracker.db", "SQLite database path")
	flags.Int(config.KeyPageSize, 20, "Rows per page when listing assets")
	flags.String(config.KeyLogLevel, "", "Set log level (debug|info|warn|error) [default: warn]")
	flags.String(config.KeyLogFile, "", "Write logs to file instead of stderr")
	flags.Bool(config.KeyPlain, false, "Disable colors and markdown rendering")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(config.Options{
		ConfigFile: configFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return err
	}
	cfg = loaded

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("error configuring logger: %w", err)
	}
	return nil
}
