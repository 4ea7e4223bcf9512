package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codegirl-007/kiddos-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kiddos-api",
	Short: "Kiddos video catalog API server",
	Long: `Kiddos API - A family-safe video catalog for a parent-curated set of channels.

The server mirrors video metadata from curated YouTube channels into a
local cache and serves it with filtering, sorting and pagination. The
cache is refreshed in the background when it goes stale, or on demand.

Features:
  • Parent-curated channel list
  • Local video cache with a configurable TTL
  • Automatic background refresh with per-channel failure isolation
  • Manual refresh endpoint with progress guarding`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Set up configuration loading with lazy initialization
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it
// This is called lazily only when a command that needs config runs
func loadConfig() {
	// Version and help never need config
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
