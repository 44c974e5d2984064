package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/warpedwall/ninja-index/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ninja-index",
	Short: "Ninja competition video index",
	Long: `Ninja Index - An athlete appearance index for competition videos

This tool fetches YouTube video transcripts, extracts athlete appearances
with timestamps, and serves the resulting index over HTTP.

Features:
  • Transcript fetching from YouTube caption tracks
  • Athlete appearance extraction via the Anthropic API
  • Fuzzy athlete name search across index and roster
  • Roster linking for known competitors`,
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
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose logging")
}

// loadConfig loads the configuration when a command needs it
func loadConfig() {
	// Version and help output should never require a config file
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
