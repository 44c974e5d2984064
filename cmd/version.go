package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information, set at build time via ldflags
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Ninja Index %s\n", Version)
		fmt.Fprintf(cmd.OutOrStdout(), "  build time: %s\n", BuildTime)
		fmt.Fprintf(cmd.OutOrStdout(), "  commit:     %s\n", GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
