// Package cli implements the shelfd command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// rootCmd is the base command; running shelfd with no subcommand serves.
var rootCmd = &cobra.Command{
	Use:   "shelfd",
	Short: "Small REST API server for users, posts, and books",
	Long: `shelfd serves three in-memory collections (users, posts, books)
over a REST API. Collections are seeded from static data at startup and
live for the process lifetime.`,
	RunE: runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("shelfd %s (commit %s, built %s)\n", version, commit, buildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// SetVersionInfo records the build-time version variables.
func SetVersionInfo(v, c, d string) {
	version, commit, buildDate = v, c, d
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
