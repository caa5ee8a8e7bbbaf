package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version info, set by main from -ldflags at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print funcmeta version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("funcmeta %s (commit %s, built %s)\n", Version, GitCommit, BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
