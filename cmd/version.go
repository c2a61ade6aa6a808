package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set with -ldflags at build time
var (
	Version   = "dev"
	CommitSHA = "unknown"
	BuildTime = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of the application",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = fmt.Fprintf(
			cmd.OutOrStdout(),
			"version=%s commit=%s built: %s",
			Version,
			CommitSHA,
			BuildTime,
		)
	},
}

//nolint:gochecknoinits
func init() {
	rootCmd.AddCommand(versionCmd)
}
