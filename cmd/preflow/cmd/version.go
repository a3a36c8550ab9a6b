package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/preflow/telemetry"
)

// Version information, set at build time via -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func init() {
	telemetry.Version = Version
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "preflow %s (commit %s, %s %s/%s)\n",
				Version, GitCommit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
