package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/aoabv/datafetch/pkg/datafetch"
)

// Build-time variables set via ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		// Machine-parseable version line for pipeline consumption.
		fmt.Fprintf(cmd.OutOrStdout(), "datafetch %s (%s, %s) %s/%s\n",
			version, commit, date, runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(cmd.OutOrStdout(), "manifest format %s, generator %s\n",
			datafetch.ManifestVersion, datafetch.GeneratorIdentity)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
