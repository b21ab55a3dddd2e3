package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "datafetch",
	Short: "Deterministic dataset catalog pipeline",
	Long: `datafetch parses dataset descriptors embedded in the data catalog document,
validates them against the required-field schema, and emits deterministic,
content-addressed output: a dry-run fetch plan or the full dataset manifest.

Output is byte-stable: sorted keys, id-sorted datasets, and a SHA-256 digest
over each dataset's canonical metadata. Re-running against an unchanged
catalog reproduces identical bytes.

No network I/O is performed; everything reads and writes local files.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Malformed catalog block
  12 - Descriptor failed schema validation
  13 - Duplicate or malformed dataset id
  14 - Statistics check had failing assertions
  15 - Statistics check found no metric records`,
	SilenceUsage: true,
}

// catalogPath overrides the configured source document when non-empty.
var catalogPath string

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to the catalog document (overrides config)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
