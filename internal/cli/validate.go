package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateSample bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate catalog entries",
	Long: `Validate every dataset descriptor in the catalog document.

This command checks:
1. Block grammar (each fenced block must parse)
2. Required-field schema, access sub-fields, non-empty format/variables
3. Duplicate ids and the id format across the whole catalog

The first violation aborts with a message naming the dataset and defect.

Examples:
  # Validate the full catalog
  datafetch validate

  # Validate only sample-flagged datasets
  datafetch validate --sample`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateSample, "sample", false, "Restrict to datasets flagged sample: true")
}

func runValidate(cmd *cobra.Command, args []string) error {
	p, err := newPipeline(cmd)
	if err != nil {
		return err
	}

	datasets, err := p.loadCatalog(validateSample)
	if err != nil {
		return err
	}
	if err := p.validator.CheckCatalog(datasets); err != nil {
		return err
	}

	suffix := ""
	if validateSample {
		suffix = " (sample mode)"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "OK: %d dataset(s) validated%s.\n", len(datasets), suffix)
	return nil
}
