package cli

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/aoabv/datafetch/internal/catalog"
	"github.com/aoabv/datafetch/internal/logging"
	"github.com/aoabv/datafetch/internal/metrics"
	"github.com/aoabv/datafetch/pkg/datafetch"
)

var (
	checkMetrics       string
	checkTargets       string
	checkAssertionsOut string
	checkSkipInitial   int
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate simulation metrics against target ranges",
	Long: `Aggregate line-delimited simulation metrics and compare the summary
statistics against the target ranges file.

Inputs:
  --metrics   NDJSON records, one {"t": tick, "global": {...}} per line
  --targets   CSV with metric,min,max,notes rows

The summary is printed as sorted key=value lines; one assertion per target is
written to --assertions-out. Any failing assertion yields a nonzero exit.

Examples:
  datafetch check --metrics out/metrics.ndjson \
    --targets targets/v0_2.csv \
    --assertions-out out/assertions.json --skip-initial 120`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkMetrics, "metrics", "", "Metrics NDJSON file (required)")
	checkCmd.Flags().StringVar(&checkTargets, "targets", "", "Targets CSV file (required)")
	checkCmd.Flags().StringVar(&checkAssertionsOut, "assertions-out", "", "Assertions JSON output path (required)")
	checkCmd.Flags().IntVar(&checkSkipInitial, "skip-initial", 0, "Skip ticks below this threshold (spin-up exclusion)")
	_ = checkCmd.MarkFlagRequired("metrics")
	_ = checkCmd.MarkFlagRequired("targets")
	_ = checkCmd.MarkFlagRequired("assertions-out")
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	targets, err := metrics.LoadTargets(checkTargets)
	if err != nil {
		return err
	}
	records, err := metrics.LoadRecords(checkMetrics, checkSkipInitial)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("%w in %s", datafetch.ErrNoMetrics, checkMetrics)
	}
	logger.Verbose("aggregating %d record(s) against %d target(s)", len(records), len(targets))

	summary := metrics.Summarize(records)
	for _, key := range metrics.SortedKeys(summary) {
		value := summary[key]
		if math.IsNaN(value) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s=nan\n", key)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%.6f\n", key, value)
		}
	}

	assertions := metrics.Evaluate(summary, targets)
	encoded, err := catalog.EncodePretty(metrics.Document(assertions))
	if err != nil {
		return err
	}
	if err := os.WriteFile(checkAssertionsOut, encoded, 0644); err != nil {
		return err
	}

	if failed := metrics.Failures(assertions); len(failed) > 0 {
		logger.Error("%s Validation FAIL:", statusMark(os.Stderr, false))
		for _, a := range failed {
			if a.Value == nil {
				logger.Error(" - %s: no value, expected [%v, %v]", a.Metric, a.Min, a.Max)
				continue
			}
			logger.Error(" - %s: %.6f not in [%v, %v]", a.Metric, *a.Value, a.Min, a.Max)
		}
		return fmt.Errorf("%w: %d of %d assertion(s)", datafetch.ErrAssertionsFailed, len(failed), len(assertions))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%s Validation PASS\n", statusMark(cmd.OutOrStdout(), true))
	return nil
}
