package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aoabv/datafetch/internal/catalog"
	"github.com/aoabv/datafetch/pkg/datafetch"
)

var (
	planSample bool
	planOut    string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Emit a dry-run fetch plan (no network)",
	Long: `Emit the id-sorted fetch plan for every validated dataset:
one entry per dataset with its id, the access coordinates a fetch would use,
and the canonical metadata digest.

No fetching is performed; the plan only describes what a fetch would do.

Examples:
  # Plan to stdout
  datafetch plan

  # Sample datasets only, written to a file
  datafetch plan --sample --out data/plan.json`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().BoolVar(&planSample, "sample", false, "Restrict to datasets flagged sample: true")
	planCmd.Flags().StringVar(&planOut, "out", "", "Output path, or '-' for stdout (default from config)")
}

func runPlan(cmd *cobra.Command, args []string) error {
	p, err := newPipeline(cmd)
	if err != nil {
		return err
	}

	datasets, err := p.loadCatalog(planSample)
	if err != nil {
		return err
	}

	plan, err := p.canon.BuildPlan(datasets)
	if err != nil {
		return err
	}
	encoded, err := catalog.EncodePretty(plan)
	if err != nil {
		return err
	}

	target := planOut
	if target == "" {
		target = p.cfg.PlanOut
	}
	if target == datafetch.StdoutTarget {
		_, err = cmd.OutOrStdout().Write(encoded)
		return err
	}
	if err := os.WriteFile(target, encoded, 0644); err != nil {
		return err
	}
	p.logger.Info("Wrote plan → %s", target)
	return nil
}
