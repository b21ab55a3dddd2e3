package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aoabv/datafetch/internal/catalog"
)

var (
	manifestSample bool
	manifestOut    string
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Emit the deterministic dataset manifest",
	Long: `Build the versioned manifest enumerating every validated dataset with all
of its metadata and a meta_sha256 digest over the canonical projection.

The manifest is written as pretty-printed JSON with sorted keys, id-sorted
datasets, and a trailing newline; parent directories are created as needed.
The write is a whole-file replacement, and nothing is written if any dataset
fails validation.

Examples:
  # Write the default manifest path
  datafetch manifest

  # Sample datasets only, custom path
  datafetch manifest --sample --out /tmp/manifest.json`,
	Args: cobra.NoArgs,
	RunE: runManifest,
}

func init() {
	rootCmd.AddCommand(manifestCmd)
	manifestCmd.Flags().BoolVar(&manifestSample, "sample", false, "Restrict to datasets flagged sample: true")
	manifestCmd.Flags().StringVar(&manifestOut, "out", "", "Output path (default from config)")
}

func runManifest(cmd *cobra.Command, args []string) error {
	p, err := newPipeline(cmd)
	if err != nil {
		return err
	}

	datasets, err := p.loadCatalog(manifestSample)
	if err != nil {
		return err
	}

	manifest, err := p.canon.BuildManifest(datasets, manifestSample)
	if err != nil {
		return err
	}
	encoded, err := catalog.EncodePretty(manifest)
	if err != nil {
		return err
	}

	target := manifestOut
	if target == "" {
		target = p.cfg.ManifestOut
	}
	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(target, encoded, 0644); err != nil {
		return err
	}
	p.logger.Info("Wrote manifest → %s", target)
	return nil
}
