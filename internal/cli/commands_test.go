package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores package-level flag state between executions so one
// test's flags never leak into the next.
func resetFlags() {
	catalogPath = ""
	validateSample = false
	planSample = false
	planOut = ""
	manifestSample = false
	manifestOut = ""
	checkMetrics = ""
	checkTargets = ""
	checkAssertionsOut = ""
	checkSkipInitial = 0
}

// execute runs the root command with args and captures combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// datasetBlock renders one complete fenced catalog block.
func datasetBlock(id string, sample bool) string {
	return fmt.Sprintf("```yaml\n"+
		"id: %s\n"+
		"provider: ecmwf\n"+
		"product: reanalysis-era5-single-levels\n"+
		"version: \"1\"\n"+
		"format: [netcdf, csv]\n"+
		"access:\n"+
		"  method: http\n"+
		"  url: \"https://example.org/%s\"\n"+
		"  auth: none\n"+
		"spatial_resolution: 0.25deg\n"+
		"temporal_coverage: 1979-present\n"+
		"variables:\n"+
		"  - t2m\n"+
		"  - tp\n"+
		"license: CC-BY-4.0\n"+
		"sample: %v\n"+
		"notes: test fixture\n"+
		"```\n", id, id, sample)
}

// writeCatalog writes a catalog document of the given blocks and returns its path.
func writeCatalog(t *testing.T, blocks ...string) string {
	t.Helper()
	doc := "# Data Catalog\n\nNarrative text around the blocks.\n\n"
	for _, b := range blocks {
		doc += b + "\nMore prose.\n\n"
	}
	path := filepath.Join(t.TempDir(), "data_catalog.md")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	return path
}

func TestCommandRegistration(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"validate", "plan", "manifest", "check", "version"} {
		assert.True(t, names[want], "command %s not registered", want)
	}
}

func TestCommandFlags(t *testing.T) {
	assert.NotNil(t, validateCmd.Flags().Lookup("sample"))
	assert.NotNil(t, planCmd.Flags().Lookup("sample"))
	assert.NotNil(t, planCmd.Flags().Lookup("out"))
	assert.NotNil(t, manifestCmd.Flags().Lookup("sample"))
	assert.NotNil(t, manifestCmd.Flags().Lookup("out"))
	assert.NotNil(t, checkCmd.Flags().Lookup("metrics"))
	assert.NotNil(t, checkCmd.Flags().Lookup("targets"))
	assert.NotNil(t, checkCmd.Flags().Lookup("assertions-out"))
	assert.NotNil(t, checkCmd.Flags().Lookup("skip-initial"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("catalog"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "datafetch")
	assert.Contains(t, out, "manifest format 0.1")
}
