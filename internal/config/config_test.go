package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoabv/datafetch/pkg/datafetch"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `catalog: docs/other_catalog.md
manifest_out: out/manifest.json
plan_out: out/plan.json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "docs/other_catalog.md", cfg.Catalog)
	assert.Equal(t, "out/manifest.json", cfg.ManifestOut)
	assert.Equal(t, "out/plan.json", cfg.PlanOut)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("catalog: [broken\n"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrConfigNotFound))
}

func TestResolve_DefaultsWhenNothingConfigured(t *testing.T) {
	cfg, err := Resolve(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, datafetch.DefaultCatalogPath, cfg.Catalog)
	assert.Equal(t, datafetch.DefaultManifestPath, cfg.ManifestOut)
	assert.Equal(t, datafetch.StdoutTarget, cfg.PlanOut)
}

func TestResolve_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName),
		[]byte("catalog: mine.md\n"), 0644))

	cfg, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, "mine.md", cfg.Catalog)
	// Unset file fields keep their defaults.
	assert.Equal(t, datafetch.DefaultManifestPath, cfg.ManifestOut)
}

func TestResolve_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName),
		[]byte("catalog: from_file.md\nmanifest_out: from_file.json\n"), 0644))

	t.Setenv(EnvCatalog, "from_env.md")
	t.Setenv(EnvPlanOut, "plan_env.json")

	cfg, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, "from_env.md", cfg.Catalog)
	assert.Equal(t, "from_file.json", cfg.ManifestOut)
	assert.Equal(t, "plan_env.json", cfg.PlanOut)
}

func TestResolve_MalformedFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("catalog: [unclosed\n"), 0644))

	_, err := Resolve(dir)
	assert.Error(t, err)
}
