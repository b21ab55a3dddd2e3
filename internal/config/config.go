// Package config loads optional project configuration for the datafetch CLI.
//
// Resolution order, lowest to highest priority:
//  1. built-in defaults (pkg/datafetch constants)
//  2. datafetch.yaml in the working directory
//  3. DATAFETCH_* environment variables (a .env file loaded by the CLI
//     counts as environment)
//
// Command-line flags override all of the above; that merge happens in the
// CLI layer.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aoabv/datafetch/pkg/datafetch"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is the project configuration file looked up in the
// working directory.
const ConfigFileName = "datafetch.yaml"

// Environment variable names recognized by Resolve.
const (
	EnvCatalog     = "DATAFETCH_CATALOG"
	EnvManifestOut = "DATAFETCH_MANIFEST_OUT"
	EnvPlanOut     = "DATAFETCH_PLAN_OUT"
)

// ProjectConfig carries the configurable paths of the pipeline.
type ProjectConfig struct {
	// Catalog is the source document scanned for dataset blocks.
	Catalog string `yaml:"catalog"`

	// ManifestOut is the default target path of the manifest command.
	ManifestOut string `yaml:"manifest_out"`

	// PlanOut is the default target of the plan command ("-" for stdout).
	PlanOut string `yaml:"plan_out"`
}

// Load reads datafetch.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve returns the effective configuration for dir: defaults, overlaid
// with datafetch.yaml when present, overlaid with environment variables.
// A missing config file is not an error; a malformed one is.
func Resolve(dir string) (*ProjectConfig, error) {
	cfg := &ProjectConfig{
		Catalog:     datafetch.DefaultCatalogPath,
		ManifestOut: datafetch.DefaultManifestPath,
		PlanOut:     datafetch.StdoutTarget,
	}

	fileCfg, err := Load(dir)
	switch {
	case err == nil:
		if fileCfg.Catalog != "" {
			cfg.Catalog = fileCfg.Catalog
		}
		if fileCfg.ManifestOut != "" {
			cfg.ManifestOut = fileCfg.ManifestOut
		}
		if fileCfg.PlanOut != "" {
			cfg.PlanOut = fileCfg.PlanOut
		}
	case errors.Is(err, ErrConfigNotFound):
		// Defaults stand.
	default:
		return nil, err
	}

	if v := os.Getenv(EnvCatalog); v != "" {
		cfg.Catalog = v
	}
	if v := os.Getenv(EnvManifestOut); v != "" {
		cfg.ManifestOut = v
	}
	if v := os.Getenv(EnvPlanOut); v != "" {
		cfg.PlanOut = v
	}
	return cfg, nil
}
