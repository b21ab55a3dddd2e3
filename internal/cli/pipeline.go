package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aoabv/datafetch/internal/catalog"
	"github.com/aoabv/datafetch/internal/checksum"
	"github.com/aoabv/datafetch/internal/config"
	"github.com/aoabv/datafetch/internal/logging"
	"github.com/aoabv/datafetch/pkg/datafetch"
)

// pipeline bundles the catalog components for one command invocation.
type pipeline struct {
	cfg       *config.ProjectConfig
	logger    datafetch.Logger
	extractor *catalog.Extractor
	validator *catalog.Validator
	canon     *catalog.Canonicalizer
}

// newPipeline resolves configuration (.env file, datafetch.yaml, environment,
// then flags) and wires the extraction/validation/canonicalization components.
func newPipeline(cmd *cobra.Command) (*pipeline, error) {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	_ = godotenv.Load()
	cfg, err := config.Resolve(".")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", datafetch.ErrInvalidConfig, err)
	}
	if catalogPath != "" {
		cfg.Catalog = catalogPath
	}
	logger.Verbose("catalog path: %s", cfg.Catalog)

	schema := catalog.DefaultSchema()
	calc := checksum.New()
	return &pipeline{
		cfg:       cfg,
		logger:    logger,
		extractor: catalog.NewExtractor(calc, logger),
		validator: catalog.NewValidator(schema, logger),
		canon:     catalog.NewCanonicalizer(schema, calc),
	}, nil
}

// loadCatalog runs extraction and per-descriptor validation. Any failure
// aborts before a single output byte is produced.
func (p *pipeline) loadCatalog(sampleOnly bool) ([]catalog.Descriptor, error) {
	extracted, err := p.extractor.ExtractFile(p.cfg.Catalog)
	if err != nil {
		return nil, err
	}
	datasets, err := p.validator.ValidateAll(extracted, sampleOnly)
	if err != nil {
		return nil, err
	}
	for _, desc := range datasets {
		id := desc[catalog.FieldID].(string)
		p.logger.Verbose("dataset %s identity %s", id, catalog.DatasetUUID(id))
	}
	return datasets, nil
}
