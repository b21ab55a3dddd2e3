package catalog

import (
	"fmt"
	"os"
	"regexp"

	"github.com/aoabv/datafetch/internal/checksum"
	"github.com/aoabv/datafetch/pkg/datafetch"
)

// fencedBlockRegex locates ```yaml fenced blocks anywhere in the document.
// Non-greedy so adjacent blocks are captured separately.
var fencedBlockRegex = regexp.MustCompile("(?s)```yaml(.*?)```")

// Extractor scans a source document for fenced dataset blocks and parses
// each into a Descriptor.
type Extractor struct {
	calc   checksum.Calculator
	logger datafetch.Logger
}

// NewExtractor creates an Extractor. The calculator provides the raw
// document digest reported in verbose output for traceability.
func NewExtractor(calc checksum.Calculator, logger datafetch.Logger) *Extractor {
	return &Extractor{calc: calc, logger: logger}
}

// ExtractFile reads the source document at path and extracts its descriptors.
func (e *Extractor) ExtractFile(path string) ([]Descriptor, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	e.logger.Verbose("catalog %s sha256=%s", path, e.calc.CalculateRaw(doc))
	return e.ExtractDocument(doc)
}

// ExtractDocument returns the descriptors of every fenced block in document
// order. The first block that fails to parse aborts the whole extraction;
// there are no partial catalogs.
func (e *Extractor) ExtractDocument(doc []byte) ([]Descriptor, error) {
	matches := fencedBlockRegex.FindAllSubmatch(doc, -1)
	descriptors := make([]Descriptor, 0, len(matches))
	for i, match := range matches {
		desc, err := ParseBlock(string(match[1]))
		if err != nil {
			return nil, fmt.Errorf("catalog block %d: %w", i+1, err)
		}
		descriptors = append(descriptors, desc)
	}
	e.logger.Verbose("extracted %d descriptor(s)", len(descriptors))
	return descriptors, nil
}
