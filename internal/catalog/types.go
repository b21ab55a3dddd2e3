package catalog

import "regexp"

// Descriptor is one dataset's metadata record extracted from a catalog block.
// Values are strings, booleans, []any lists, or a map[string]any for the
// nested access mapping.
type Descriptor map[string]any

// Well-known field names used by the pipeline beyond plain schema iteration.
const (
	FieldID        = "id"
	FieldAccess    = "access"
	FieldFormat    = "format"
	FieldVariables = "variables"
	FieldSample    = "sample"

	// FieldMetaDigest annotates manifest entries with the canonical digest.
	FieldMetaDigest = "meta_sha256"
)

// Schema carries the required-field contract for descriptors. It is injected
// into the Validator and Canonicalizer rather than read from package globals,
// so tests can exercise the pipeline with alternate schemas.
type Schema struct {
	// RequiredFields is the ordered set every descriptor must carry. The
	// order determines which missing field is reported first; canonical
	// serialization sorts keys independently of it.
	RequiredFields []string

	// AccessFields are the sub-fields the access mapping must carry.
	AccessFields []string

	// IDPattern is the identifier format enforced by the whole-catalog check.
	IDPattern *regexp.Regexp
}

// DefaultSchema returns the catalog schema for manifest format version 0.1.
func DefaultSchema() Schema {
	return Schema{
		RequiredFields: []string{
			"id",
			"provider",
			"product",
			"version",
			"format",
			"access",
			"spatial_resolution",
			"temporal_coverage",
			"variables",
			"license",
			"sample",
			"notes",
		},
		AccessFields: []string{"method", "url", "auth"},
		IDPattern:    regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`),
	}
}
