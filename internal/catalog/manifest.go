package catalog

import (
	"bytes"
	"encoding/json"

	"github.com/aoabv/datafetch/pkg/datafetch"
)

// BuildManifest assembles the versioned manifest document for validated,
// id-sorted descriptors. Every required field of each dataset is carried over
// verbatim, annotated with its meta_sha256 digest. The result is built from
// maps so serialization sorts keys at every nesting level.
func (c *Canonicalizer) BuildManifest(descriptors []Descriptor, sampleMode bool) (map[string]any, error) {
	datasets := make([]any, 0, len(descriptors))
	for _, desc := range descriptors {
		digest, err := c.Digest(desc)
		if err != nil {
			return nil, err
		}
		entry := c.Projection(desc)
		entry[FieldMetaDigest] = digest
		datasets = append(datasets, entry)
	}

	return map[string]any{
		"version":      datafetch.ManifestVersion,
		"generated_by": datafetch.GeneratorIdentity,
		"sample_mode":  sampleMode,
		"datasets":     datasets,
	}, nil
}

// BuildPlan assembles the dry-run fetch plan: one entry per descriptor with
// its id, the access coordinates that a fetch would use, and the canonical
// digest. Input order is preserved (callers pass id-sorted descriptors).
func (c *Canonicalizer) BuildPlan(descriptors []Descriptor) ([]any, error) {
	plan := make([]any, 0, len(descriptors))
	for _, desc := range descriptors {
		digest, err := c.Digest(desc)
		if err != nil {
			return nil, err
		}
		access := desc[FieldAccess].(map[string]any)
		plan = append(plan, map[string]any{
			"id": desc[FieldID],
			"would_fetch": map[string]any{
				"method": access["method"],
				"url":    access["url"],
				"auth":   access["auth"],
			},
			"hash": digest,
		})
	}
	return plan, nil
}

// EncodePretty serializes a manifest or plan document as human-readable JSON:
// sorted keys, 2-space indentation, no HTML escaping, trailing newline. This
// is the byte contract for everything the mode drivers write.
func EncodePretty(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
