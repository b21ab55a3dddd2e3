package catalog

import "github.com/aoabv/datafetch/internal/checksum"

// Canonicalizer projects descriptors onto the schema's required-field set and
// computes their content digest. The digest changes if and only if one of the
// projected fields changes value; incidental fields, field insertion order,
// and source formatting never affect it.
type Canonicalizer struct {
	schema Schema
	calc   checksum.Calculator
}

// NewCanonicalizer creates a Canonicalizer for the given schema.
func NewCanonicalizer(schema Schema, calc checksum.Calculator) *Canonicalizer {
	return &Canonicalizer{schema: schema, calc: calc}
}

// Projection returns the canonical metadata projection: exactly the schema's
// required fields, restricted to those present on the descriptor. Extra
// fields a future catalog might carry are never included.
func (c *Canonicalizer) Projection(desc Descriptor) map[string]any {
	keep := make(map[string]any, len(c.schema.RequiredFields))
	for _, field := range c.schema.RequiredFields {
		if v, ok := desc[field]; ok {
			keep[field] = v
		}
	}
	return keep
}

// Digest returns the hex SHA-256 over the canonical JSON serialization of
// the descriptor's projection.
func (c *Canonicalizer) Digest(desc Descriptor) (string, error) {
	return c.calc.CalculateCanonical(c.Projection(desc))
}
