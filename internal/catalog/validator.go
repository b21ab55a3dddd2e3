package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aoabv/datafetch/pkg/datafetch"
)

// unknownDatasetID is reported when a descriptor fails validation before its
// own id field can be read.
const unknownDatasetID = "<unknown>"

// Validator enforces the required-field schema on extracted descriptors and
// the whole-catalog constraints on validated ones. Checks are fail-fast: the
// first violation aborts the run with an error naming the dataset and defect.
type Validator struct {
	schema Schema
	logger datafetch.Logger
}

// NewValidator creates a Validator for the given schema.
func NewValidator(schema Schema, logger datafetch.Logger) *Validator {
	return &Validator{schema: schema, logger: logger}
}

// ValidateAll applies the per-descriptor checks in order, then filters to
// sample-flagged descriptors when sampleOnly is set, and returns the
// survivors sorted lexicographically by id.
//
// Per-descriptor checks:
//  1. every schema-required field is present
//  2. access is a mapping carrying all required sub-fields
//  3. format is a non-empty list
//  4. variables is a non-empty list
//  5. id is stringified and trimmed
func (v *Validator) ValidateAll(descriptors []Descriptor, sampleOnly bool) ([]Descriptor, error) {
	validated := make([]Descriptor, 0, len(descriptors))
	for _, desc := range descriptors {
		if err := v.validateOne(desc); err != nil {
			return nil, err
		}
		desc[FieldID] = strings.TrimSpace(fmt.Sprintf("%v", desc[FieldID]))

		if sampleOnly && !isSample(desc) {
			v.logger.Verbose("dataset %s skipped (sample mode)", desc[FieldID])
			continue
		}
		validated = append(validated, desc)
	}

	sort.Slice(validated, func(i, j int) bool {
		return validated[i][FieldID].(string) < validated[j][FieldID].(string)
	})
	return validated, nil
}

func (v *Validator) validateOne(desc Descriptor) error {
	for _, field := range v.schema.RequiredFields {
		if _, ok := desc[field]; !ok {
			return &SchemaError{
				DatasetID: datasetID(desc),
				Field:     field,
				Message:   fmt.Sprintf("dataset missing required field '%s': %s", field, datasetID(desc)),
			}
		}
	}

	access, ok := desc[FieldAccess].(map[string]any)
	var missing []string
	for _, sub := range v.schema.AccessFields {
		if _, present := access[sub]; !ok || !present {
			missing = append(missing, sub)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &SchemaError{
			DatasetID: datasetID(desc),
			Field:     FieldAccess,
			Message: fmt.Sprintf("dataset '%s' missing access field(s): %s",
				datasetID(desc), strings.Join(missing, ", ")),
		}
	}

	if v.requires(FieldFormat) && !isNonEmptyList(desc[FieldFormat]) {
		return &SchemaError{
			DatasetID: datasetID(desc),
			Field:     FieldFormat,
			Message:   fmt.Sprintf("dataset '%s' must define at least one format", datasetID(desc)),
		}
	}
	if v.requires(FieldVariables) && !isNonEmptyList(desc[FieldVariables]) {
		return &SchemaError{
			DatasetID: datasetID(desc),
			Field:     FieldVariables,
			Message:   fmt.Sprintf("dataset '%s' must define at least one variable", datasetID(desc)),
		}
	}
	return nil
}

func (v *Validator) requires(field string) bool {
	for _, f := range v.schema.RequiredFields {
		if f == field {
			return true
		}
	}
	return false
}

// CheckCatalog enforces whole-catalog constraints over validated, sorted
// descriptors: unique ids and the identifier pattern. Invoked only by the
// validate mode.
func (v *Validator) CheckCatalog(descriptors []Descriptor) error {
	seen := make(map[string]struct{}, len(descriptors))
	for _, desc := range descriptors {
		id := desc[FieldID].(string)
		if _, dup := seen[id]; dup {
			return &CatalogError{
				DatasetID: id,
				Message:   fmt.Sprintf("duplicate dataset id: %s", id),
			}
		}
		seen[id] = struct{}{}
	}

	for _, desc := range descriptors {
		id := desc[FieldID].(string)
		if !v.schema.IDPattern.MatchString(id) {
			return &CatalogError{
				DatasetID: id,
				Message:   fmt.Sprintf("invalid id format: %s", id),
			}
		}
	}
	return nil
}

// datasetID reads a descriptor's id for error reporting, before the id field
// itself has been validated.
func datasetID(desc Descriptor) string {
	if v, ok := desc[FieldID]; ok {
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
	return unknownDatasetID
}

// isSample reports whether the descriptor is explicitly flagged sample: true.
// Any other value, including truthy strings, does not qualify.
func isSample(desc Descriptor) bool {
	flag, ok := desc[FieldSample].(bool)
	return ok && flag
}

func isNonEmptyList(v any) bool {
	list, ok := v.([]any)
	return ok && len(list) > 0
}
