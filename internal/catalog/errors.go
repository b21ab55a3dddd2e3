package catalog

import (
	"fmt"

	"github.com/aoabv/datafetch/pkg/datafetch"
)

// ParseError reports a malformed catalog block line. It unwraps to
// datafetch.ErrParse for exit-code classification.
type ParseError struct {
	Message string // What rule the line violated
	Line    string // The offending raw line, if applicable
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line != "" {
		return fmt.Sprintf("%s: %q", e.Message, e.Line)
	}
	return e.Message
}

// Unwrap lets errors.Is classify this as a parse failure.
func (e *ParseError) Unwrap() error { return datafetch.ErrParse }

// SchemaError reports a descriptor that failed required-field validation.
// DatasetID is "<unknown>" when the descriptor has no id field. It unwraps
// to datafetch.ErrSchema.
type SchemaError struct {
	DatasetID string
	Field     string // The offending field, if a single field is at fault
	Message   string
}

// Error implements the error interface.
func (e *SchemaError) Error() string { return e.Message }

// Unwrap lets errors.Is classify this as a schema failure.
func (e *SchemaError) Unwrap() error { return datafetch.ErrSchema }

// CatalogError reports a whole-catalog constraint violation (duplicate ids
// or an id failing the identifier pattern). It unwraps to datafetch.ErrCatalog.
type CatalogError struct {
	DatasetID string
	Message   string
}

// Error implements the error interface.
func (e *CatalogError) Error() string { return e.Message }

// Unwrap lets errors.Is classify this as a catalog failure.
func (e *CatalogError) Unwrap() error { return datafetch.ErrCatalog }
