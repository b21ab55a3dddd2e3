package datafetch

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := catalog.Load(path, opts)
//	if errors.Is(err, datafetch.ErrSchema) {
//	    // A descriptor is missing a required field or is badly shaped
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrParse indicates a catalog block could not be parsed.
	ErrParse = errors.New("catalog parse error")

	// ErrSchema indicates a descriptor failed required-field validation.
	ErrSchema = errors.New("descriptor schema error")

	// ErrCatalog indicates a whole-catalog constraint was violated
	// (duplicate ids or an id failing the identifier pattern).
	ErrCatalog = errors.New("catalog constraint error")

	// ErrAssertionsFailed indicates one or more statistics assertions failed.
	ErrAssertionsFailed = errors.New("assertions failed")

	// ErrNoMetrics indicates the statistics check found no metric records.
	ErrNoMetrics = errors.New("no metrics found")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrParse):
		return ExitParseError
	case errors.Is(err, ErrSchema):
		return ExitSchemaError
	case errors.Is(err, ErrCatalog):
		return ExitCatalogError
	case errors.Is(err, ErrAssertionsFailed):
		return ExitAssertionFailure
	case errors.Is(err, ErrNoMetrics):
		return ExitNoMetrics
	}

	// Check for cobra usage error patterns (bad flags or arguments)
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "required flag") ||
		strings.Contains(errStr, "arg(s)") {
		return ExitUsageError
	}

	return ExitGeneralError
}
