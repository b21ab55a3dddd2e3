package datafetch

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("boom"), ExitGeneralError},
		{"invalid config", fmt.Errorf("%w: bad yaml", ErrInvalidConfig), ExitConfigError},
		{"parse", fmt.Errorf("catalog block 2: %w", ErrParse), ExitParseError},
		{"schema", fmt.Errorf("%w: missing field", ErrSchema), ExitSchemaError},
		{"catalog", fmt.Errorf("%w: duplicate id", ErrCatalog), ExitCatalogError},
		{"assertions failed", fmt.Errorf("%w: 2 of 5", ErrAssertionsFailed), ExitAssertionFailure},
		{"no metrics", fmt.Errorf("%w in out.ndjson", ErrNoMetrics), ExitNoMetrics},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeForError(tt.err))
		})
	}
}

func TestExitCodeForError_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown flag", errors.New("unknown flag: --bogus"), ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x"), ExitUsageError},
		{"unknown command", errors.New(`unknown command "fetch" for "datafetch"`), ExitUsageError},
		{"accepts args", errors.New("accepts 0 arg(s), received 1"), ExitUsageError},
		{"required flag", errors.New(`required flag(s) "metrics" not set`), ExitUsageError},
		{"invalid argument", errors.New(`invalid argument "abc" for "--skip-initial"`), ExitUsageError},
		{"general error", errors.New("something went wrong"), ExitGeneralError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeForError(tt.err))
		})
	}
}

func TestExitCodeForError_DeepWrap(t *testing.T) {
	err := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", ErrSchema))
	assert.Equal(t, ExitSchemaError, ExitCodeForError(err))
}
