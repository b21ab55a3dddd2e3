package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecords_SortsByTick(t *testing.T) {
	ndjson := `{"t": 2, "global": {"temp_c": 12.0}}
{"t": 0, "global": {"temp_c": 10.0}}

{"t": 1, "global": {"temp_c": 11.0}}
`
	records, err := parseRecords(strings.NewReader(ndjson), 0)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, 0, records[0].T)
	assert.Equal(t, 1, records[1].T)
	assert.Equal(t, 2, records[2].T)
}

func TestParseRecords_SkipInitial(t *testing.T) {
	ndjson := `{"t": 0, "global": {"temp_c": 99.0}}
{"t": 5, "global": {"temp_c": 10.0}}
{"t": 6, "global": {"temp_c": 12.0}}
`
	records, err := parseRecords(strings.NewReader(ndjson), 5)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 5, records[0].T)
}

func TestParseRecords_MalformedLineIsFatal(t *testing.T) {
	_, err := parseRecords(strings.NewReader("{\"t\": 0}\nnot json\n"), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metrics line 2")
}

func TestParseRecords_Empty(t *testing.T) {
	records, err := parseRecords(strings.NewReader("\n\n"), 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}
