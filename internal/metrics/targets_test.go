package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargets_Basic(t *testing.T) {
	csvText := `metric,min,max,notes
global.temp_c_mean,10.0,20.0,habitable band
global.albedo_mean,0.25,0.35,
`
	targets, err := parseTargets(strings.NewReader(csvText))
	require.NoError(t, err)
	require.Len(t, targets, 2)

	assert.Equal(t, Target{Min: 10.0, Max: 20.0, Notes: "habitable band"}, targets["global.temp_c_mean"])
	assert.Equal(t, Target{Min: 0.25, Max: 0.35}, targets["global.albedo_mean"])
}

func TestParseTargets_SkipsCommentAndEmptyMetricRows(t *testing.T) {
	csvText := `metric,min,max,notes
# disabled for now,0,1,
,0,1,
global.temp_c_mean,-5,30,
`
	targets, err := parseTargets(strings.NewReader(csvText))
	require.NoError(t, err)
	assert.Len(t, targets, 1)
	assert.Contains(t, targets, "global.temp_c_mean")
}

func TestParseTargets_BadBound(t *testing.T) {
	csvText := `metric,min,max,notes
global.temp_c_mean,cold,30,
`
	_, err := parseTargets(strings.NewReader(csvText))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad min")
	assert.Contains(t, err.Error(), "global.temp_c_mean")
}

func TestParseTargets_MissingColumn(t *testing.T) {
	_, err := parseTargets(strings.NewReader("metric,min,notes\nx,1,\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing "max" column`)
}

func TestLoadTargets_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.csv")
	require.NoError(t, os.WriteFile(path,
		[]byte("metric,min,max,notes\nglobal.temp_c_mean,0,1,x\n"), 0644))

	targets, err := LoadTargets(path)
	require.NoError(t, err)
	assert.Len(t, targets, 1)
}

func TestLoadTargets_MissingFile(t *testing.T) {
	_, err := LoadTargets(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}
