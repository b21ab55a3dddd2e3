package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Target is one acceptable range from the targets file.
type Target struct {
	Min   float64
	Max   float64
	Notes string
}

// LoadTargets reads a CSV targets file with a metric,min,max,notes header.
// Rows with an empty or '#'-prefixed metric are skipped. Extra columns are
// ignored; min and max are required on every kept row.
func LoadTargets(path string) (map[string]Target, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read targets %s: %w", path, err)
	}
	defer f.Close()
	return parseTargets(f)
}

func parseTargets(r io.Reader) (map[string]Target, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read targets header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"metric", "min", "max"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("targets file missing %q column", required)
		}
	}

	targets := make(map[string]Target)
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read targets row: %w", err)
		}
		line++

		metric := strings.TrimSpace(field(row, columns["metric"]))
		if metric == "" || strings.HasPrefix(metric, "#") {
			continue
		}

		min, err := strconv.ParseFloat(strings.TrimSpace(field(row, columns["min"])), 64)
		if err != nil {
			return nil, fmt.Errorf("targets line %d: bad min for %s: %w", line, metric, err)
		}
		max, err := strconv.ParseFloat(strings.TrimSpace(field(row, columns["max"])), 64)
		if err != nil {
			return nil, fmt.Errorf("targets line %d: bad max for %s: %w", line, metric, err)
		}

		target := Target{Min: min, Max: max}
		if idx, ok := columns["notes"]; ok {
			target.Notes = field(row, idx)
		}
		targets[metric] = target
	}
	return targets, nil
}

func field(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
