package metrics

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Record is one line-delimited JSON metrics record from the simulator.
// Global holds the per-tick aggregate values keyed by metric name
// (temp_c, albedo, humidity_pct, precip_native, diag_energy_tenths).
type Record struct {
	T      int                `json:"t"`
	Global map[string]float64 `json:"global"`
}

// LoadRecords reads NDJSON records from path, sorts them by tick, and drops
// records with t below skipInitial (spin-up exclusion). Blank lines are
// ignored; a malformed line is fatal.
func LoadRecords(path string, skipInitial int) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read metrics %s: %w", path, err)
	}
	defer f.Close()
	return parseRecords(f, skipInitial)
}

func parseRecords(r io.Reader, skipInitial int) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var rec Record
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return nil, fmt.Errorf("metrics line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read metrics: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool { return records[i].T < records[j].T })

	if skipInitial > 0 {
		kept := records[:0]
		for _, rec := range records {
			if rec.T >= skipInitial {
				kept = append(kept, rec)
			}
		}
		records = kept
	}
	return records, nil
}
