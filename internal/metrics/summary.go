package metrics

import (
	"math"
	"sort"
)

// Summary metric keys constrained by the targets file.
const (
	KeyTempMean      = "global.temp_c_mean"
	KeyAlbedoMean    = "global.albedo_mean"
	KeyHumidityMean  = "global.humidity_pct_mean"
	KeyPrecipMean    = "global.precip_native_mean"
	KeyEnergyAbsMean = "global.diag_energy_abs_mean_tenths"
	KeyTempP95       = "global.temp_c_p95"
	KeyPrecipP99     = "global.precip_native_p99"
)

// Summarize aggregates records into the summary statistics the targets file
// constrains. Records without a global payload, or without a given metric,
// simply contribute nothing to that metric; a metric with no samples at all
// summarizes to NaN.
func Summarize(records []Record) map[string]float64 {
	var temps, albedo, humidity, precip, energyAbs []float64
	for _, rec := range records {
		if rec.Global == nil {
			continue
		}
		if v, ok := rec.Global["temp_c"]; ok {
			temps = append(temps, v)
		}
		if v, ok := rec.Global["albedo"]; ok {
			albedo = append(albedo, v)
		}
		if v, ok := rec.Global["humidity_pct"]; ok {
			humidity = append(humidity, v)
		}
		if v, ok := rec.Global["precip_native"]; ok {
			precip = append(precip, v)
		}
		if v, ok := rec.Global["diag_energy_tenths"]; ok {
			energyAbs = append(energyAbs, math.Abs(v))
		}
	}

	return map[string]float64{
		KeyTempMean:      mean(temps),
		KeyAlbedoMean:    mean(albedo),
		KeyHumidityMean:  mean(humidity),
		KeyPrecipMean:    mean(precip),
		KeyEnergyAbsMean: mean(energyAbs),
		KeyTempP95:       percentile(temps, 95),
		KeyPrecipP99:     percentile(precip, 99),
	}
}

// SortedKeys returns the summary's metric keys in lexicographic order, for
// deterministic printing.
func SortedKeys(summary map[string]float64) []string {
	keys := make([]string, 0, len(summary))
	for k := range summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// percentile uses the nearest-rank method over a sorted copy.
func percentile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	ordered := append([]float64(nil), values...)
	sort.Float64s(ordered)

	index := int(math.Round((q / 100.0) * float64(len(ordered)-1)))
	if index < 0 {
		index = 0
	}
	if index > len(ordered)-1 {
		index = len(ordered) - 1
	}
	return ordered[index]
}
