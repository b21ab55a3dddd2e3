package metrics

import (
	"math"
	"sort"
)

// Assertion is one pass/fail verdict of a summary value against its target
// range. Value is nil when the summary carries no finite value for the
// metric, which always fails.
type Assertion struct {
	Metric string
	Pass   bool
	Value  *float64
	Min    float64
	Max    float64
	Notes  string
}

// Evaluate compares summary values against targets and returns assertions
// sorted by metric name.
func Evaluate(summary map[string]float64, targets map[string]Target) []Assertion {
	metricNames := make([]string, 0, len(targets))
	for name := range targets {
		metricNames = append(metricNames, name)
	}
	sort.Strings(metricNames)

	assertions := make([]Assertion, 0, len(metricNames))
	for _, name := range metricNames {
		target := targets[name]
		a := Assertion{
			Metric: name,
			Min:    target.Min,
			Max:    target.Max,
			Notes:  target.Notes,
		}
		if value, ok := summary[name]; ok && !math.IsNaN(value) {
			v := value
			a.Value = &v
			a.Pass = target.Min <= value && value <= target.Max
		}
		assertions = append(assertions, a)
	}
	return assertions
}

// Failures returns the assertions that did not pass.
func Failures(assertions []Assertion) []Assertion {
	var failed []Assertion
	for _, a := range assertions {
		if !a.Pass {
			failed = append(failed, a)
		}
	}
	return failed
}

// Document returns the serialization form of assertions: a list of maps so
// JSON encoding emits sorted keys, with a null value for metrics that had no
// finite summary value.
func Document(assertions []Assertion) []any {
	doc := make([]any, 0, len(assertions))
	for _, a := range assertions {
		var value any
		if a.Value != nil {
			value = *a.Value
		}
		doc = append(doc, map[string]any{
			"metric": a.Metric,
			"pass":   a.Pass,
			"value":  value,
			"min":    a.Min,
			"max":    a.Max,
			"notes":  a.Notes,
		})
	}
	return doc
}
