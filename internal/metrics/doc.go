// Package metrics implements the statistics check that validates simulation
// output against numeric target ranges.
//
// Inputs are line-delimited JSON records emitted by the simulator, each
// shaped {"t": tick, "global": {...}}, and a CSV targets file with rows
// metric,min,max,notes. The package aggregates the records into summary
// statistics (means, tail percentiles) and compares each summary value
// against its target range, producing one assertion verdict per target.
//
// The check shares nothing with the catalog pipeline beyond the ambient
// stack: it has no parsing or canonicalization of its own, just
// aggregate-and-compare over local files.
package metrics
