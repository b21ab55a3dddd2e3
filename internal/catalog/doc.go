// Package catalog implements the dataset catalog pipeline: extraction of
// structured blocks from a narrative document, descriptor validation, and
// deterministic canonicalization for manifest generation.
//
// # Overview
//
// A catalog is a markdown document containing fenced ```yaml blocks, one per
// dataset. Each block declares the dataset's required metadata:
//
//	```yaml
//	id: era5-sample
//	provider: ecmwf
//	product: reanalysis-era5-single-levels
//	version: "1"
//	format: [netcdf, csv]
//	access:
//	  method: http
//	  url: "https://example.org/era5"
//	  auth: none
//	spatial_resolution: 0.25deg
//	temporal_coverage: 1979-present
//	variables:
//	  - t2m
//	  - tp
//	license: CC-BY-4.0
//	sample: true
//	notes: subset used for CI
//	```
//
// The block grammar is deliberately narrow: plain key/value lines, one level
// of list nesting (bracketed inline or dashed multi-line), and exactly one
// nested mapping, the access block. It is parsed by an explicit line-oriented
// state machine, not a general YAML parser, so behavior is identical across
// platforms and library versions.
//
// # Determinism
//
// Each validated descriptor is projected onto the schema's required fields
// and serialized as compact JSON with sorted keys; the SHA-256 of those bytes
// is the dataset's meta_sha256. Descriptors are always emitted sorted by id.
// Re-running the pipeline over an unchanged document reproduces byte-identical
// output.
//
// # Validation Rules
//
//   - every schema-required field must be present
//   - access must carry the method, url, and auth sub-fields
//   - format and variables must be non-empty lists
//   - ids must match ^[a-z0-9][a-z0-9-]*$ and be unique across the catalog
//
// The first violation aborts the whole run; no partial catalogs and no
// partially written output files.
//
// # Package Structure
//
//   - value.go: scalar token coercion (lists, quotes, booleans)
//   - parser.go: block grammar state machine
//   - extractor.go: fenced-block discovery in the source document
//   - validator.go: per-descriptor and whole-catalog checks
//   - canonical.go: required-field projection and digest computation
//   - manifest.go: manifest/plan document assembly and serialization
//   - identity.go: deterministic UUID v5 dataset identity
package catalog
