package datafetch

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Pipeline completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration or environment
	ExitParseError       = 11 // Malformed catalog block
	ExitSchemaError      = 12 // Descriptor failed required-field validation
	ExitCatalogError     = 13 // Whole-catalog check failed (duplicate or bad id)
	ExitAssertionFailure = 14 // Statistics check had failing assertions
	ExitNoMetrics        = 15 // Statistics check found no metric records
)

const (
	// ManifestVersion is the manifest format version written to every manifest.
	ManifestVersion = "0.1"

	// GeneratorIdentity identifies this tool in manifest output. It is part of
	// the manifest byte contract and must not drift between releases without a
	// format version bump.
	GeneratorIdentity = "aoabv-datafetch-v0.1"

	// DefaultCatalogPath is the source document scanned for dataset blocks.
	DefaultCatalogPath = "docs/data_catalog.md"

	// DefaultManifestPath is where the manifest command writes by default.
	DefaultManifestPath = "data/manifest/data_manifest.json"

	// StdoutTarget selects stdout instead of a file for plan output.
	StdoutTarget = "-"
)
