package catalog

import (
	"strings"

	"github.com/google/uuid"
)

// NamespaceDatasetIdentity is the fixed UUID namespace for deriving
// deterministic dataset identities from catalog ids. It is itself a UUID v5
// of the canonical string "aoabv.dev/datafetch/dataset-identity/v1" under the
// standard URL namespace, so third parties can reproduce identities
// independently.
var NamespaceDatasetIdentity = uuid.NewSHA1(uuid.NameSpaceURL,
	[]byte("aoabv.dev/datafetch/dataset-identity/v1"))

// DatasetUUID returns a deterministic UUID v5 for a dataset id. The identity
// is stable across runs and machines and survives metadata edits: it depends
// only on the id, unlike meta_sha256 which tracks content. Surfaced in
// verbose output for cross-system traceability; never part of manifest bytes.
func DatasetUUID(id string) uuid.UUID {
	normalized := strings.ToLower(strings.TrimSpace(id))
	return uuid.NewSHA1(NamespaceDatasetIdentity, []byte(normalized))
}
