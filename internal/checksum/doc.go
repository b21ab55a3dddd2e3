// Package checksum provides content hashing for catalog traceability.
//
// The package implements datafetch's dual digest strategy:
//
//   - Raw digest: Hash of the exact source document bytes (detects any edit
//     to the catalog document, including prose outside dataset blocks)
//   - Canonical digest: Hash of a value's canonical JSON form (compact,
//     sorted keys), which is independent of map insertion order and of any
//     formatting in the source document
//
// The canonical digest is what the manifest records per dataset as
// meta_sha256: two descriptors with identical field values always produce
// identical digests, regardless of how the fields were assembled.
//
// # Thread Safety
//
// SHA256 is a zero-size value type and is safe for concurrent use by
// multiple goroutines.
package checksum
