package checksum

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Calculator is an interface for computing content digests.
// This abstraction allows for different digest strategies and algorithms.
type Calculator interface {
	// CalculateRaw computes a digest of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateCanonical computes a digest of the value's canonical JSON
	// form. The digest is stable across map insertion orders.
	CalculateCanonical(v any) (string, error)
}

// SHA256 implements digest calculation using SHA-256 over either raw bytes
// or canonical JSON.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple
// goroutines. Using value semantics (pass by value) eliminates heap
// allocations.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
// Returns by value to avoid heap allocation (SHA256 is a zero-size type).
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes the hex SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateCanonical computes the hex SHA-256 of v's canonical JSON form.
func (c SHA256) CalculateCanonical(v any) (string, error) {
	data, err := CanonicalJSON(v)
	if err != nil {
		return "", err
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}

// CanonicalJSON serializes v as compact JSON with sorted object keys and no
// HTML escaping. encoding/json already emits map keys in sorted order at
// every nesting level, so determinism only requires that values reaching
// this function use maps (not structs) for objects.
//
// The byte form matches Python's
// json.dumps(v, sort_keys=True, separators=(",", ":"), ensure_ascii=False),
// which keeps digests interchangeable with the original tooling.
func CanonicalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encoder terminates the stream with a newline; canonical form has none.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
