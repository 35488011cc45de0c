// Package uid generates the per-instance identity: a 128-bit, version-4,
// variant-1 random token with the canonical 8-4-4-4-12 string form.
package uid

import "github.com/google/uuid"

// ID is a 16-byte version-4/variant-1 identity.
type ID uuid.UUID

// New returns a fresh cryptographically random ID. An unavailable entropy
// source is fatal: the underlying generator panics rather than returning a
// degraded identity.
func New() ID { return ID(uuid.New()) }

// Parse decodes a canonical 36-character string back into an ID.
func Parse(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, err
	}
	return ID(u), nil
}

// String renders the canonical lowercase form: 32 hex digits grouped
// 8-4-4-4-12 with hyphens at positions 8, 13, 18 and 23.
func (id ID) String() string { return uuid.UUID(id).String() }

// Bytes returns the raw 16 bytes.
func (id ID) Bytes() [16]byte { return [16]byte(id) }
