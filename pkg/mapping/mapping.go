// Package mapping defines the identifier mapping store contract.
// The store associates legacy fixed-width textual identifiers with
// newly assigned 64-bit numeric identifiers.
package mapping

import (
	"context"
)

// Mapping is one old→new identifier association.
// OldID is unique within the store; the first write wins and later
// inserts for the same OldID are no-ops. NewID uniqueness is
// best-effort (overwhelming probability, not enforced).
type Mapping struct {
	OldID string
	NewID uint64
}

// Lookup is the read-only view of the store used by matchers.
// Implementations must be safe for concurrent readers.
type Lookup interface {
	// Lookup returns the new identifier for old and whether a mapping
	// exists.
	Lookup(old string) (uint64, bool)
}

// Store is the in-memory identifier mapping table.
// Load is a single bulk read; the store is immutable between loads, so
// any number of file-processing workers may share it. Reload picks up
// entries added after the previous load completed - the reconciliation
// pass depends on this.
type Store interface {
	Lookup

	// Load bulk-reads all mappings into memory.
	Load(ctx context.Context) error

	// Reload discards the in-memory table and loads it again.
	Reload(ctx context.Context) error

	// Len returns the number of loaded mappings.
	Len() int
}
