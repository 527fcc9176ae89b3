// Package ports defines the contracts between the application core and
// infrastructure. Adapters implement these interfaces; the core depends only
// on the contracts.
package ports

import (
	"context"
	"encoding/json"
)

// Key prefixes group records by entity family. Keys are "<prefix><uuid>";
// ScanByPrefix over a prefix enumerates one family.
const (
	OrderKeyPrefix    = "order:"
	ProductKeyPrefix  = "product:"
	UserKeyPrefix     = "user:"
	FeedbackKeyPrefix = "feedback:"
	BugKeyPrefix      = "bug:"
)

// InsertVersion is the expected version a Swap call passes to create a record
// that must not already exist.
const InsertVersion int64 = 0

// Record is a stored key-value pair with its persistence version.
// Version starts at 1 on first write and increments on every successful write.
type Record struct {
	Key     string
	Value   json.RawMessage
	Version int64
}

// KVStore is the persistence contract: a flat, prefix-addressable key-value
// store with versioned conditional writes. It is the only storage primitive
// the repositories build on, so the whole system can run against any
// implementation of this interface.
type KVStore interface {
	// Get retrieves the record stored under key.
	// Returns errs.ErrObjectNotFound if the key does not exist.
	Get(ctx context.Context, key string) (Record, error)

	// Set writes value under key unconditionally, creating the record or
	// replacing its value, and returns the record's new version.
	Set(ctx context.Context, key string, value json.RawMessage) (int64, error)

	// Swap writes value under key only if the record's current version equals
	// expectedVersion, and returns the new version. Passing InsertVersion
	// requires the key to be absent. A version mismatch or a concurrent create
	// returns errs.ErrConcurrentModification; at most one of several
	// concurrent Swap calls with the same expected version succeeds.
	Swap(ctx context.Context, key string, value json.RawMessage, expectedVersion int64) (int64, error)

	// Delete removes the record stored under key.
	// Returns errs.ErrObjectNotFound if the key does not exist.
	Delete(ctx context.Context, key string) error

	// ScanByPrefix retrieves every record whose key starts with prefix.
	// The result order is unspecified; an empty result is not an error.
	ScanByPrefix(ctx context.Context, prefix string) ([]Record, error)
}
