// Package kvstore provides an in-memory implementation of the key-value store
// port. It is used as the fallback store when no database is configured and as
// the store backing unit tests.
package kvstore

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"darkstore/internal/core/ports"
	"darkstore/internal/pkg/errs"
)

// Store is a mutex-guarded map implementing ports.KVStore. Values are copied
// on the way in and out so callers can never alias stored bytes.
type Store struct {
	mu      sync.Mutex
	records map[string]ports.Record
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		records: make(map[string]ports.Record),
	}
}

// Get retrieves the record stored under key.
func (s *Store) Get(_ context.Context, key string) (ports.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[key]
	if !ok {
		return ports.Record{}, errs.NewObjectNotFoundError("key", key)
	}

	return copyRecord(record), nil
}

// Set writes value under key unconditionally and returns the new version.
func (s *Store) Set(_ context.Context, key string, value json.RawMessage) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	version := s.records[key].Version + 1
	s.records[key] = ports.Record{
		Key:     key,
		Value:   append(json.RawMessage(nil), value...),
		Version: version,
	}

	return version, nil
}

// Swap writes value under key only if the current version equals
// expectedVersion. The whole compare-and-write happens under the store lock,
// so at most one of several racing writers with the same expected version
// succeeds.
func (s *Store) Swap(_ context.Context, key string, value json.RawMessage, expectedVersion int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.records[key].Version
	if current != expectedVersion {
		return 0, errs.NewConcurrentModificationError(key, expectedVersion)
	}

	version := current + 1
	s.records[key] = ports.Record{
		Key:     key,
		Value:   append(json.RawMessage(nil), value...),
		Version: version,
	}

	return version, nil
}

// Delete removes the record stored under key.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[key]; !ok {
		return errs.NewObjectNotFoundError("key", key)
	}

	delete(s.records, key)
	return nil
}

// ScanByPrefix retrieves every record whose key starts with prefix.
func (s *Store) ScanByPrefix(_ context.Context, prefix string) ([]ports.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matches := make([]ports.Record, 0)
	for key, record := range s.records {
		if strings.HasPrefix(key, prefix) {
			matches = append(matches, copyRecord(record))
		}
	}

	return matches, nil
}

func copyRecord(record ports.Record) ports.Record {
	record.Value = append(json.RawMessage(nil), record.Value...)
	return record
}
