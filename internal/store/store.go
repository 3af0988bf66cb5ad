// Package store implements the RecordStore backends for the dashboard.
//
// Every backend is a blob store: one JSON array per collection, keyed by the
// collection name, the same layout the browser kept in local storage. Store
// wraps a blob backend with the JSON codec, collection-name checks, the
// closed-state guard, and logging, so backends only move bytes.
package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/bdlm/log"

	"github.com/olirobz31/dashboard-analytics-pro/pkg/types"
)

// Compile-time interface check: Store must implement RecordStore.
var _ types.RecordStore = (*Store)(nil)

// blobBackend moves raw collection documents in and out of storage.
// get reports ok=false when nothing was stored under name.
type blobBackend interface {
	get(name string) (data []byte, ok bool, err error)
	put(name string, data []byte) error
	close() error
}

// Store implements types.RecordStore over a blob backend.
type Store struct {
	mu      sync.Mutex
	kind    string
	backend blobBackend
	closed  bool
}

func newStore(kind string, b blobBackend) *Store {
	return &Store{kind: kind, backend: b}
}

// Open creates the backend described by cfg and returns it ready for use.
// DataDir defaults to the working directory for file and sqlite backends.
func Open(cfg types.Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		b   blobBackend
		err error
	)
	switch cfg.Backend {
	case types.BackendMemory:
		b = newMemoryBackend()
	case types.BackendFile:
		b, err = newFileBackend(dataDirOrCWD(cfg.DataDir))
	case types.BackendSQLite:
		b, err = newSQLiteBackend(dataDirOrCWD(cfg.DataDir))
	case types.BackendRedis:
		b, err = newRedisBackend(cfg.RedisAddr, cfg.RedisDB)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}

	log.WithFields(log.Fields{
		"backend":  cfg.Backend,
		"data_dir": cfg.DataDir,
	}).Debug("record store opened")
	return newStore(cfg.Backend, b), nil
}

// NewMemory returns an in-memory store, used by tests and the memory backend.
func NewMemory() *Store {
	return newStore(types.BackendMemory, newMemoryBackend())
}

// Backend returns the backend name the store was opened with.
func (s *Store) Backend() string {
	return s.kind
}

// Load returns the records stored under name. A collection that was never
// saved loads as an empty slice.
func (s *Store) Load(name string) ([]types.Record, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, types.ErrStoreClosed
	}

	data, ok, err := s.backend.get(name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	if !ok || len(data) == 0 {
		return []types.Record{}, nil
	}

	records, err := decodeRecords(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	log.WithFields(log.Fields{
		"backend":    s.kind,
		"collection": name,
		"records":    len(records),
	}).Debug("collection loaded")
	return records, nil
}

// Save replaces the records stored under name.
func (s *Store) Save(name string, records []types.Record) error {
	if err := checkName(name); err != nil {
		return err
	}

	data, err := encodeRecords(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return types.ErrStoreClosed
	}
	if err := s.backend.put(name, data); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}

	log.WithFields(log.Fields{
		"backend":    s.kind,
		"collection": name,
		"records":    len(records),
	}).Debug("collection saved")
	return nil
}

// Close releases the backend. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.backend.close()
}

// checkName accepts the standard collections and the settings collection.
func checkName(name string) error {
	if name == types.SettingsCollection || types.IsStandardCollection(name) {
		return nil
	}
	return fmt.Errorf("%w: %q", types.ErrUnknownCollection, name)
}

// encodeRecords writes records as a JSON array. A nil slice is stored as [].
func encodeRecords(records []types.Record) ([]byte, error) {
	if records == nil {
		records = []types.Record{}
	}
	return json.Marshal(records)
}

// decodeRecords parses a JSON array of objects. Non-object elements make the
// whole document invalid.
func decodeRecords(data []byte) ([]types.Record, error) {
	var records []types.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []types.Record{}
	}
	for i, r := range records {
		if r == nil {
			return nil, fmt.Errorf("element %d: %w", i, types.ErrInvalidData)
		}
	}
	return records, nil
}
