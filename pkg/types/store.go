package types

import "errors"

// RecordStore persists whole collections as blobs keyed by collection name.
// Load returns an empty, non-nil slice when nothing was saved under name.
// Save replaces the stored collection; the last writer wins.
type RecordStore interface {
	// Load returns the records saved under name, in stored order.
	Load(name string) ([]Record, error)

	// Save replaces the records stored under name.
	Save(name string, records []Record) error

	// Close releases backend resources. Idempotent. After Close, Load and
	// Save return ErrStoreClosed.
	Close() error
}

// Store lifecycle errors.
var (
	ErrStoreClosed       = errors.New("record store is closed")
	ErrUnknownCollection = errors.New("unknown collection")
)

// Record operation errors.
var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidID     = errors.New("invalid record ID")
	ErrDuplicateID   = errors.New("duplicate record ID")
	ErrInvalidData   = errors.New("invalid record data")
	ErrInvalidStatus = errors.New("invalid status value")
	ErrInvalidAmount = errors.New("amount must be a nonnegative number")
	ErrInvalidDate   = errors.New("date must be formatted YYYY-MM-DD")
	ErrInvalidBackup = errors.New("invalid backup document")
	ErrInvalidWidget = errors.New("unknown widget id")
)
