package records

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bdlm/log"

	"github.com/olirobz31/dashboard-analytics-pro/pkg/types"
)

// backupVersion is written into every backup document.
const backupVersion = 1

// Backup is the document produced by ExportBackup: every collection plus the
// settings record.
type Backup struct {
	Version     int                       `json:"version"`
	ExportedAt  string                    `json:"exported_at"`
	Collections map[string][]types.Record `json:"collections"`
	Settings    *types.Settings           `json:"settings,omitempty"`
}

// ExportBackup serializes every standard collection and the settings.
func ExportBackup(store types.RecordStore) ([]byte, error) {
	b := Backup{
		Version:     backupVersion,
		ExportedAt:  time.Now().UTC().Format(time.RFC3339),
		Collections: make(map[string][]types.Record, len(types.StandardCollections)),
	}
	for _, name := range types.StandardCollections {
		recs, err := store.Load(name)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", name, err)
		}
		b.Collections[name] = recs
	}
	settings, err := LoadSettings(store)
	if err != nil {
		return nil, err
	}
	b.Settings = &settings

	return json.MarshalIndent(b, "", "  ")
}

// ImportBackup validates a backup document and replaces the collections it
// contains. Collections absent from the document are left untouched. Nothing
// is written unless the whole document is valid. Returns the names of the
// collections replaced.
func ImportBackup(store types.RecordStore, data []byte) ([]string, error) {
	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidBackup, err)
	}
	if b.Version != backupVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", types.ErrInvalidBackup, b.Version)
	}

	for name, recs := range b.Collections {
		if !types.IsStandardCollection(name) {
			return nil, fmt.Errorf("%w: unknown collection %q", types.ErrInvalidBackup, name)
		}
		if err := checkIDs(recs); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", types.ErrInvalidBackup, name, err)
		}
	}
	if b.Settings != nil {
		if err := checkSettings(*b.Settings); err != nil {
			return nil, fmt.Errorf("%w: settings: %v", types.ErrInvalidBackup, err)
		}
	}

	var imported []string
	for _, name := range types.StandardCollections {
		recs, ok := b.Collections[name]
		if !ok {
			continue
		}
		if recs == nil {
			recs = []types.Record{}
		}
		if err := store.Save(name, recs); err != nil {
			return imported, fmt.Errorf("saving %s: %w", name, err)
		}
		imported = append(imported, name)
	}
	if b.Settings != nil {
		if err := SaveSettings(store, *b.Settings); err != nil {
			return imported, fmt.Errorf("saving settings: %w", err)
		}
		imported = append(imported, types.SettingsCollection)
	}
	log.WithField("collections", imported).Info("backup imported")
	return imported, nil
}

// checkIDs requires every record to be present and to carry a unique id.
func checkIDs(recs []types.Record) error {
	seen := make(map[string]bool, len(recs))
	for i, rec := range recs {
		if rec == nil {
			return fmt.Errorf("record %d is null", i)
		}
		id := rec.ID()
		if id == "" {
			return fmt.Errorf("record %d: %w", i, types.ErrInvalidID)
		}
		if seen[id] {
			return fmt.Errorf("record %s: %w", id, types.ErrDuplicateID)
		}
		seen[id] = true
	}
	return nil
}
