// Package records provides CRUD access to the dashboard collections.
//
// A Repository reads the whole collection from the RecordStore on every call
// and writes it back synchronously after each mutation, the same
// read-modify-write cycle the dashboard ran against local storage. New
// records go to the front of the collection so the default order is newest
// first.
package records

import (
	"fmt"
	"time"

	"github.com/bdlm/log"

	"github.com/olirobz31/dashboard-analytics-pro/pkg/types"
)

// Repository provides CRUD operations over one collection.
type Repository struct {
	store types.RecordStore
	name  string
	now   func() time.Time
}

// New returns a Repository for the named collection.
// Returns ErrUnknownCollection if name is not a standard collection.
func New(store types.RecordStore, name string) (*Repository, error) {
	if !types.IsStandardCollection(name) {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownCollection, name)
	}
	return &Repository{store: store, name: name, now: time.Now}, nil
}

// Name returns the collection name.
func (r *Repository) Name() string {
	return r.name
}

// List returns every record in stored order.
func (r *Repository) List() ([]types.Record, error) {
	return r.store.Load(r.name)
}

// Get returns the record with the given id.
// Returns ErrNotFound if no record has that id.
func (r *Repository) Get(id string) (types.Record, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	recs, err := r.store.Load(r.name)
	if err != nil {
		return nil, err
	}
	i := indexOf(recs, id)
	if i < 0 {
		return nil, fmt.Errorf("%s %s: %w", r.name, id, types.ErrNotFound)
	}
	return recs[i], nil
}

// Add validates rec, fills defaults and a generated id when none is given,
// inserts it at the front of the collection, and saves. Returns the id used.
// Returns ErrDuplicateID if the id is already taken.
func (r *Repository) Add(rec types.Record) (string, error) {
	if rec == nil {
		return "", types.ErrInvalidData
	}
	rec = rec.Clone()

	recs, err := r.store.Load(r.name)
	if err != nil {
		return "", err
	}

	applyDefaults(r.name, rec, r.now())
	if rec.ID() == "" {
		rec[types.FieldID] = nextID(r.name, recs)
	}
	id := rec.ID()
	if indexOf(recs, id) >= 0 {
		return "", fmt.Errorf("%s %s: %w", r.name, id, types.ErrDuplicateID)
	}
	if err := validate(r.name, rec); err != nil {
		return "", err
	}

	recs = append([]types.Record{rec}, recs...)
	if err := r.store.Save(r.name, recs); err != nil {
		return "", err
	}

	log.WithFields(log.Fields{"collection": r.name, "id": id}).Debug("record added")
	return id, nil
}

// Update merges changes into the record with the given id and saves. The id
// field cannot be changed. The record keeps its position in the collection.
// Returns the updated record.
func (r *Repository) Update(id string, changes types.Record) (types.Record, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	if v, ok := changes[types.FieldID]; ok && types.Text(v) != id {
		return nil, fmt.Errorf("cannot change id of %s: %w", id, types.ErrInvalidID)
	}

	recs, err := r.store.Load(r.name)
	if err != nil {
		return nil, err
	}
	i := indexOf(recs, id)
	if i < 0 {
		return nil, fmt.Errorf("%s %s: %w", r.name, id, types.ErrNotFound)
	}

	merged := recs[i].Clone()
	for k, v := range changes {
		if k == types.FieldID {
			continue
		}
		merged[k] = v
	}
	if err := validate(r.name, merged); err != nil {
		return nil, err
	}

	recs[i] = merged
	if err := r.store.Save(r.name, recs); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"collection": r.name, "id": id}).Debug("record updated")
	return merged, nil
}

// Delete removes the record with the given id and saves.
// Returns ErrNotFound if no record has that id.
func (r *Repository) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	recs, err := r.store.Load(r.name)
	if err != nil {
		return err
	}
	i := indexOf(recs, id)
	if i < 0 {
		return fmt.Errorf("%s %s: %w", r.name, id, types.ErrNotFound)
	}

	recs = append(recs[:i], recs[i+1:]...)
	if err := r.store.Save(r.name, recs); err != nil {
		return err
	}

	log.WithFields(log.Fields{"collection": r.name, "id": id}).Debug("record deleted")
	return nil
}

// indexOf returns the position of the record with the given id, or -1.
func indexOf(recs []types.Record, id string) int {
	for i, rec := range recs {
		if rec.ID() == id {
			return i
		}
	}
	return -1
}
