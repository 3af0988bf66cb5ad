// Package notify manages the notifications panel: the unread badge, marking
// entries read, and pushing new entries to the top of the list.
package notify

import (
	"fmt"

	"github.com/bdlm/log"

	"github.com/olirobz31/dashboard-analytics-pro/internal/records"
	"github.com/olirobz31/dashboard-analytics-pro/pkg/types"
)

// Panel reads and updates the notifications collection. Every mutation is
// saved before it returns.
type Panel struct {
	store types.RecordStore
	repo  *records.Repository
}

// New returns a Panel over the notifications collection of store.
func New(store types.RecordStore) (*Panel, error) {
	repo, err := records.New(store, types.NotificationsCollection)
	if err != nil {
		return nil, err
	}
	return &Panel{store: store, repo: repo}, nil
}

// List returns the notifications, newest first.
func (p *Panel) List() ([]types.Record, error) {
	return p.repo.List()
}

func isUnread(r types.Record) bool {
	b, ok := r[types.FieldUnread].(bool)
	return ok && b
}

// Unread counts the notifications not yet read.
func (p *Panel) Unread() (int, error) {
	recs, err := p.repo.List()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, r := range recs {
		if isUnread(r) {
			n++
		}
	}
	return n, nil
}

// MarkRead marks one notification read.
// Returns ErrNotFound if no notification has that id.
func (p *Panel) MarkRead(id string) error {
	_, err := p.repo.Update(id, types.Record{types.FieldUnread: false})
	return err
}

// MarkAllRead marks every notification read in a single save and returns how
// many changed.
func (p *Panel) MarkAllRead() (int, error) {
	recs, err := p.repo.List()
	if err != nil {
		return 0, err
	}
	changed := 0
	for _, r := range recs {
		if isUnread(r) {
			r[types.FieldUnread] = false
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}
	if err := p.store.Save(types.NotificationsCollection, recs); err != nil {
		return 0, fmt.Errorf("saving notifications: %w", err)
	}
	log.WithField("count", changed).Debug("notifications marked read")
	return changed, nil
}

// Push adds an unread notification at the top of the panel and returns its
// id. Kind defaults to info when empty.
func (p *Panel) Push(kind, text string) (string, error) {
	rec := types.Record{"text": text, types.FieldUnread: true}
	if kind != "" {
		rec["type"] = kind
	}
	return p.repo.Add(rec)
}
