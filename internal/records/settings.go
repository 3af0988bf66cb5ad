package records

import (
	"encoding/json"
	"fmt"

	"github.com/olirobz31/dashboard-analytics-pro/pkg/types"
)

// LoadSettings returns the stored settings, filling any missing field with
// its default. A store with no settings yields DefaultSettings.
func LoadSettings(store types.RecordStore) (types.Settings, error) {
	settings := types.DefaultSettings()

	recs, err := store.Load(types.SettingsCollection)
	if err != nil {
		return settings, err
	}
	if len(recs) == 0 {
		return settings, nil
	}

	data, err := json.Marshal(recs[0])
	if err != nil {
		return settings, fmt.Errorf("encoding settings: %w", err)
	}
	var stored types.Settings
	if err := json.Unmarshal(data, &stored); err != nil {
		return settings, fmt.Errorf("%w: settings: %v", types.ErrInvalidData, err)
	}

	if stored.Theme == types.ThemeLight || stored.Theme == types.ThemeDark {
		settings.Theme = stored.Theme
	}
	if len(stored.Layout) > 0 {
		settings.Layout = normalizeLayout(stored.Layout)
	}
	if stored.PageSize > 0 && stored.PageSize <= types.MaxPageSize {
		settings.PageSize = stored.PageSize
	}
	if stored.Accent != "" {
		settings.Accent = stored.Accent
	}
	return settings, nil
}

// SaveSettings stores s as the single settings record.
func SaveSettings(store types.RecordStore, s types.Settings) error {
	if err := checkSettings(s); err != nil {
		return err
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	var rec types.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return store.Save(types.SettingsCollection, []types.Record{rec})
}

func checkSettings(s types.Settings) error {
	if s.Theme != types.ThemeLight && s.Theme != types.ThemeDark {
		return fmt.Errorf("%w: theme %q", types.ErrInvalidData, s.Theme)
	}
	if s.PageSize < 1 || s.PageSize > types.MaxPageSize {
		return fmt.Errorf("%w: page_size %d (1-%d)", types.ErrInvalidData, s.PageSize, types.MaxPageSize)
	}
	return nil
}

// SetLayout stores a new widget order. Unknown widget ids are rejected;
// duplicates are dropped and widgets missing from order keep their default
// relative position at the end. Returns the layout saved.
func SetLayout(store types.RecordStore, order []string) ([]string, error) {
	for _, id := range order {
		if !types.IsWidget(id) {
			return nil, fmt.Errorf("%w: %q", types.ErrInvalidWidget, id)
		}
	}

	s, err := LoadSettings(store)
	if err != nil {
		return nil, err
	}
	s.Layout = normalizeLayout(order)
	if err := SaveSettings(store, s); err != nil {
		return nil, err
	}
	return s.Layout, nil
}

// ResetLayout restores the default widget order.
func ResetLayout(store types.RecordStore) ([]string, error) {
	return SetLayout(store, types.DefaultLayout)
}

// normalizeLayout keeps known widget ids in the given order, drops
// duplicates, and appends the missing widgets in default order.
func normalizeLayout(order []string) []string {
	seen := make(map[string]bool, len(types.DefaultLayout))
	out := make([]string, 0, len(types.DefaultLayout))
	for _, id := range order {
		if types.IsWidget(id) && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, id := range types.DefaultLayout {
		if !seen[id] {
			out = append(out, id)
		}
	}
	return out
}
