// Package dashboard is the public entry point for opening a dashboard
// RecordStore while keeping the backends internal.
package dashboard

import (
	"github.com/olirobz31/dashboard-analytics-pro/internal/records"
	"github.com/olirobz31/dashboard-analytics-pro/internal/store"
	"github.com/olirobz31/dashboard-analytics-pro/pkg/types"
)

// OpenStore opens the backend named by cfg.Backend.
//
// Example:
//
//	s, err := dashboard.OpenStore(types.Config{
//	    Backend: types.BackendFile,
//	    DataDir: ".dashboard-db",
//	})
//	defer s.Close()
func OpenStore(cfg types.Config) (types.RecordStore, error) {
	return store.Open(cfg)
}

// SeedDemo writes the demo dataset into the empty collections of s and
// returns the names of the collections written.
func SeedDemo(s types.RecordStore) ([]string, error) {
	return records.Seed(s, false)
}
