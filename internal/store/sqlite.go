package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// sqliteFileName is the database file created inside the data directory.
const sqliteFileName = "dashboard.db"

// createCollections is the only table: one row per collection document.
const createCollections = `CREATE TABLE IF NOT EXISTS collections (
    name TEXT PRIMARY KEY,
    body TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

// sqliteBackend stores collection documents in a single SQLite table.
type sqliteBackend struct {
	db *sql.DB
}

func newSQLiteBackend(dataDir string) (*sqliteBackend, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, sqliteFileName))
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createCollections); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &sqliteBackend{db: db}, nil
}

func (s *sqliteBackend) get(name string) ([]byte, bool, error) {
	var body string
	err := s.db.QueryRow("SELECT body FROM collections WHERE name = ?", name).Scan(&body)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("querying collection: %w", err)
	}
	return []byte(body), true, nil
}

func (s *sqliteBackend) put(name string, data []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO collections (name, body, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		name, string(data), now,
	)
	if err != nil {
		return fmt.Errorf("upserting collection: %w", err)
	}
	return nil
}

func (s *sqliteBackend) close() error {
	return s.db.Close()
}
