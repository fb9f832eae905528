// Package storage is the persistence collaborator: a single SQLite
// key/blob table. Stores serialize themselves to JSON and hand the
// bytes here; the schema knows nothing about their shape.
package storage

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `CREATE TABLE IF NOT EXISTS app_state (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
)`

// Store is a key/blob store backed by a SQLite file
type Store struct {
	db *sql.DB
}

// Open creates or opens the database file inside dataDir
func Open(dataDir string) (*Store, error) {
	path := filepath.Join(dataDir, "directpro.db")
	db, err := sql.Open("sqlite3", "file:"+path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("database error: %v", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("schema error: %v", err)
	}

	return &Store{db: db}, nil
}

// Load returns the blob saved under key. The second return is false
// when the key was never saved.
func (s *Store) Load(key string) ([]byte, bool, error) {
	var blob []byte
	err := s.db.QueryRow("SELECT value FROM app_state WHERE key = ?", key).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return blob, true, nil
}

// Save writes the blob under key, replacing any previous value
func (s *Store) Save(key string, blob []byte) error {
	_, err := s.db.Exec(
		"INSERT INTO app_state (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, blob,
	)
	return err
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
