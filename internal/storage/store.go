// Package storage persists finished runs and the high-score key/value table
// in SQLite, using the pure-Go modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/vovakirdan/tui-runner/internal/registry"
)

// migrations run in order on every Open; each must be idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		course    TEXT NOT NULL,
		player    TEXT NOT NULL DEFAULT '',
		score     INTEGER NOT NULL,
		played_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_course_score ON runs(course, score DESC)`,
	`CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
}

// Store is a SQLite-backed run history and key/value table. It is safe for
// concurrent use by several sessions.
type Store struct {
	db *sql.DB
}

var _ registry.Store = (*Store)(nil)

// Open opens or creates the database at path, creating parent directories
// as needed. A leading ~ expands to the home directory.
func Open(path string) (*Store, error) {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: expand home: %w", err)
		}
		path = filepath.Join(home, rest)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	// one writer at a time
	db.SetMaxOpenConns(1)

	for _, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("storage: migrate: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get reads key. ok is false when the key is absent.
func (s *Store) Get(key string) (value string, ok bool, err error) {
	err = s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("storage: get %s: %w", key, err)
	}
	return value, true, nil
}

// Set writes key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	const upsert = `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
	if _, err := s.db.Exec(upsert, key, value); err != nil {
		return fmt.Errorf("storage: set %s: %w", key, err)
	}
	return nil
}

// SetIfHigher writes value only when key is absent or holds a lower number.
// The compare happens inside the upsert, so concurrent writers on the same
// database never lower a stored high score. Reports whether it wrote.
func (s *Store) SetIfHigher(key string, value int) (bool, error) {
	const upsert = `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
		WHERE CAST(excluded.value AS INTEGER) > CAST(kv.value AS INTEGER)`
	res, err := s.db.Exec(upsert, key, strconv.Itoa(value))
	if err != nil {
		return false, fmt.Errorf("storage: set %s: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: set %s: %w", key, err)
	}
	return n > 0, nil
}
