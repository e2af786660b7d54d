// Package store is the persistence layer: a single SQLite database holding
// the config row and the per-project time counters.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const currentVersion = 1

// DefaultProject is the sentinel project used when none is selected. It is
// seeded at migration and always exists.
const DefaultProject = "none"

type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dbPath and runs migrations.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	// Configure pragmas.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Store, error) {
	return New(":memory:")
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS config (
		id          INTEGER PRIMARY KEY CHECK (id = 1),
		focus       INTEGER NOT NULL,
		break_time  INTEGER NOT NULL,
		long_break  INTEGER NOT NULL,
		cycles      INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS projects (
		name           TEXT NOT NULL UNIQUE PRIMARY KEY,
		focus_seconds  INTEGER NOT NULL DEFAULT 0,
		total_seconds  INTEGER NOT NULL DEFAULT 0
	);

	INSERT OR IGNORE INTO config (id, focus, break_time, long_break, cycles)
		VALUES (1, 25, 5, 15, 4);

	INSERT OR IGNORE INTO projects (name, focus_seconds, total_seconds)
		VALUES ('none', 0, 0);
	`
	_, err := s.db.Exec(ddl)
	return err
}

// DefaultDBPath returns ~/.config/pomo/pomo.db
func DefaultDBPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "pomo", "pomo.db"), nil
}
