// Package storage persists offices and assets in SQLite.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"assettracker/internal/logger"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Store owns the database handle shared by the repositories.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the database at path and makes sure the schema exists.
func Open(path string) (*Store, error) {
	dsn := path + "?_pragma=foreign_keys(1)"
	if path != MemoryPath {
		dsn += "&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at path '%s': %w", path, err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database at path '%s': %w", path, err)
	}

	s := &Store{db: db, path: path}
	if err := s.InitializeSchema(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug("Database opened", "path", path)
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the path the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// InitializeSchema creates all necessary tables.
func (s *Store) InitializeSchema() error {
	return s.WithTransaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			CREATE TABLE IF NOT EXISTS offices (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				location TEXT NOT NULL,
				culture TEXT NOT NULL
			)
		`)
		if err != nil {
			return fmt.Errorf("failed to create offices: %w", err)
		}

		_, err = tx.Exec(`
			CREATE TABLE IF NOT EXISTS assets (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				kind TEXT NOT NULL,
				purchase_date TEXT NOT NULL,
				expiry_date TEXT NOT NULL,
				price REAL NOT NULL,
				model_name TEXT NOT NULL,
				office_id INTEGER NOT NULL REFERENCES offices(id),
				operating_system TEXT,
				ram TEXT,
				processor TEXT,
				phone_operator TEXT,
				phone_number TEXT
			)
		`)
		if err != nil {
			return fmt.Errorf("failed to create assets: %w", err)
		}
		return nil
	})
}

// WithTransaction executes fn inside a transaction.
func (s *Store) WithTransaction(fn func(*sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// Assets returns the asset repository backed by this store.
func (s *Store) Assets() *AssetRepository {
	return &AssetRepository{db: s.db}
}

// Offices returns the office repository backed by this store.
func (s *Store) Offices() *OfficeRepository {
	return &OfficeRepository{db: s.db}
}

// nullString maps blank strings to NULL.
func nullString(value string) sql.NullString {
	if strings.TrimSpace(value) == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: value, Valid: true}
}

func encodeTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func decodeTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored time %q: %w", s, err)
	}
	return t.Local(), nil
}
