package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// slotKey is the single named key holding the serialized product
// collection. Every write fully overwrites the prior value.
const slotKey = "products"

// Slot is the durable storage location for the serialized collection.
// Read reports ok=false when no value has ever been written.
type Slot interface {
	Read() (data []byte, ok bool, err error)
	Write(data []byte) error
}

// SQLiteSlot stores the slot value in a single-row SQLite table.
// The database has exactly one writer (the Store), so the connection pool
// is capped at one connection to avoid SQLITE_BUSY errors.
type SQLiteSlot struct {
	db *sql.DB
}

// OpenSlot creates or opens a SQLite database at the given path and
// ensures the slots table exists. Safe to call repeatedly on the same path.
func OpenSlot(path string) (*SQLiteSlot, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS slots (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLiteSlot{db: db}, nil
}

// Read returns the current slot value, or ok=false if none exists yet.
func (s *SQLiteSlot) Read() ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, slotKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read slot: %w", err)
	}
	return []byte(value), true, nil
}

// Write replaces the slot value wholesale.
func (s *SQLiteSlot) Write(data []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO slots (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, slotKey, string(data))
	if err != nil {
		return fmt.Errorf("write slot: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteSlot) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
