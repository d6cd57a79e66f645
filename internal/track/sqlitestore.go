package track

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the product mapping in an embedded SQLite database, one
// row per product with the record stored as JSON. SetAll runs as a single
// transaction so the replace is all-or-nothing.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path and ensures
// the schema exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("track: create db directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("track: open database: %w", err)
	}
	store := &SQLiteStore{db: db}
	if err := store.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	schema := `
CREATE TABLE IF NOT EXISTS products (
    key TEXT PRIMARY KEY,
    record TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("track: migrate schema: %w", err)
	}
	return nil
}

// GetAll loads every stored record.
func (s *SQLiteStore) GetAll() (map[string]ProductRecord, error) {
	rows, err := s.db.Query(`SELECT key, record FROM products`)
	if err != nil {
		return nil, fmt.Errorf("track: query products: %w", err)
	}
	defer rows.Close()

	records := map[string]ProductRecord{}
	for rows.Next() {
		var key, payload string
		if err := rows.Scan(&key, &payload); err != nil {
			return nil, fmt.Errorf("track: scan product row: %w", err)
		}
		var record ProductRecord
		if err := json.Unmarshal([]byte(payload), &record); err != nil {
			return nil, fmt.Errorf("track: parse stored record %q: %w", key, err)
		}
		records[key] = record
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("track: iterate product rows: %w", err)
	}
	return records, nil
}

// SetAll replaces the stored mapping in one transaction.
func (s *SQLiteStore) SetAll(records map[string]ProductRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("track: begin replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM products`); err != nil {
		return fmt.Errorf("track: clear products: %w", err)
	}
	for key, record := range records {
		payload, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("track: encode record %q: %w", key, err)
		}
		if _, err := tx.Exec(`INSERT INTO products(key, record) VALUES(?, ?)`, key, string(payload)); err != nil {
			return fmt.Errorf("track: insert record %q: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("track: commit replace: %w", err)
	}
	return nil
}
