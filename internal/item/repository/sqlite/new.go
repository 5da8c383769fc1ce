package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure Go sqlite driver

	"home-inventory/internal/item/repository"
	"home-inventory/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the item domain and ensures
// the schema exists.
func New(db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("item/repository/sqlite: db is required")
	}
	r := &implRepository{db: db, l: l}
	if err := r.migrate(); err != nil {
		return nil, fmt.Errorf("migrate items schema: %w", err)
	}
	return r, nil
}

// Open opens (creating if needed) the catalog database at path.
// SQLite allows a single writer; one pooled connection keeps concurrent
// requests serialized instead of surfacing SQLITE_BUSY.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		path = "data/inventory.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/sqlite.%s", method)
}
