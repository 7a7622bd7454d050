package library

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// DB is an open library database.
type DB struct {
	path string
	sql  *sql.DB
}

// Open migrates and opens the library database at path, creating the
// parent directory when needed.
func Open(path string) (*DB, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("library: create directory: %w", err)
	}

	if err := RunMigrations(abs); err != nil {
		return nil, fmt.Errorf("library: migrate %s: %w", abs, err)
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", abs)
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1) // sqlite
	sqlDB.SetConnMaxLifetime(0)

	return &DB{path: abs, sql: sqlDB}, nil
}

func (db *DB) Path() string {
	return db.path
}

func (db *DB) Close() error {
	if db == nil || db.sql == nil {
		return nil
	}
	return db.sql.Close()
}

// Prefs returns the preference store kept inside the library.
func (db *DB) Prefs() *Prefs {
	return &Prefs{db: db.sql}
}

// WithTx runs fn in a transaction.
func (db *DB) WithTx(fn func(tx *sql.Tx) error) error {
	tx, err := db.sql.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
