package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteKV stores values in a single kv table.
type SQLiteKV struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if needed) the database at path.
func OpenSQLite(path string) (*SQLiteKV, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, &Error{Op: "open", Err: fmt.Errorf("failed to create database directory: %w", err)}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, &Error{Op: "open", Err: fmt.Errorf("failed to open database: %w", err)}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, &Error{Op: "open", Err: fmt.Errorf("failed to initialize schema: %w", err)}
	}

	return &SQLiteKV{db: db}, nil
}

func (s *SQLiteKV) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &Error{Op: "get", Key: key, Err: err}
	}
	return value, true, nil
}

func (s *SQLiteKV) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return &Error{Op: "set", Key: key, Err: err}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteKV) Close() error {
	return s.db.Close()
}
