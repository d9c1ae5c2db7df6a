// Package sqlite provides SQLite-based storage for the dictionary catalog
// and recorded annotations.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// pragmas are applied when the database is opened. WAL is skipped for in-memory
// databases, which do not support it.
var pragmas = []struct {
	stmt     string
	fileOnly bool
}{
	{stmt: "PRAGMA busy_timeout = 5000"},
	{stmt: "PRAGMA journal_mode = WAL", fileOnly: true},
	{stmt: "PRAGMA synchronous = NORMAL", fileOnly: true},
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// One writer at a time; the catalog load runs in a single transaction.
	conn.SetMaxOpenConns(1)

	if err := db.configure(conn); err != nil {
		conn.Close()
		return err
	}
	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (db *DB) configure(conn *sql.DB) error {
	if err := conn.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	for _, p := range pragmas {
		if p.fileOnly && db.path == ":memory:" {
			continue
		}
		if _, err := conn.Exec(p.stmt); err != nil {
			return fmt.Errorf("failed to apply %q: %w", p.stmt, err)
		}
	}
	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, nil)
}

// schema lists the table definitions in creation order.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS catalog_entries (
		position INTEGER PRIMARY KEY,
		entry_id TEXT NOT NULL,
		lemma TEXT NOT NULL,
		lexical_category TEXT NOT NULL DEFAULT '',
		number INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_catalog_entries_lemma ON catalog_entries(lemma)`,
	`CREATE TABLE IF NOT EXISTS annotations (
		id TEXT PRIMARY KEY,
		lexeme_id TEXT NOT NULL,
		property TEXT NOT NULL,
		foreign_id TEXT NOT NULL DEFAULT '',
		source_item_id TEXT NOT NULL DEFAULT '',
		no_value INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		UNIQUE (lexeme_id, property)
	)`,
}

func (db *DB) createSchema() error {
	tx, err := db.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range schema {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return tx.Commit()
}
