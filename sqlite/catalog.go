package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/fwojciec/lexso"
)

// Compile-time interface verification.
var _ lexso.CatalogService = (*CatalogService)(nil)

// CatalogService implements lexso.CatalogService using SQLite.
type CatalogService struct {
	db *DB
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(db *DB) *CatalogService {
	return &CatalogService{db: db}
}

// CreateEntries appends entries after any already stored, in a single
// transaction. Each entry's Position is set to its place in the catalog.
func (s *CatalogService) CreateEntries(ctx context.Context, entries []*lexso.CatalogEntry) error {
	if err := validateEntries(entries); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var next int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position) + 1, 0) FROM catalog_entries`).Scan(&next); err != nil {
		return err
	}

	if err := insertEntries(ctx, tx, next, entries); err != nil {
		return err
	}
	return tx.Commit()
}

// ReplaceEntries swaps the whole catalog for entries in one transaction.
// The stored catalog is untouched if any entry is invalid or the insert
// fails.
func (s *CatalogService) ReplaceEntries(ctx context.Context, entries []*lexso.CatalogEntry) error {
	if err := validateEntries(entries); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM catalog_entries`); err != nil {
		return err
	}
	if err := insertEntries(ctx, tx, 0, entries); err != nil {
		return err
	}
	return tx.Commit()
}

func validateEntries(entries []*lexso.CatalogEntry) error {
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// insertEntries stores entries starting at position next.
func insertEntries(ctx context.Context, tx *sql.Tx, next int, entries []*lexso.CatalogEntry) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO catalog_entries (position, entry_id, lemma, lexical_category, number)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range entries {
		position := next + i
		if _, err := stmt.ExecContext(ctx, position, e.ID, e.Lemma, e.LexicalCategory, e.Number); err != nil {
			return err
		}
		e.Position = position
	}
	return nil
}

// FindEntries retrieves entries matching the filter in catalog order.
func (s *CatalogService) FindEntries(ctx context.Context, filter lexso.CatalogFilter) ([]*lexso.CatalogEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT position, entry_id, lemma, lexical_category, number FROM catalog_entries WHERE 1=1")

	if filter.Lemma != nil {
		query.WriteString(" AND lemma = ?")
		args = append(args, *filter.Lemma)
	}

	query.WriteString(" ORDER BY position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*lexso.CatalogEntry
	for rows.Next() {
		var e lexso.CatalogEntry
		if err := rows.Scan(&e.Position, &e.ID, &e.Lemma, &e.LexicalCategory, &e.Number); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

// DeleteEntries removes the whole catalog.
func (s *CatalogService) DeleteEntries(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM catalog_entries`)
	return err
}
