package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/lexso"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ lexso.AnnotationService = (*AnnotationService)(nil)

// AnnotationService records foreign identifiers for later upload to the
// knowledge base. A lexeme holds at most one annotation per property.
type AnnotationService struct {
	db *DB
}

// NewAnnotationService creates a new AnnotationService.
func NewAnnotationService(db *DB) *AnnotationService {
	return &AnnotationService{db: db}
}

// AttachIdentifier records foreignID on the lexeme.
// Returns EINVALID if the lexeme already has a value for the property.
func (s *AnnotationService) AttachIdentifier(ctx context.Context, lexemeID string, foreignID lexso.ForeignID) error {
	a := &lexso.Annotation{
		ID:        uuid.New().String(),
		LexemeID:  lexemeID,
		ForeignID: foreignID,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO annotations (id, lexeme_id, property, foreign_id, source_item_id, no_value, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (lexeme_id, property) DO NOTHING
	`, a.ID, a.LexemeID, foreignID.Property, foreignID.ID, foreignID.SourceItemID,
		boolToInt(foreignID.NoValue), a.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return lexso.Errorf(lexso.EINVALID, "lexeme %s already has %s", lexemeID, foreignID.Property)
	}
	return nil
}

// FindAnnotations retrieves annotations matching the filter, oldest first.
func (s *AnnotationService) FindAnnotations(ctx context.Context, filter lexso.AnnotationFilter) ([]*lexso.Annotation, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, lexeme_id, property, foreign_id, source_item_id, no_value, created_at
		FROM annotations WHERE 1=1`)

	if filter.LexemeID != nil {
		query.WriteString(" AND lexeme_id = ?")
		args = append(args, *filter.LexemeID)
	}

	query.WriteString(" ORDER BY created_at ASC, rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var annotations []*lexso.Annotation
	for rows.Next() {
		var a lexso.Annotation
		var noValue int
		var createdAt string

		if err := rows.Scan(&a.ID, &a.LexemeID, &a.ForeignID.Property, &a.ForeignID.ID,
			&a.ForeignID.SourceItemID, &noValue, &createdAt); err != nil {
			return nil, err
		}
		a.ForeignID.NoValue = noValue != 0
		if a.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		annotations = append(annotations, &a)
	}

	return annotations, rows.Err()
}
