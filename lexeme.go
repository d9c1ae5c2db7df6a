package lexso

import (
	"context"
	"time"
)

// Lexeme is an external lexical record to be matched against the catalog.
type Lexeme struct {
	ID              string          `json:"id"`
	Lemma           string          `json:"lemma"`
	LexicalCategory LexicalCategory `json:"lexicalCategory"`
}

// Validate returns an error if the lexeme contains invalid fields.
func (l *Lexeme) Validate() error {
	if l.ID == "" {
		return Errorf(EINVALID, "lexeme id required")
	}
	if l.Lemma == "" {
		return Errorf(EINVALID, "lexeme %s: lemma required", l.ID)
	}
	return nil
}

// ForeignID is a cross-reference to attach to a lexeme. NoValue marks an
// explicit "checked, confirmed absent" annotation and carries no ID.
type ForeignID struct {
	ID           string `json:"id"`
	Property     string `json:"property"`
	SourceItemID string `json:"sourceItemId"`
	NoValue      bool   `json:"noValue"`
}

// Attacher writes foreign identifiers to the knowledge base.
type Attacher interface {
	// AttachIdentifier records foreignID on the lexeme.
	AttachIdentifier(ctx context.Context, lexemeID string, foreignID ForeignID) error
}

// Annotation is a foreign identifier recorded for a lexeme and waiting to
// be uploaded to the knowledge base.
type Annotation struct {
	ID        string    `json:"id"`
	LexemeID  string    `json:"lexemeId"`
	ForeignID ForeignID `json:"foreignId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the annotation contains invalid fields.
func (a *Annotation) Validate() error {
	if a.LexemeID == "" {
		return Errorf(EINVALID, "lexeme id required")
	}
	if a.ForeignID.Property == "" {
		return Errorf(EINVALID, "property required")
	}
	if !a.ForeignID.NoValue && a.ForeignID.ID == "" {
		return Errorf(EINVALID, "foreign id required unless marked as no value")
	}
	if a.ForeignID.NoValue && a.ForeignID.ID != "" {
		return Errorf(EINVALID, "no-value annotation cannot carry an id")
	}
	return nil
}

// AnnotationService represents a service for managing recorded annotations.
type AnnotationService interface {
	Attacher

	// FindAnnotations retrieves annotations matching the filter, oldest first.
	FindAnnotations(ctx context.Context, filter AnnotationFilter) ([]*Annotation, error)
}

// AnnotationFilter represents a filter for FindAnnotations.
type AnnotationFilter struct {
	LexemeID *string `json:"lexemeId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
