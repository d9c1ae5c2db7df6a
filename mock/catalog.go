package mock

import (
	"context"

	"github.com/fwojciec/lexso"
)

var _ lexso.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of lexso.CatalogService.
type CatalogService struct {
	CreateEntriesFn  func(ctx context.Context, entries []*lexso.CatalogEntry) error
	FindEntriesFn    func(ctx context.Context, filter lexso.CatalogFilter) ([]*lexso.CatalogEntry, error)
	ReplaceEntriesFn func(ctx context.Context, entries []*lexso.CatalogEntry) error
	DeleteEntriesFn  func(ctx context.Context) error
}

func (s *CatalogService) CreateEntries(ctx context.Context, entries []*lexso.CatalogEntry) error {
	return s.CreateEntriesFn(ctx, entries)
}

func (s *CatalogService) FindEntries(ctx context.Context, filter lexso.CatalogFilter) ([]*lexso.CatalogEntry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *CatalogService) ReplaceEntries(ctx context.Context, entries []*lexso.CatalogEntry) error {
	return s.ReplaceEntriesFn(ctx, entries)
}

func (s *CatalogService) DeleteEntries(ctx context.Context) error {
	return s.DeleteEntriesFn(ctx)
}

var _ lexso.Attacher = (*Attacher)(nil)

// Attacher is a mock implementation of lexso.Attacher.
type Attacher struct {
	AttachIdentifierFn func(ctx context.Context, lexemeID string, foreignID lexso.ForeignID) error
}

func (a *Attacher) AttachIdentifier(ctx context.Context, lexemeID string, foreignID lexso.ForeignID) error {
	return a.AttachIdentifierFn(ctx, lexemeID, foreignID)
}

var _ lexso.AnnotationService = (*AnnotationService)(nil)

// AnnotationService is a mock implementation of lexso.AnnotationService.
type AnnotationService struct {
	AttachIdentifierFn func(ctx context.Context, lexemeID string, foreignID lexso.ForeignID) error
	FindAnnotationsFn  func(ctx context.Context, filter lexso.AnnotationFilter) ([]*lexso.Annotation, error)
}

func (s *AnnotationService) AttachIdentifier(ctx context.Context, lexemeID string, foreignID lexso.ForeignID) error {
	return s.AttachIdentifierFn(ctx, lexemeID, foreignID)
}

func (s *AnnotationService) FindAnnotations(ctx context.Context, filter lexso.AnnotationFilter) ([]*lexso.Annotation, error) {
	return s.FindAnnotationsFn(ctx, filter)
}
