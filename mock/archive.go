package mock

import (
	"context"

	"github.com/fwojciec/lexso"
)

var _ lexso.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of lexso.DocumentSource.
type DocumentSource struct {
	ListFn func(ctx context.Context) ([]string, error)
	LoadFn func(ctx context.Context, id string) (string, error)
}

func (s *DocumentSource) List(ctx context.Context) ([]string, error) {
	return s.ListFn(ctx)
}

func (s *DocumentSource) Load(ctx context.Context, id string) (string, error) {
	return s.LoadFn(ctx, id)
}

var _ lexso.ArchiveWriter = (*ArchiveWriter)(nil)

// ArchiveWriter is a mock implementation of lexso.ArchiveWriter.
type ArchiveWriter struct {
	ExistsFn func(id string) bool
	SaveFn   func(ctx context.Context, id string, html string) error
}

func (w *ArchiveWriter) Exists(id string) bool {
	return w.ExistsFn(id)
}

func (w *ArchiveWriter) Save(ctx context.Context, id string, html string) error {
	return w.SaveFn(ctx, id, html)
}

var _ lexso.EntityStore = (*EntityStore)(nil)

// EntityStore is a mock implementation of lexso.EntityStore.
type EntityStore struct {
	AppendArticlesFn    func(ctx context.Context, articles []*lexso.Article) error
	AppendSuperlemmasFn func(ctx context.Context, superlemmas []*lexso.Superlemma) error
	AppendIdiomsFn      func(ctx context.Context, idioms []lexso.Idiom) error
	MarkDoneFn          func(ctx context.Context, documentID string) error
	DoneFn              func(ctx context.Context) ([]string, error)
}

func (s *EntityStore) AppendArticles(ctx context.Context, articles []*lexso.Article) error {
	return s.AppendArticlesFn(ctx, articles)
}

func (s *EntityStore) AppendSuperlemmas(ctx context.Context, superlemmas []*lexso.Superlemma) error {
	return s.AppendSuperlemmasFn(ctx, superlemmas)
}

func (s *EntityStore) AppendIdioms(ctx context.Context, idioms []lexso.Idiom) error {
	return s.AppendIdiomsFn(ctx, idioms)
}

func (s *EntityStore) MarkDone(ctx context.Context, documentID string) error {
	return s.MarkDoneFn(ctx, documentID)
}

func (s *EntityStore) Done(ctx context.Context) ([]string, error) {
	return s.DoneFn(ctx)
}
