package lexso

import "context"

// DocumentSource provides archived dictionary pages.
type DocumentSource interface {
	// List returns the identifiers of all archived documents in a stable order.
	List(ctx context.Context) ([]string, error)

	// Load returns the decompressed HTML of one document.
	// Returns ESOURCE if the archive cannot be read.
	Load(ctx context.Context, id string) (string, error)
}

// ArchiveWriter stores fetched pages. A saved document must be complete
// before it becomes visible to a DocumentSource.
type ArchiveWriter interface {
	// Exists returns true if the document has already been archived.
	Exists(id string) bool

	// Save compresses and stores the page.
	Save(ctx context.Context, id string, html string) error
}

// EntityStore appends extracted entities to persistent storage.
// Stored records are never rewritten.
type EntityStore interface {
	AppendArticles(ctx context.Context, articles []*Article) error
	AppendSuperlemmas(ctx context.Context, superlemmas []*Superlemma) error
	AppendIdioms(ctx context.Context, idioms []Idiom) error

	// MarkDone records that every entity of a document has been stored.
	MarkDone(ctx context.Context, documentID string) error

	// Done returns the identifiers passed to MarkDone, in order.
	Done(ctx context.Context) ([]string, error)
}
