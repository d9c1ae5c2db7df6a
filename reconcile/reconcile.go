// Package reconcile matches knowledge-base lexemes against the dictionary
// catalog and attaches dictionary identifiers to the ones that match.
package reconcile

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lexso"
)

// DefaultProgressEvery is how many lexemes pass between progress reports.
const DefaultProgressEvery = 1000

// Reconciler drives the matching of a list of lexemes.
type Reconciler struct {
	Catalog  lexso.CatalogService
	Attacher lexso.Attacher

	// Property and SourceItemID describe the attached identifier.
	Property     string
	SourceItemID string

	// AddNoValue attaches a no-value annotation to lexemes whose lemma is
	// not in the catalog. Otherwise the run pauses for NotFoundPause so
	// the notice can be read.
	AddNoValue    bool
	NotFoundPause time.Duration

	// CountOnly counts matches without attaching anything or pausing.
	CountOnly bool

	ProgressEvery int
	Logger        *slog.Logger

	// Sleep waits for d or until ctx is done. Defaults to a timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Result holds the counts of a reconcile run.
type Result struct {
	Processed        int
	Matched          int
	NotInDictionary  int
	CategoryMismatch int
	NoValueAdded     int

	// AmbiguousSkipped counts lexemes left unmatched because several
	// entries qualified. First-match-wins keeps it at zero.
	AmbiguousSkipped int

	// Rejected counts attachments refused by the attacher, typically
	// because the lexeme already carries the property.
	Rejected int

	// Unclassified counts catalog entries whose category label no rule
	// recognised. Each occurrence is logged.
	Unclassified int
}

// ProgressEvent reports progress during a reconcile run.
type ProgressEvent struct {
	Processed int
	Total     int
}

// ProgressFunc is a callback for periodic progress reports.
type ProgressFunc func(event ProgressEvent)

func (r *Reconciler) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}

func (r *Reconciler) sleep(ctx context.Context, d time.Duration) error {
	if r.Sleep != nil {
		return r.Sleep(ctx, d)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Run matches each lexeme in order. Catalog and attacher failures stop the
// run; the returned result covers the lexemes processed so far.
func (r *Reconciler) Run(ctx context.Context, lexemes []lexso.Lexeme, progress ProgressFunc) (*Result, error) {
	every := r.ProgressEvery
	if every <= 0 {
		every = DefaultProgressEvery
	}

	result := &Result{}
	for _, l := range lexemes {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if progress != nil && result.Processed > 0 && result.Processed%every == 0 {
			progress(ProgressEvent{Processed: result.Processed, Total: len(lexemes)})
		}

		if err := r.reconcile(ctx, l, result); err != nil {
			return result, err
		}
		result.Processed++
	}
	return result, nil
}

func (r *Reconciler) reconcile(ctx context.Context, l lexso.Lexeme, result *Result) error {
	log := r.logger().With("lexeme", l.ID, "lemma", l.Lemma)
	if !r.CountOnly {
		log.Debug("matching lexeme", "category", l.LexicalCategory)
	}

	lemma := l.Lemma
	entries, err := r.Catalog.FindEntries(ctx, lexso.CatalogFilter{Lemma: &lemma})
	if err != nil {
		return err
	}

	m := lexso.Match(l, entries)
	for _, e := range m.Unclassified {
		result.Unclassified++
		log.Error("unrecognised dictionary category, skipping entry",
			"category", e.LexicalCategory,
			"url", e.URL(),
		)
	}

	switch m.Outcome {
	case lexso.Matched:
		result.Matched++
		if r.CountOnly {
			return nil
		}
		_, err := r.attach(ctx, log, l, lexso.ForeignID{
			ID:           m.Entry.ID,
			Property:     r.Property,
			SourceItemID: r.SourceItemID,
		}, result)
		return err

	case lexso.AmbiguousSkipped:
		result.AmbiguousSkipped++
		log.Info("several dictionary entries qualify, skipping")
		return nil
	}

	if m.Reason == lexso.ReasonCategoryMismatch {
		result.CategoryMismatch++
		if !r.CountOnly {
			log.Info("categories did not match, skipping", "candidates", m.Candidates)
		}
		return nil
	}

	result.NotInDictionary++
	if r.CountOnly {
		return nil
	}
	log.Warn("not found in dictionary word list", "search", lexso.SearchURL(l.Lemma))
	if r.AddNoValue {
		attached, err := r.attach(ctx, log, l, lexso.ForeignID{Property: r.Property, NoValue: true}, result)
		if attached {
			result.NoValueAdded++
		}
		return err
	}
	return r.sleep(ctx, r.NotFoundPause)
}

// attach records the identifier. Refusals are logged and counted rather
// than returned.
func (r *Reconciler) attach(ctx context.Context, log *slog.Logger, l lexso.Lexeme, id lexso.ForeignID, result *Result) (bool, error) {
	err := r.Attacher.AttachIdentifier(ctx, l.ID, id)
	switch {
	case err == nil:
		return true, nil
	case lexso.ErrorCode(err) == lexso.EINVALID:
		result.Rejected++
		log.Warn("attachment rejected", "err", lexso.ErrorMessage(err))
		return false, nil
	}
	return false, err
}
