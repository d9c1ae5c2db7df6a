// Package pipeline runs entity extraction over an archive of dictionary
// pages, one document at a time, appending each document's entities to an
// entity store before moving on.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/fwojciec/lexso"
)

// Pipeline extracts and stores the entities of every archived document.
type Pipeline struct {
	Source    lexso.DocumentSource
	Extractor lexso.ArticleExtractor
	Store     lexso.EntityStore

	// Seen, if set, suppresses superlemmas and idioms already stored for
	// earlier documents.
	Seen lexso.SeenSet

	// Resume skips documents the store has already marked done.
	Resume bool

	Logger *slog.Logger
}

// Result holds the outcome of a pipeline run.
type Result struct {
	Documents   int
	Processed   int
	Skipped     int
	Failed      int
	Articles    int
	Superlemmas int
	Idioms      int
	Warnings    int
}

// ProgressEvent reports progress during a pipeline run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Document  string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting pipeline progress.
type ProgressFunc func(event ProgressEvent)

// batch holds the entities of a single document. It is dropped as soon as
// the document has been stored.
type batch struct {
	articles    []*lexso.Article
	superlemmas []*lexso.Superlemma
	idioms      []lexso.Idiom
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

// Process runs every document through extraction and storage, strictly in
// order. Documents that cannot be read or parsed are reported through
// progress and skipped; storage failures stop the run. Cancellation is
// honoured between documents.
func (p *Pipeline) Process(ctx context.Context, progress ProgressFunc) (*Result, error) {
	ids, err := p.Source.List(ctx)
	if err != nil {
		return nil, err
	}

	done := make(map[string]bool)
	if p.Resume {
		doneIDs, err := p.Store.Done(ctx)
		if err != nil {
			return nil, err
		}
		for _, id := range doneIDs {
			done[id] = true
		}
	}

	result := &Result{Documents: len(ids)}
	notify(progress, ProgressEvent{Type: ProgressStarted, Total: len(ids)})

	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if done[id] {
			result.Skipped++
			continue
		}

		b, err := p.extract(ctx, id)
		if err != nil {
			result.Failed++
			notify(progress, ProgressEvent{
				Type:      ProgressFailed,
				Completed: i + 1,
				Total:     len(ids),
				Document:  id,
				Error:     err,
			})
			continue
		}

		result.Warnings += p.checkIDs(id, b.superlemmas)

		if err := p.store(ctx, id, b); err != nil {
			return result, err
		}

		result.Processed++
		result.Articles += len(b.articles)
		result.Superlemmas += len(b.superlemmas)
		result.Idioms += len(b.idioms)

		notify(progress, ProgressEvent{
			Type:      ProgressCompleted,
			Completed: i + 1,
			Total:     len(ids),
			Document:  id,
		})
	}

	notify(progress, ProgressEvent{Type: ProgressFinished, Completed: len(ids), Total: len(ids)})
	return result, nil
}

// extract loads a document and builds its deduplicated entity batch.
func (p *Pipeline) extract(ctx context.Context, id string) (*batch, error) {
	html, err := p.Source.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	articles, err := p.Extractor.ExtractArticles(html)
	if err != nil {
		return nil, err
	}

	b := &batch{articles: articles}
	b.superlemmas = lexso.DedupSuperlemmas(lexso.Superlemmas(b.articles))
	if p.Seen != nil {
		b.superlemmas = lexso.UnseenSuperlemmas(p.Seen, b.superlemmas)
	}
	// Link stubs never enter Seen, so a later canonical copy is still written.
	b.idioms = lexso.PublishableIdioms(lexso.DedupIdioms(lexso.Idioms(b.superlemmas)))
	if p.Seen != nil {
		b.idioms = lexso.UnseenIdioms(p.Seen, b.idioms)
	}
	return b, nil
}

// store appends a batch in a fixed order: articles, superlemmas, idioms.
func (p *Pipeline) store(ctx context.Context, id string, b *batch) error {
	if err := p.Store.AppendArticles(ctx, b.articles); err != nil {
		return err
	}
	if err := p.Store.AppendSuperlemmas(ctx, b.superlemmas); err != nil {
		return err
	}
	if err := p.Store.AppendIdioms(ctx, b.idioms); err != nil {
		return err
	}
	return p.Store.MarkDone(ctx, id)
}

// checkIDs logs elements whose identifier lacks the expected prefix and
// returns how many were found.
func (p *Pipeline) checkIDs(document string, superlemmas []*lexso.Superlemma) int {
	var n int
	for _, s := range superlemmas {
		for _, e := range s.Elements() {
			if e.CheckID() {
				continue
			}
			n++
			p.logger().Warn("identifier without expected prefix",
				"document", document,
				"superlemma", s.ID,
				"id", e.ID,
				"prefix", e.Prefix,
			)
		}
	}
	return n
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
