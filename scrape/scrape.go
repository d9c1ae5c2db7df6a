// Package scrape downloads dictionary pages into the document archive.
package scrape

import (
	"context"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/fwojciec/lexso"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency keeps the number of simultaneous connections low
// enough that the dictionary site does not start dropping requests.
const DefaultConcurrency = 5

// Scraper fetches pages that are not yet archived and stores them.
type Scraper struct {
	Fetcher     lexso.Fetcher
	Archive     lexso.ArchiveWriter
	RateLimiter lexso.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
	Logger      *slog.Logger

	// Strip reduces a fetched page to the markup worth archiving.
	// Pages are archived unchanged if nil.
	Strip func(html string) (string, error)
}

// Result holds the outcome of a scrape.
type Result struct {
	Fetched int
	Skipped int
	Failed  int
}

// ProgressEvent reports progress during a scrape.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	ID        string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scrape progress. Calls are
// serialized.
type ProgressFunc func(event ProgressEvent)

type outcome int

const (
	outcomeFetched outcome = iota
	outcomeSkipped
	outcomeFailed
)

// Scrape archives every identifier. Failed pages are counted and reported
// but do not stop the scrape; they are fetched again on the next run since
// nothing was written for them.
func (s *Scraper) Scrape(ctx context.Context, ids []Identifier, progress ProgressFunc) (*Result, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	var (
		mu        sync.Mutex
		result    Result
		completed int
	)
	report := func(id string, o outcome, err error) {
		mu.Lock()
		defer mu.Unlock()
		completed++
		event := ProgressEvent{Completed: completed, Total: len(ids), ID: id, Error: err}
		switch o {
		case outcomeFetched:
			result.Fetched++
			event.Type = ProgressCompleted
		case outcomeSkipped:
			result.Skipped++
			event.Type = ProgressSkipped
		case outcomeFailed:
			result.Failed++
			event.Type = ProgressFailed
		}
		if progress != nil {
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(ids)})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, id := range ids {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if s.Archive.Exists(id.ID) {
				report(id.ID, outcomeSkipped, nil)
				return nil
			}
			if err := s.scrapeOne(gctx, id, delays); err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				report(id.ID, outcomeFailed, err)
				return nil
			}
			report(id.ID, outcomeFetched, nil)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return &result, err
	}
	if err := ctx.Err(); err != nil {
		return &result, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: len(ids)})
	}
	return &result, nil
}

func (s *Scraper) scrapeOne(ctx context.Context, id Identifier, delays []time.Duration) error {
	pageURL := id.URL()

	if s.RateLimiter != nil {
		u, err := url.Parse(pageURL)
		if err != nil {
			return err
		}
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			return err
		}
	}

	html, err := FetchWithRetry(ctx, pageURL, s.Fetcher, s.Logger, delays)
	if err != nil {
		return err
	}

	if s.Strip != nil {
		if html, err = s.Strip(html); err != nil {
			return err
		}
	}

	return s.Archive.Save(ctx, id.ID, html)
}
