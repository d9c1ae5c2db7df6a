package main_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/lexso"
	main "github.com/fwojciec/lexso/cmd/lexso"
	"github.com/fwojciec/lexso/mock"
	"github.com/fwojciec/lexso/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("archives new pages and reports failures", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		saved := map[string]string{}
		scraper := &scrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					if url == lexso.DictionaryURL+"?id=3" {
						return "", lexso.Errorf(lexso.ENOTFOUND, "HTTP 404 for %s", url)
					}
					return "<html>" + url + "</html>", nil
				},
			},
			Archive: &mock.ArchiveWriter{
				ExistsFn: func(id string) bool { return id == "2" },
				SaveFn: func(_ context.Context, id, html string) error {
					mu.Lock()
					defer mu.Unlock()
					saved[id] = html
					return nil
				},
			},
			RetryDelays: []time.Duration{},
		}

		path := writeFile(t, "ids.tsv", "1\tbil\n2\tbila\n3\tsaknas\n")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Scraper: scraper,
		}

		cmd := &main.FetchCmd{Path: path, Concurrency: 2}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 2, scraper.Concurrency)
		assert.Contains(t, saved, "1")
		assert.NotContains(t, saved, "2")
		assert.Contains(t, stdout.String(), "Fetching 3 pages")
		assert.Contains(t, stdout.String(), "Fetched 1 pages (1 already archived, 1 failed)")
		assert.Contains(t, stderr.String(), "skip 3")
	})

	t.Run("fails on malformed identifier file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "ids.tsv", "1\n")
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Scraper: &scrape.Scraper{},
		}

		err := (&main.FetchCmd{Path: path}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, lexso.EINVALID, lexso.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}
