package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/fwojciec/lexso"
	main "github.com/fwojciec/lexso/cmd/lexso"
	"github.com/fwojciec/lexso/mock"
	"github.com/fwojciec/lexso/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	newPipeline := func(done []string) (*pipeline.Pipeline, *[]string) {
		var stored []string
		p := &pipeline.Pipeline{
			Source: &mock.DocumentSource{
				ListFn: func(_ context.Context) ([]string, error) { return []string{"1", "2", "3"}, nil },
				LoadFn: func(_ context.Context, id string) (string, error) {
					if id == "3" {
						return "", lexso.Errorf(lexso.ESOURCE, "page %s unreadable", id)
					}
					return id, nil
				},
			},
			Extractor: &mock.ArticleExtractor{
				ExtractArticlesFn: func(html string) ([]*lexso.Article, error) {
					s := lexso.NewSuperlemma("snr"+html, lexso.NewLemvar("lnr"+html, "bil", nil))
					return []*lexso.Article{{Lemmas: []*lexso.Superlemma{s}}}, nil
				},
			},
			Store: &mock.EntityStore{
				AppendArticlesFn:    func(_ context.Context, _ []*lexso.Article) error { return nil },
				AppendSuperlemmasFn: func(_ context.Context, _ []*lexso.Superlemma) error { return nil },
				AppendIdiomsFn:      func(_ context.Context, _ []lexso.Idiom) error { return nil },
				MarkDoneFn: func(_ context.Context, id string) error {
					stored = append(stored, id)
					return nil
				},
				DoneFn: func(_ context.Context) ([]string, error) { return done, nil },
			},
		}
		return p, &stored
	}

	t.Run("prints summary and skipped pages", func(t *testing.T) {
		t.Parallel()

		p, stored := newPipeline(nil)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: stderr, Pipeline: p}

		err := (&main.ExtractCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, *stored)
		assert.Contains(t, stdout.String(), "Extracting 3 pages")
		assert.Contains(t, stdout.String(), "Processed 2 of 3 pages (0 resumed, 1 failed)")
		assert.Contains(t, stdout.String(), "2 articles, 2 superlemmas, 0 idioms")
		assert.Contains(t, stderr.String(), "skip 3: page 3 unreadable")
	})

	t.Run("resume skips completed pages", func(t *testing.T) {
		t.Parallel()

		p, stored := newPipeline([]string{"1"})
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Pipeline: p}

		err := (&main.ExtractCmd{Resume: true}).Run(deps)

		require.NoError(t, err)
		assert.True(t, p.Resume)
		assert.Equal(t, []string{"2"}, *stored)
		assert.Contains(t, stdout.String(), "(1 resumed, 1 failed)")
	})

	t.Run("logs skipped pages", func(t *testing.T) {
		t.Parallel()

		p, _ := newPipeline(nil)
		logs := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Logger:   slog.New(slog.NewJSONHandler(logs, nil)),
			Pipeline: p,
		}

		err := (&main.ExtractCmd{}).Run(deps)

		require.NoError(t, err)
		var record map[string]any
		require.NoError(t, json.Unmarshal(logs.Bytes(), &record))
		assert.Equal(t, "WARN", record["level"])
		assert.Equal(t, "skipping document", record["msg"])
		assert.Equal(t, "3", record["document"])
		assert.Contains(t, record["err"], "page 3 unreadable")
	})
}
