package main

import (
	"fmt"
	"log/slog"

	"github.com/fwojciec/lexso"
	"github.com/fwojciec/lexso/pipeline"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if c.Resume {
		deps.Pipeline.Resume = true
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	progress := func(event pipeline.ProgressEvent) {
		switch event.Type {
		case pipeline.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Extracting %d pages\n", event.Total)
		case pipeline.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.Document, lexso.ErrorMessage(event.Error))
			logger.Warn("skipping document", "document", event.Document, "err", event.Error)
		}
	}

	result, err := deps.Pipeline.Process(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error extracting: %s\n", lexso.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Processed %d of %d pages (%d resumed, %d failed)\n",
		result.Processed, result.Documents, result.Skipped, result.Failed)
	fmt.Fprintf(deps.Stdout, "  %d articles, %d superlemmas, %d idioms\n",
		result.Articles, result.Superlemmas, result.Idioms)
	if result.Warnings > 0 {
		fmt.Fprintf(deps.Stdout, "  %d identifiers without expected prefix\n", result.Warnings)
	}
	return nil
}
