package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/lexso"
	"github.com/fwojciec/lexso/scrape"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	defer f.Close()

	ids, err := scrape.ReadIdentifiers(f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lexso.ErrorMessage(err))
		return err
	}

	if c.Concurrency > 0 {
		deps.Scraper.Concurrency = c.Concurrency
	}

	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Fetching %d pages\n", event.Total)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.ID, lexso.ErrorMessage(event.Error))
		}
	}

	result, err := deps.Scraper.Scrape(deps.Ctx, ids, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error fetching: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Fetched %d pages (%d already archived, %d failed)\n",
		result.Fetched, result.Skipped, result.Failed)
	return nil
}
