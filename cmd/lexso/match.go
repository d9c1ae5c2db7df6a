package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/lexso"
	"github.com/fwojciec/lexso/reconcile"
)

// Run executes the match command.
func (c *MatchCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	defer f.Close()

	lexemes, err := reconcile.ReadLexemes(f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lexso.ErrorMessage(err))
		return err
	}

	r := deps.Reconciler
	if c.CountOnly {
		r.CountOnly = true
	}
	if c.AddNoValue {
		r.AddNoValue = true
	}
	if c.Pause > 0 {
		r.NotFoundPause = c.Pause
	}

	progress := func(event reconcile.ProgressEvent) {
		fmt.Fprintf(deps.Stdout, "  %d/%d lexemes\n", event.Processed, event.Total)
	}

	result, err := r.Run(deps.Ctx, lexemes, progress)
	if result != nil {
		printMatchResult(deps, result)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error matching: %s\n", lexso.ErrorMessage(err))
		return err
	}
	return nil
}

func printMatchResult(deps *Dependencies, r *reconcile.Result) {
	fmt.Fprintf(deps.Stdout, "Processed %d lexemes\n", r.Processed)
	fmt.Fprintf(deps.Stdout, "  matched:             %d\n", r.Matched)
	fmt.Fprintf(deps.Stdout, "  not in dictionary:   %d\n", r.NotInDictionary)
	fmt.Fprintf(deps.Stdout, "  category mismatch:   %d\n", r.CategoryMismatch)
	if r.NoValueAdded > 0 {
		fmt.Fprintf(deps.Stdout, "  no-value added:      %d\n", r.NoValueAdded)
	}
	if r.AmbiguousSkipped > 0 {
		fmt.Fprintf(deps.Stdout, "  ambiguous:           %d\n", r.AmbiguousSkipped)
	}
	if r.Rejected > 0 {
		fmt.Fprintf(deps.Stdout, "  rejected:            %d\n", r.Rejected)
	}
	if r.Unclassified > 0 {
		fmt.Fprintf(deps.Stdout, "  unclassified entries: %d\n", r.Unclassified)
	}
}
