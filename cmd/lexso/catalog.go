package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fwojciec/lexso"
	"github.com/fwojciec/lexso/reconcile"
)

// Run executes the catalog load command. The existing word list is
// replaced so entry positions always follow the file.
func (c *CatalogLoadCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	defer f.Close()

	entries, err := reconcile.ReadCatalog(f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lexso.ErrorMessage(err))
		return err
	}

	if err := deps.Catalog.ReplaceEntries(deps.Ctx, entries); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lexso.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Loaded %d entries\n", len(entries))
	return nil
}

// Run executes the catalog find command.
func (c *CatalogFindCmd) Run(deps *Dependencies) error {
	entries, err := deps.Catalog.FindEntries(deps.Ctx, lexso.CatalogFilter{Lemma: &c.Lemma})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lexso.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintf(deps.Stdout, "No entries for %q\n", c.Lemma)
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		cls := lexso.Classify(e.LexicalCategory, e.Lemma)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Lemma, e.LexicalCategory, describe(cls), e.URL())
	}
	return w.Flush()
}

func describe(c lexso.Classification) string {
	if c.Status == lexso.Classified {
		return c.Category.String()
	}
	return "(" + c.Status.String() + ")"
}
