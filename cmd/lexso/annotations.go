package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/fwojciec/lexso"
)

// Run executes the annotations command.
func (c *AnnotationsCmd) Run(deps *Dependencies) error {
	filter := lexso.AnnotationFilter{Limit: c.Limit}
	if c.Lexeme != "" {
		filter.LexemeID = &c.Lexeme
	}

	annotations, err := deps.Annotations.FindAnnotations(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lexso.ErrorMessage(err))
		return err
	}

	if len(annotations) == 0 {
		fmt.Fprintln(deps.Stdout, "No identifiers attached.")
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	for _, a := range annotations {
		value := a.ForeignID.ID
		if a.ForeignID.NoValue {
			value = "(no value)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.LexemeID, a.ForeignID.Property, value, a.CreatedAt.Format(time.DateTime))
	}
	return w.Flush()
}
