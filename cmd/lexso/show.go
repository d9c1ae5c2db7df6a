package main

import (
	"fmt"

	"github.com/fwojciec/lexso"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	html, err := deps.Pages.Load(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lexso.ErrorMessage(err))
		return err
	}

	md, err := deps.Converter.Convert(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lexso.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "# %s\n\n%s\n", lexso.DictionaryURL+"?id="+c.ID, md)
	return nil
}
