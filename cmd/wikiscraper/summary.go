package main

import (
	"fmt"

	"github.com/fwojciec/wikiscraper"
)

// Run executes the summary command.
func (c *SummaryCmd) Run(deps *Dependencies) error {
	page, err := deps.Pages.Page(deps.Ctx, c.Phrase)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiscraper.ErrorMessage(err))
		return err
	}

	summary := deps.Extractor.Summary(page)
	fmt.Fprintln(deps.Stdout, summary)
	if summary == "" {
		fmt.Fprintf(deps.Stderr, "No summary found for %q.\n", c.Phrase)
	}
	return nil
}
