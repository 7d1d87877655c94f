package main

import (
	"fmt"

	"github.com/fwojciec/wikiscraper"
)

// Run executes the count_words command.
func (c *CountWordsCmd) Run(deps *Dependencies) error {
	page, err := deps.Pages.Page(deps.Ctx, c.Phrase)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiscraper.ErrorMessage(err))
		return err
	}

	words, err := deps.Crawler.CountWords(deps.Ctx, page, 0)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiscraper.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Counted %d distinct words on %s\n", len(words), page.Identifier)
	return nil
}
