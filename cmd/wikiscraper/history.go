package main

import (
	"fmt"

	"github.com/fwojciec/wikiscraper"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := wikiscraper.VisitFilter{Limit: c.Limit}
	if c.Phrase != "" {
		id, err := wikiscraper.SanitizeIdentifier(c.Phrase)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wikiscraper.ErrorMessage(err))
			return err
		}
		filter.Identifier = &id
	}

	visits, err := deps.Visits.FindVisits(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiscraper.ErrorMessage(err))
		return err
	}

	if len(visits) == 0 {
		fmt.Fprintln(deps.Stdout, "No visits recorded. Use 'wikiscraper count_words' to count an article.")
		return nil
	}

	fmt.Fprint(deps.Stdout, wikiscraper.FormatVisits(visits))
	return nil
}
