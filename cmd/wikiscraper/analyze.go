package main

import (
	"fmt"

	"github.com/fwojciec/wikiscraper"
)

// Run executes the analyze_relative_word_frequency command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	counts, err := deps.Store.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiscraper.ErrorMessage(err))
		return err
	}

	cmp, err := wikiscraper.CompareFrequencies(wikiscraper.ComparisonMode(c.Mode), c.Count, counts, deps.Language)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiscraper.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, wikiscraper.FormatComparison(cmp))
	if len(cmp.Rows) < c.Count {
		fmt.Fprintf(deps.Stderr, "note: only %d %s words available, %d requested\n", len(cmp.Rows), c.Mode, c.Count)
	}

	if c.Chart == "" {
		return nil
	}
	if err := deps.Charts.Render(c.Chart, cmp); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiscraper.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saved chart to %s\n", c.Chart)
	return nil
}
