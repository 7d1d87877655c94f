package main

import (
	"fmt"

	"github.com/fwojciec/wikiscraper"
	"github.com/fwojciec/wikiscraper/crawl"
)

// Run executes the auto_count_words command. The wait between fetches is
// applied by the page source wired in Main.
func (c *AutoCountWordsCmd) Run(deps *Dependencies) error {
	if c.Wait < 0 {
		fmt.Fprintf(deps.Stderr, "error: --wait must not be negative\n")
		return wikiscraper.Errorf(wikiscraper.EINVALID, "wait must not be negative, got %g", c.Wait)
	}

	progress := func(e crawl.ProgressEvent) {
		fmt.Fprintf(deps.Stdout, "[depth %d] %s: %d words, %d queued\n", e.Depth, e.Phrase, e.Words, e.Queued)
	}

	result, err := deps.Crawler.AutoCountWords(deps.Ctx, c.Phrase, c.Depth, progress)
	if err != nil {
		if result != nil && result.Visited > 0 {
			fmt.Fprintf(deps.Stderr, "Stopped after %d pages.\n", result.Visited)
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiscraper.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Visited %d pages\n", result.Visited)
	return nil
}
