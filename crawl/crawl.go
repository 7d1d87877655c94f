// Package crawl provides word counting over wiki pages and the
// breadth-first traversal that follows article links between them.
package crawl

import (
	"context"
	"fmt"

	"github.com/fwojciec/wikiscraper"
)

// Crawler counts words of pages and traverses the links between them.
type Crawler struct {
	Pages     wikiscraper.PageSource
	Extractor wikiscraper.Extractor
	Store     wikiscraper.FrequencyStore

	// Visits is optional. When set, every counted page is recorded.
	Visits wikiscraper.VisitService
}

// Result holds the outcome of a traversal.
type Result struct {
	Visited int
	Words   int
}

// ProgressEvent reports a page whose words were counted during traversal.
type ProgressEvent struct {
	Phrase string
	Depth  int
	Words  int
	Queued int
}

// ProgressFunc is a callback for reporting traversal progress.
type ProgressFunc func(event ProgressEvent)

// CountWords merges the words of page into the store and returns the
// distinct words seen on the page. Depth is recorded with the visit.
func (c *Crawler) CountWords(ctx context.Context, page *wikiscraper.Page, depth int) ([]string, error) {
	counts := wikiscraper.CountWords(c.Extractor.Words(page))

	if err := c.Store.Merge(ctx, counts); err != nil {
		return nil, fmt.Errorf("merge words of %s: %w", page.Identifier, err)
	}

	if c.Visits != nil {
		visit := &wikiscraper.Visit{
			Identifier:    page.Identifier,
			Depth:         depth,
			DistinctWords: len(counts),
			TotalWords:    counts.Total(),
		}
		if err := c.Visits.CreateVisit(ctx, visit, page.HTML); err != nil {
			return nil, fmt.Errorf("record visit of %s: %w", page.Identifier, err)
		}
	}

	return counts.Words(), nil
}

// AutoCountWords counts the words of the page for phrase and of every
// page reachable from it through at most depth links, visiting pages in
// breadth-first order and each phrase at most once.
//
// A depth of zero or less does nothing. The first page that cannot be
// fetched ends the traversal; counts merged before it are kept.
func (c *Crawler) AutoCountWords(ctx context.Context, phrase string, depth int, progress ProgressFunc) (*Result, error) {
	result := &Result{}
	if depth <= 0 {
		return result, nil
	}

	frontier := NewFrontier()
	frontier.Push(wikiscraper.FrontierItem{Phrase: phrase, Depth: 0})

	for {
		item, ok := frontier.Pop()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		page, err := c.Pages.Page(ctx, item.Phrase)
		if err != nil {
			return result, fmt.Errorf("visit %s at depth %d: %w", item.Phrase, item.Depth, err)
		}

		words, err := c.CountWords(ctx, page, item.Depth)
		if err != nil {
			return result, err
		}
		result.Visited++
		result.Words += len(words)

		if item.Depth < depth {
			for _, link := range c.Extractor.Links(page) {
				frontier.Push(wikiscraper.FrontierItem{Phrase: link, Depth: item.Depth + 1})
			}
		}

		if progress != nil {
			progress(ProgressEvent{
				Phrase: item.Phrase,
				Depth:  item.Depth,
				Words:  len(words),
				Queued: frontier.Len(),
			})
		}
	}

	return result, nil
}
