package mock

import "github.com/fwojciec/wikiscraper"

var _ wikiscraper.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wikiscraper.Extractor.
type Extractor struct {
	SummaryFn func(page *wikiscraper.Page) string
	TableFn   func(page *wikiscraper.Page, n int, firstRowIsHeader bool) (*wikiscraper.Table, error)
	LinksFn   func(page *wikiscraper.Page) []string
	WordsFn   func(page *wikiscraper.Page) []string
}

func (e *Extractor) Summary(page *wikiscraper.Page) string {
	return e.SummaryFn(page)
}

func (e *Extractor) Table(page *wikiscraper.Page, n int, firstRowIsHeader bool) (*wikiscraper.Table, error) {
	return e.TableFn(page, n, firstRowIsHeader)
}

func (e *Extractor) Links(page *wikiscraper.Page) []string {
	return e.LinksFn(page)
}

func (e *Extractor) Words(page *wikiscraper.Page) []string {
	return e.WordsFn(page)
}
