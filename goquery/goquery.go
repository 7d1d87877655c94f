// Package goquery implements wikiscraper.Extractor for MediaWiki article
// markup using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikiscraper"
)

// Ensure Extractor implements wikiscraper.Extractor at compile time.
var _ wikiscraper.Extractor = (*Extractor)(nil)

// Extractor extracts summaries, tables, links and words from article pages.
type Extractor struct {
	links LinkRules
}

// NewExtractor creates an Extractor that filters links using the
// article prefix and disallow-lists of cfg.
func NewExtractor(cfg wikiscraper.Config) *Extractor {
	return &Extractor{links: LinkRulesFromConfig(cfg)}
}

// Summary returns the wrapped first non-empty paragraph of the page.
func (e *Extractor) Summary(page *wikiscraper.Page) string {
	return Summary(Locate(page.HTML))
}

// Table returns the n-th genuine table of the page.
// Returns nil without error if the page has no content region.
func (e *Extractor) Table(page *wikiscraper.Page, n int, firstRowIsHeader bool) (*wikiscraper.Table, error) {
	if n < 1 {
		return nil, wikiscraper.Errorf(wikiscraper.EINVALID, "table number must be at least 1, got %d", n)
	}

	content := Locate(page.HTML)
	if content == nil {
		return nil, nil
	}

	sel, err := SelectTable(content, n)
	if err != nil {
		return nil, err
	}

	table := ParseTable(sel, firstRowIsHeader)
	if table == nil {
		return nil, nil
	}
	table.Identifier = page.Identifier
	table.Ordinal = n
	return table, nil
}

// Links returns the distinct article identifiers linked from the page.
func (e *Extractor) Links(page *wikiscraper.Page) []string {
	return Links(Locate(page.HTML), e.links)
}

// Words returns the alphabetic words of the page's visible text.
func (e *Extractor) Words(page *wikiscraper.Page) []string {
	return Words(page.HTML)
}

// parseDocument parses HTML, returning nil if it cannot be read.
func parseDocument(html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	return doc
}

// collapseText returns the text of sel with runs of whitespace collapsed
// to single spaces and the ends trimmed.
func collapseText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}
