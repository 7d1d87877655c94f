package goquery

import "github.com/PuerkitoBio/goquery"

const (
	contentSelector       = "div.mw-content-ltr"
	legacyContentSelector = "#mw-content-text"
)

// Content returns the article body of doc, or nil if neither the content
// container nor the legacy content container is present.
func Content(doc *goquery.Document) *goquery.Selection {
	if doc == nil {
		return nil
	}
	for _, selector := range []string{contentSelector, legacyContentSelector} {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

// Locate parses html and returns its article body, or nil if absent.
func Locate(html string) *goquery.Selection {
	return Content(parseDocument(html))
}
