package wikiscraper

// Extractor pulls structured information out of article pages.
// Pages without a content region yield empty results rather than errors.
type Extractor interface {
	// Summary returns the first non-empty paragraph of the content region,
	// wrapped to SummaryWidth columns.
	Summary(page *Page) string

	// Table returns the n-th genuine table (1-based) of the content region.
	// Returns EOUTOFRANGE if fewer than n genuine tables exist and nil
	// if the selected table yields no data.
	Table(page *Page, n int, firstRowIsHeader bool) (*Table, error)

	// Links returns the distinct article identifiers linked from the
	// content region, in first-occurrence order.
	Links(page *Page) []string

	// Words returns every alphabetic word of the page's visible text,
	// lower-cased, in document order.
	Words(page *Page) []string
}

// SummaryWidth is the line width summaries are wrapped to.
const SummaryWidth = 150
