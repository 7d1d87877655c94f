package wikiscraper

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch requests the URL and returns the response body.
	// Returns ENOTFOUND when the origin reports the page missing and
	// EUNAVAILABLE for any other failure.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
