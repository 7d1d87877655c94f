package wikiscraper

import (
	"context"
	"net/url"
	"strings"
)

// Page represents a fetched article. It is immutable once constructed.
type Page struct {
	// Identifier is the sanitized page name used for caching and output files.
	Identifier string
	HTML       string
}

// PageSource resolves a phrase to its article page.
// Implementations hide cache lookups, rate limiting and fetching.
type PageSource interface {
	// Page returns the page for the phrase.
	// Returns ENOTFOUND if the article does not exist and EUNAVAILABLE
	// if the origin could not be reached.
	Page(ctx context.Context, phrase string) (*Page, error)
}

// PageCache stores raw page HTML keyed by sanitized identifier.
type PageCache interface {
	// Get returns the cached HTML. Returns ENOTFOUND on a miss.
	Get(key string) (string, error)

	// Put stores HTML under key. Implementations may silently decline
	// to store when the cache is full.
	Put(key, html string) error

	// Len returns the number of cached pages.
	Len() (int, error)

	// Clear removes every cached page.
	Clear() error
}

var identifierReplacer = strings.NewReplacer(
	" ", "_",
	"/", "-",
	`\`, "_",
	"*", "_",
	"?", "_",
	":", "_",
	`"`, "_",
	"<", "_",
	">", "_",
	"|", "_",
	"#", "_",
)

// SanitizeIdentifier converts a phrase into a key that is safe to use as a
// file name. The phrase is percent-decoded first; undecodable phrases are
// used verbatim.
func SanitizeIdentifier(phrase string) (string, error) {
	decoded, err := url.PathUnescape(phrase)
	if err != nil {
		decoded = phrase
	}
	id := identifierReplacer.Replace(strings.TrimSpace(decoded))
	if id == "" {
		return "", Errorf(EINVALID, "phrase required")
	}
	return id, nil
}
