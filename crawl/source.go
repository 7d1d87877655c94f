package crawl

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fwojciec/wikiscraper"
)

// Compile-time interface verification.
var _ wikiscraper.PageSource = (*PageSource)(nil)

// PageSource resolves phrases to pages, preferring the local cache and
// fetching from the wiki otherwise. Only remote fetches are rate limited.
type PageSource struct {
	Config  wikiscraper.Config
	Fetcher wikiscraper.Fetcher

	// Cache and Limiter are optional.
	Cache   wikiscraper.PageCache
	Limiter wikiscraper.DomainLimiter
}

// Page returns the page for phrase.
func (s *PageSource) Page(ctx context.Context, phrase string) (*wikiscraper.Page, error) {
	id, err := wikiscraper.SanitizeIdentifier(phrase)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		html, err := s.Cache.Get(id)
		if err == nil {
			return &wikiscraper.Page{Identifier: id, HTML: html}, nil
		}
		if wikiscraper.ErrorCode(err) != wikiscraper.ENOTFOUND {
			return nil, fmt.Errorf("read cache for %s: %w", id, err)
		}
	}

	pageURL := s.Config.ArticleURL(phrase)
	if s.Limiter != nil {
		u, err := url.Parse(pageURL)
		if err != nil {
			return nil, wikiscraper.Errorf(wikiscraper.EINVALID, "invalid article URL %q", pageURL)
		}
		if err := s.Limiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	html, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", phrase, err)
	}

	if s.Cache != nil {
		if err := s.Cache.Put(id, html); err != nil {
			return nil, fmt.Errorf("cache %s: %w", id, err)
		}
	}

	return &wikiscraper.Page{Identifier: id, HTML: html}, nil
}
