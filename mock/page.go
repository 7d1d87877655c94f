package mock

import (
	"context"

	"github.com/fwojciec/wikiscraper"
)

var _ wikiscraper.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of wikiscraper.PageSource.
type PageSource struct {
	PageFn func(ctx context.Context, phrase string) (*wikiscraper.Page, error)
}

func (s *PageSource) Page(ctx context.Context, phrase string) (*wikiscraper.Page, error) {
	return s.PageFn(ctx, phrase)
}

var _ wikiscraper.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of wikiscraper.PageCache.
type PageCache struct {
	GetFn   func(key string) (string, error)
	PutFn   func(key, html string) error
	LenFn   func() (int, error)
	ClearFn func() error
}

func (c *PageCache) Get(key string) (string, error) {
	return c.GetFn(key)
}

func (c *PageCache) Put(key, html string) error {
	return c.PutFn(key, html)
}

func (c *PageCache) Len() (int, error) {
	return c.LenFn()
}

func (c *PageCache) Clear() error {
	return c.ClearFn()
}
