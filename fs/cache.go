package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/wikiscraper"
)

// Ensure PageCache implements wikiscraper.PageCache at compile time.
var _ wikiscraper.PageCache = (*PageCache)(nil)

const cacheExt = ".html"

// PageCache stores page HTML as {key}.html files in a directory.
// Once maxSize pages are stored, further pages are not cached.
type PageCache struct {
	dir     string
	maxSize int
}

// NewPageCache creates a PageCache in dir holding at most maxSize pages.
// A maxSize of zero disables the limit.
func NewPageCache(dir string, maxSize int) *PageCache {
	return &PageCache{dir: dir, maxSize: maxSize}
}

func (c *PageCache) path(key string) string {
	return filepath.Join(c.dir, key+cacheExt)
}

// Get returns the cached HTML for key. Returns ENOTFOUND on a miss.
func (c *PageCache) Get(key string) (string, error) {
	if err := validateName(key); err != nil {
		return "", err
	}
	b, err := os.ReadFile(c.path(key))
	if os.IsNotExist(err) {
		return "", wikiscraper.Errorf(wikiscraper.ENOTFOUND, "page %q not cached", key)
	} else if err != nil {
		return "", err
	}
	return string(b), nil
}

// Put stores html under key unless the cache is full.
func (c *PageCache) Put(key, html string) error {
	if err := validateName(key); err != nil {
		return err
	}
	if c.maxSize > 0 {
		n, err := c.Len()
		if err != nil {
			return err
		}
		if n >= c.maxSize {
			return nil
		}
	}
	return writeFileAtomic(c.path(key), []byte(html))
}

// Len returns the number of cached pages.
func (c *PageCache) Len() (int, error) {
	return countMatching(c.dir, cacheExt)
}

// Clear removes every cached page.
func (c *PageCache) Clear() error {
	return removeMatching(c.dir, cacheExt)
}
