package crawl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/wikiscraper"
	"github.com/fwojciec/wikiscraper/crawl"
	"github.com/fwojciec/wikiscraper/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCache is a PageCache mock backed by a map.
func memoryCache(pages map[string]string) *mock.PageCache {
	return &mock.PageCache{
		GetFn: func(key string) (string, error) {
			html, ok := pages[key]
			if !ok {
				return "", wikiscraper.Errorf(wikiscraper.ENOTFOUND, "miss")
			}
			return html, nil
		},
		PutFn: func(key, html string) error {
			pages[key] = html
			return nil
		},
	}
}

func TestPageSource_Page(t *testing.T) {
	t.Parallel()

	t.Run("returns cached page without waiting or fetching", func(t *testing.T) {
		t.Parallel()

		source := &crawl.PageSource{
			Config: wikiscraper.DefaultConfig(),
			Cache:  memoryCache(map[string]string{"Team_Rocket": "<html>cached</html>"}),
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					t.Fatal("fetch should not be called on cache hit")
					return "", nil
				},
			},
			Limiter: &mock.DomainLimiter{
				WaitFn: func(ctx context.Context, domain string) error {
					t.Fatal("limiter should not be called on cache hit")
					return nil
				},
			},
		}

		page, err := source.Page(context.Background(), "Team Rocket")

		require.NoError(t, err)
		assert.Equal(t, "Team_Rocket", page.Identifier)
		assert.Equal(t, "<html>cached</html>", page.HTML)
	})

	t.Run("fetches and caches on miss", func(t *testing.T) {
		t.Parallel()

		pages := map[string]string{}
		var fetchedURL, waitedDomain string
		source := &crawl.PageSource{
			Config: wikiscraper.DefaultConfig(),
			Cache:  memoryCache(pages),
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					fetchedURL = url
					return "<html>fresh</html>", nil
				},
			},
			Limiter: &mock.DomainLimiter{
				WaitFn: func(ctx context.Context, domain string) error {
					waitedDomain = domain
					return nil
				},
			},
		}

		page, err := source.Page(context.Background(), "Pikachu#Biology")

		require.NoError(t, err)
		assert.Equal(t, "Pikachu_Biology", page.Identifier)
		assert.Equal(t, "https://bulbapedia.bulbagarden.net/wiki/Pikachu", fetchedURL)
		assert.Equal(t, "bulbapedia.bulbagarden.net", waitedDomain)
		assert.Equal(t, "<html>fresh</html>", pages["Pikachu_Biology"])
	})

	t.Run("works without cache or limiter", func(t *testing.T) {
		t.Parallel()

		source := &crawl.PageSource{
			Config: wikiscraper.DefaultConfig(),
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "<html></html>", nil
				},
			},
		}

		page, err := source.Page(context.Background(), "Ash")

		require.NoError(t, err)
		assert.Equal(t, "Ash", page.Identifier)
	})

	t.Run("propagates fetch failure with phrase", func(t *testing.T) {
		t.Parallel()

		source := &crawl.PageSource{
			Config: wikiscraper.DefaultConfig(),
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "", wikiscraper.Errorf(wikiscraper.ENOTFOUND, "HTTP 404 for %s", url)
				},
			},
		}

		_, err := source.Page(context.Background(), "Missingno")

		require.Error(t, err)
		assert.Equal(t, wikiscraper.ENOTFOUND, wikiscraper.ErrorCode(err))
		assert.Contains(t, err.Error(), "Missingno")
	})

	t.Run("propagates cache read errors other than miss", func(t *testing.T) {
		t.Parallel()

		source := &crawl.PageSource{
			Config: wikiscraper.DefaultConfig(),
			Cache: &mock.PageCache{
				GetFn: func(key string) (string, error) {
					return "", errors.New("permission denied")
				},
			},
		}

		_, err := source.Page(context.Background(), "Ash")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("rejects empty phrase", func(t *testing.T) {
		t.Parallel()

		source := &crawl.PageSource{Config: wikiscraper.DefaultConfig()}

		_, err := source.Page(context.Background(), "")

		assert.Equal(t, wikiscraper.EINVALID, wikiscraper.ErrorCode(err))
	})
}
