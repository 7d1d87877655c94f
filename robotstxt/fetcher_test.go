package robotstxt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/wikiscraper"
	"github.com/fwojciec/wikiscraper/mock"
	"github.com/fwojciec/wikiscraper/robotstxt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rules = `User-agent: *
Disallow: /wiki/Special:

User-agent: wikiscraper
Disallow: /wiki/Special:
Disallow: /w/
`

// site serves robots and records every requested URL.
func site(robots string, robotsErr error, requested *[]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			*requested = append(*requested, url)
			if url == "https://bulbapedia.bulbagarden.net/robots.txt" {
				return robots, robotsErr
			}
			return "<html>page</html>", nil
		},
		CloseFn: func() error { return nil },
	}
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("fetches allowed pages and reads rules once", func(t *testing.T) {
		t.Parallel()

		var requested []string
		f := robotstxt.NewFetcher(site(rules, nil, &requested), "wikiscraper/1.0")

		html, err := f.Fetch(context.Background(), "https://bulbapedia.bulbagarden.net/wiki/Pikachu")
		require.NoError(t, err)
		assert.Equal(t, "<html>page</html>", html)

		_, err = f.Fetch(context.Background(), "https://bulbapedia.bulbagarden.net/wiki/Eevee")
		require.NoError(t, err)

		assert.Equal(t, []string{
			"https://bulbapedia.bulbagarden.net/robots.txt",
			"https://bulbapedia.bulbagarden.net/wiki/Pikachu",
			"https://bulbapedia.bulbagarden.net/wiki/Eevee",
		}, requested)
	})

	t.Run("refuses disallowed pages", func(t *testing.T) {
		t.Parallel()

		var requested []string
		f := robotstxt.NewFetcher(site(rules, nil, &requested), "wikiscraper/1.0")

		_, err := f.Fetch(context.Background(), "https://bulbapedia.bulbagarden.net/w/index.php")

		require.Error(t, err)
		assert.Equal(t, wikiscraper.EFORBIDDEN, wikiscraper.ErrorCode(err))
		assert.Len(t, requested, 1)
	})

	t.Run("missing robots.txt allows everything", func(t *testing.T) {
		t.Parallel()

		var requested []string
		notFound := wikiscraper.Errorf(wikiscraper.ENOTFOUND, "page not found (404)")
		f := robotstxt.NewFetcher(site("", notFound, &requested), "wikiscraper/1.0")

		_, err := f.Fetch(context.Background(), "https://bulbapedia.bulbagarden.net/wiki/Special:Random")

		require.NoError(t, err)
	})

	t.Run("unavailable robots.txt fails the fetch", func(t *testing.T) {
		t.Parallel()

		var requested []string
		f := robotstxt.NewFetcher(site("", errors.New("connection reset"), &requested), "wikiscraper/1.0")

		_, err := f.Fetch(context.Background(), "https://bulbapedia.bulbagarden.net/wiki/Pikachu")

		require.Error(t, err)
		assert.Len(t, requested, 1)
	})

	t.Run("rejects relative URL", func(t *testing.T) {
		t.Parallel()

		var requested []string
		f := robotstxt.NewFetcher(site(rules, nil, &requested), "wikiscraper/1.0")

		_, err := f.Fetch(context.Background(), "/wiki/Pikachu")

		require.Error(t, err)
		assert.Equal(t, wikiscraper.EINVALID, wikiscraper.ErrorCode(err))
		assert.Empty(t, requested)
	})
}
