package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/wikiscraper"
	"github.com/fwojciec/wikiscraper/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCache(t *testing.T) {
	t.Parallel()

	t.Run("stores and returns html by key", func(t *testing.T) {
		t.Parallel()

		// Given an empty cache
		dir := t.TempDir()
		cache := fs.NewPageCache(dir, 10)

		// When a page is stored
		require.NoError(t, cache.Put("Team_Rocket", "<html>rocket</html>"))

		// Then it is readable under the same key
		html, err := cache.Get("Team_Rocket")
		require.NoError(t, err)
		assert.Equal(t, "<html>rocket</html>", html)

		// And it lives in a .html file
		_, err = os.Stat(filepath.Join(dir, "Team_Rocket.html"))
		assert.NoError(t, err)
	})

	t.Run("returns not found on miss", func(t *testing.T) {
		t.Parallel()

		cache := fs.NewPageCache(t.TempDir(), 10)

		_, err := cache.Get("Missing")

		assert.Equal(t, wikiscraper.ENOTFOUND, wikiscraper.ErrorCode(err))
	})

	t.Run("stops caching once full", func(t *testing.T) {
		t.Parallel()

		// Given a cache limited to two pages that holds two pages
		cache := fs.NewPageCache(t.TempDir(), 2)
		require.NoError(t, cache.Put("A", "a"))
		require.NoError(t, cache.Put("B", "b"))

		// When a third page is stored
		err := cache.Put("C", "c")

		// Then it is silently skipped
		require.NoError(t, err)
		n, err := cache.Len()
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		_, err = cache.Get("C")
		assert.Equal(t, wikiscraper.ENOTFOUND, wikiscraper.ErrorCode(err))
	})

	t.Run("counts zero for missing directory", func(t *testing.T) {
		t.Parallel()

		cache := fs.NewPageCache(filepath.Join(t.TempDir(), "absent"), 2)

		n, err := cache.Len()

		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("clear removes cached pages only", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cache := fs.NewPageCache(dir, 0)
		require.NoError(t, cache.Put("A", "a"))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0644))

		require.NoError(t, cache.Clear())

		n, err := cache.Len()
		require.NoError(t, err)
		assert.Zero(t, n)
		_, err = os.Stat(filepath.Join(dir, "notes.txt"))
		assert.NoError(t, err)
	})

	t.Run("rejects keys with path separators", func(t *testing.T) {
		t.Parallel()

		cache := fs.NewPageCache(t.TempDir(), 0)

		err := cache.Put("../escape", "x")

		assert.Equal(t, wikiscraper.EINVALID, wikiscraper.ErrorCode(err))
	})
}
