package wordfreq_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/wikiscraper"
	"github.com/fwojciec/wikiscraper/wordfreq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnglish(t *testing.T) {
	t.Parallel()

	t.Run("most frequent word is the", func(t *testing.T) {
		t.Parallel()

		l := wordfreq.English()

		assert.Equal(t, []string{"the"}, l.TopN(1))
		assert.Greater(t, l.Frequency("the"), l.Frequency("of"))
	})

	t.Run("unknown word has zero frequency", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, wordfreq.English().Frequency("pikachu"))
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		t.Parallel()

		l := wordfreq.English()

		assert.Equal(t, l.Frequency("and"), l.Frequency("AND"))
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("orders words by frequency", func(t *testing.T) {
		t.Parallel()

		l, err := wordfreq.Load(strings.NewReader("# comment\nrocket\t0.1\nteam\t0.3\nmeowth\t0.2\n"))

		require.NoError(t, err)
		assert.Equal(t, 3, l.Len())
		assert.Equal(t, []string{"team", "meowth", "rocket"}, l.TopN(10))
		assert.Equal(t, []string{"team", "meowth"}, l.TopN(2))
		assert.InDelta(t, 0.2, l.Frequency("meowth"), 1e-12)
	})

	t.Run("keeps file order for ties", func(t *testing.T) {
		t.Parallel()

		l, err := wordfreq.Load(strings.NewReader("b\t0.5\na\t0.5\n"))

		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, l.TopN(2))
	})

	t.Run("first duplicate wins", func(t *testing.T) {
		t.Parallel()

		l, err := wordfreq.Load(strings.NewReader("Ash\t0.4\nash\t0.9\n"))

		require.NoError(t, err)
		assert.Equal(t, 1, l.Len())
		assert.InDelta(t, 0.4, l.Frequency("ash"), 1e-12)
	})

	t.Run("returns nil for non-positive k", func(t *testing.T) {
		t.Parallel()

		l, err := wordfreq.Load(strings.NewReader("a\t1\n"))

		require.NoError(t, err)
		assert.Nil(t, l.TopN(0))
	})

	t.Run("returns invalid for malformed frequency", func(t *testing.T) {
		t.Parallel()

		_, err := wordfreq.Load(strings.NewReader("a\tlots\n"))

		require.Error(t, err)
		assert.Equal(t, wikiscraper.EINVALID, wikiscraper.ErrorCode(err))
	})

	t.Run("returns invalid for wrong field count", func(t *testing.T) {
		t.Parallel()

		_, err := wordfreq.Load(strings.NewReader("a\t0.1\textra\n"))

		require.Error(t, err)
		assert.Equal(t, wikiscraper.EINVALID, wikiscraper.ErrorCode(err))
	})
}
