package goquery_test

import (
	"testing"

	"github.com/fwojciec/wikiscraper/goquery"
	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	t.Parallel()

	t.Run("lower-cases alphabetic tokens", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"bad", "bunny", "bad"}, goquery.Words(`<p>Bad bunny Bad</p>`))
	})

	t.Run("drops tokens with digits or punctuation", func(t *testing.T) {
		t.Parallel()

		got := goquery.Words(`<p>Pikachu, the Pokémon #025 evolves into Raichu.</p>`)

		assert.Equal(t, []string{"the", "pokémon", "evolves", "into"}, got)
	})

	t.Run("reads whole document not only content region", func(t *testing.T) {
		t.Parallel()

		got := goquery.Words(`<html><head><title>Title</title></head><body>
<nav>Menu</nav><div class="mw-content-ltr"><p>Body</p></div></body></html>`)

		assert.Equal(t, []string{"title", "menu", "body"}, got)
	})

	t.Run("skips scripts and styles", func(t *testing.T) {
		t.Parallel()

		got := goquery.Words(`<body><script>var tracker</script><style>body color</style><p>visible</p></body>`)

		assert.Equal(t, []string{"visible"}, got)
	})

	t.Run("separates adjacent text nodes", func(t *testing.T) {
		t.Parallel()

		got := goquery.Words(`<p>Team<b>Rocket</b></p>`)

		assert.Equal(t, []string{"team", "rocket"}, got)
	})

	t.Run("returns nothing for empty document", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, goquery.Words(""))
	})
}
