package wikiscraper

import (
	"context"
	"sort"
)

// WordCounts maps a word to its cumulative number of occurrences.
type WordCounts map[string]int

// CountWords tallies the occurrences of each word.
func CountWords(words []string) WordCounts {
	counts := make(WordCounts, len(words))
	for _, w := range words {
		counts[w]++
	}
	return counts
}

// Words returns the distinct words, sorted alphabetically.
func (c WordCounts) Words() []string {
	words := make([]string, 0, len(c))
	for w := range c {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Total returns the sum of all counts.
func (c WordCounts) Total() int {
	var n int
	for _, v := range c {
		n += v
	}
	return n
}

// Top returns up to k words with the highest counts.
// Ties are ordered alphabetically so results are stable.
func (c WordCounts) Top(k int) []string {
	words := c.Words()
	sort.SliceStable(words, func(i, j int) bool {
		return c[words[i]] > c[words[j]]
	})
	if k < len(words) {
		words = words[:k]
	}
	return words
}

// FrequencyStore persists cumulative word counts across pages.
// Counts never decrease except through Reset.
type FrequencyStore interface {
	// Load returns the stored counts. Absent or corrupt state is
	// repaired to an empty map rather than reported.
	Load(ctx context.Context) (WordCounts, error)

	// Merge adds counts to the stored counts and persists the result.
	// Merging the same counts twice doubles them.
	Merge(ctx context.Context, counts WordCounts) error

	// Reset replaces the stored counts with an empty map.
	Reset(ctx context.Context) error
}

// LanguageFrequencies provides general word frequencies of a language.
type LanguageFrequencies interface {
	// TopN returns the k most frequent words, most frequent first.
	TopN(k int) []string

	// Frequency returns the relative frequency of word, or 0 if unknown.
	Frequency(word string) float64
}
