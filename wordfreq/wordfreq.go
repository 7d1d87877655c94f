// Package wordfreq provides general-language word frequencies read from a
// tab-separated word list.
package wordfreq

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/fwojciec/wikiscraper"
)

//go:embed en.tsv
var english string

// Ensure List implements wikiscraper.LanguageFrequencies at compile time.
var _ wikiscraper.LanguageFrequencies = (*List)(nil)

// List holds relative word frequencies ordered from most to least frequent.
type List struct {
	words []string
	freq  map[string]float64
}

var englishOnce = sync.OnceValue(func() *List {
	l, err := Load(strings.NewReader(english))
	if err != nil {
		panic("wordfreq: embedded English list: " + err.Error())
	}
	return l
})

// English returns the embedded list of common English words.
func English() *List {
	return englishOnce()
}

// Load reads a word list with one "word<TAB>frequency" record per line.
// Lines starting with '#' are ignored. Words are lowercased; the first
// occurrence of a duplicate word wins.
func Load(r io.Reader) (*List, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.FieldsPerRecord = 2
	cr.LazyQuotes = true

	l := &List{freq: make(map[string]float64)}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wikiscraper.Errorf(wikiscraper.EINVALID, "invalid word list: %s", err)
		}
		word := strings.ToLower(strings.TrimSpace(rec[0]))
		if word == "" {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil || f < 0 {
			line, _ := cr.FieldPos(1)
			return nil, wikiscraper.Errorf(wikiscraper.EINVALID, "invalid frequency %q for %q on line %d", rec[1], word, line)
		}
		if _, ok := l.freq[word]; ok {
			continue
		}
		l.freq[word] = f
		l.words = append(l.words, word)
	}

	slices.SortStableFunc(l.words, func(a, b string) int {
		switch fa, fb := l.freq[a], l.freq[b]; {
		case fa > fb:
			return -1
		case fa < fb:
			return 1
		}
		return 0
	})
	return l, nil
}

// Len returns the number of words in the list.
func (l *List) Len() int {
	return len(l.words)
}

// TopN returns up to k words, most frequent first.
func (l *List) TopN(k int) []string {
	if k <= 0 {
		return nil
	}
	return slices.Clone(l.words[:min(k, len(l.words))])
}

// Frequency returns the relative frequency of word, or 0 if it is not listed.
func (l *List) Frequency(word string) float64 {
	return l.freq[strings.ToLower(word)]
}
