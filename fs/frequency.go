package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"

	"github.com/fwojciec/wikiscraper"
)

// Ensure FrequencyStore implements wikiscraper.FrequencyStore at compile time.
var _ wikiscraper.FrequencyStore = (*FrequencyStore)(nil)

// FrequencyStore keeps word counts in a single JSON object file.
// Every operation rewrites the whole file atomically. It assumes a
// single writer.
type FrequencyStore struct {
	path string
}

// NewFrequencyStore creates a FrequencyStore backed by the file at path.
func NewFrequencyStore(path string) *FrequencyStore {
	return &FrequencyStore{path: path}
}

// Path returns the location of the backing file.
func (s *FrequencyStore) Path() string {
	return s.path
}

// Load returns the stored counts. A missing, empty or malformed file is
// rewritten as an empty object and reported as empty counts.
func (s *FrequencyStore) Load(ctx context.Context) (wikiscraper.WordCounts, error) {
	b, err := os.ReadFile(s.path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	counts := make(wikiscraper.WordCounts)
	if len(bytes.TrimSpace(b)) > 0 {
		if err := json.Unmarshal(b, &counts); err == nil && counts != nil {
			return counts, nil
		}
		counts = make(wikiscraper.WordCounts)
	}

	if err := s.save(counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// Merge adds counts to the stored counts.
func (s *FrequencyStore) Merge(ctx context.Context, counts wikiscraper.WordCounts) error {
	stored, err := s.Load(ctx)
	if err != nil {
		return err
	}
	for w, n := range counts {
		if n < 0 {
			return wikiscraper.Errorf(wikiscraper.EINVALID, "negative count %d for %q", n, w)
		}
		stored[w] += n
	}
	return s.save(stored)
}

// Reset replaces the stored counts with an empty object.
func (s *FrequencyStore) Reset(ctx context.Context) error {
	return s.save(make(wikiscraper.WordCounts))
}

// save writes counts as 2-space indented JSON without escaping HTML
// or non-ASCII characters.
func (s *FrequencyStore) save(counts wikiscraper.WordCounts) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(counts); err != nil {
		return err
	}
	return writeFileAtomic(s.path, buf.Bytes())
}
