package mock

import (
	"context"

	"github.com/fwojciec/wikiscraper"
)

var _ wikiscraper.FrequencyStore = (*FrequencyStore)(nil)

// FrequencyStore is a mock implementation of wikiscraper.FrequencyStore.
type FrequencyStore struct {
	LoadFn  func(ctx context.Context) (wikiscraper.WordCounts, error)
	MergeFn func(ctx context.Context, counts wikiscraper.WordCounts) error
	ResetFn func(ctx context.Context) error
}

func (s *FrequencyStore) Load(ctx context.Context) (wikiscraper.WordCounts, error) {
	return s.LoadFn(ctx)
}

func (s *FrequencyStore) Merge(ctx context.Context, counts wikiscraper.WordCounts) error {
	return s.MergeFn(ctx, counts)
}

func (s *FrequencyStore) Reset(ctx context.Context) error {
	return s.ResetFn(ctx)
}

var _ wikiscraper.LanguageFrequencies = (*LanguageFrequencies)(nil)

// LanguageFrequencies is a mock implementation of wikiscraper.LanguageFrequencies.
type LanguageFrequencies struct {
	TopNFn      func(k int) []string
	FrequencyFn func(word string) float64
}

func (l *LanguageFrequencies) TopN(k int) []string {
	return l.TopNFn(k)
}

func (l *LanguageFrequencies) Frequency(word string) float64 {
	return l.FrequencyFn(word)
}

var _ wikiscraper.ChartRenderer = (*ChartRenderer)(nil)

// ChartRenderer is a mock implementation of wikiscraper.ChartRenderer.
type ChartRenderer struct {
	RenderFn func(path string, c *wikiscraper.FrequencyComparison) error
}

func (r *ChartRenderer) Render(path string, c *wikiscraper.FrequencyComparison) error {
	return r.RenderFn(path, c)
}
