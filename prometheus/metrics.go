// Package prometheus records fetch and word count metrics with
// github.com/prometheus/client_golang and writes them in the text format
// read by the node exporter textfile collector.
package prometheus

import (
	"context"
	"time"

	"github.com/fwojciec/wikiscraper"
	"github.com/prometheus/client_golang/prometheus"
)

const labelResult = "result"

// Metrics holds the collectors of one program run.
type Metrics struct {
	registry      *prometheus.Registry
	fetches       *prometheus.CounterVec
	fetchDuration prometheus.Summary
	fetchedBytes  prometheus.Counter
	mergedWords   prometheus.Counter
	merges        prometheus.Counter
}

// NewMetrics creates collectors registered on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wikiscraper_fetches_total",
				Help: "Number of remote page fetches by result.",
			},
			[]string{labelResult},
		),
		fetchDuration: prometheus.NewSummary(prometheus.SummaryOpts{
			Name:       "wikiscraper_fetch_duration_seconds",
			Help:       "Remote fetch duration including reading the body.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}),
		fetchedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wikiscraper_fetched_bytes_total",
			Help: "Bytes of HTML fetched from the wiki.",
		}),
		mergedWords: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wikiscraper_merged_words_total",
			Help: "Word occurrences merged into the word counts.",
		}),
		merges: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wikiscraper_merges_total",
			Help: "Number of pages merged into the word counts.",
		}),
	}
	m.registry.MustRegister(m.fetches, m.fetchDuration, m.fetchedBytes, m.mergedWords, m.merges)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile atomically writes the current metrics to path.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// Fetcher wraps next so that every fetch is counted and timed.
func (m *Metrics) Fetcher(next wikiscraper.Fetcher) *Fetcher {
	return &Fetcher{next: next, metrics: m}
}

// FrequencyStore wraps next so that merged words are counted.
func (m *Metrics) FrequencyStore(next wikiscraper.FrequencyStore) *FrequencyStore {
	return &FrequencyStore{next: next, metrics: m}
}

// Ensure Fetcher implements wikiscraper.Fetcher at compile time.
var _ wikiscraper.Fetcher = (*Fetcher)(nil)

// Fetcher is an instrumented wikiscraper.Fetcher.
type Fetcher struct {
	next    wikiscraper.Fetcher
	metrics *Metrics
}

// Fetch delegates to the wrapped fetcher. Results are labelled with the
// error code, or "ok" on success.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	f.metrics.fetchDuration.Observe(time.Since(begin).Seconds())

	result := "ok"
	if err != nil {
		result = wikiscraper.ErrorCode(err)
	}
	f.metrics.fetches.WithLabelValues(result).Inc()
	f.metrics.fetchedBytes.Add(float64(len(html)))
	return html, err
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}

// Ensure FrequencyStore implements wikiscraper.FrequencyStore at compile time.
var _ wikiscraper.FrequencyStore = (*FrequencyStore)(nil)

// FrequencyStore is an instrumented wikiscraper.FrequencyStore.
type FrequencyStore struct {
	next    wikiscraper.FrequencyStore
	metrics *Metrics
}

func (s *FrequencyStore) Load(ctx context.Context) (wikiscraper.WordCounts, error) {
	return s.next.Load(ctx)
}

// Merge delegates to the wrapped store and counts successful merges.
func (s *FrequencyStore) Merge(ctx context.Context, counts wikiscraper.WordCounts) error {
	if err := s.next.Merge(ctx, counts); err != nil {
		return err
	}
	s.metrics.merges.Inc()
	s.metrics.mergedWords.Add(float64(counts.Total()))
	return nil
}

func (s *FrequencyStore) Reset(ctx context.Context) error {
	return s.next.Reset(ctx)
}
