package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikiscraper"
)

// Ensure LoggingFrequencyStore implements wikiscraper.FrequencyStore.
var _ wikiscraper.FrequencyStore = (*LoggingFrequencyStore)(nil)

// LoggingFrequencyStore wraps a FrequencyStore with logging.
type LoggingFrequencyStore struct {
	next   wikiscraper.FrequencyStore
	logger *slog.Logger
}

// NewLoggingFrequencyStore creates a new LoggingFrequencyStore.
func NewLoggingFrequencyStore(next wikiscraper.FrequencyStore, logger *slog.Logger) *LoggingFrequencyStore {
	return &LoggingFrequencyStore{next: next, logger: logger}
}

// Load delegates to the wrapped store and logs the operation.
func (s *LoggingFrequencyStore) Load(ctx context.Context) (counts wikiscraper.WordCounts, err error) {
	defer func(begin time.Time) {
		s.logger.Info("load word counts",
			"words", len(counts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx)
}

// Merge delegates to the wrapped store and logs the operation.
func (s *LoggingFrequencyStore) Merge(ctx context.Context, counts wikiscraper.WordCounts) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("merge word counts",
			"words", len(counts),
			"total", counts.Total(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Merge(ctx, counts)
}

// Reset delegates to the wrapped store and logs the operation.
func (s *LoggingFrequencyStore) Reset(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("reset word counts",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Reset(ctx)
}
