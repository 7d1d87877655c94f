package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikiscraper"
)

// Ensure LoggingPageSource implements wikiscraper.PageSource.
var _ wikiscraper.PageSource = (*LoggingPageSource)(nil)

// LoggingPageSource wraps a PageSource with logging of every resolved page.
type LoggingPageSource struct {
	next   wikiscraper.PageSource
	logger *slog.Logger
}

// NewLoggingPageSource creates a new LoggingPageSource.
func NewLoggingPageSource(next wikiscraper.PageSource, logger *slog.Logger) *LoggingPageSource {
	return &LoggingPageSource{next: next, logger: logger}
}

// Page delegates to the wrapped source and logs the operation.
func (s *LoggingPageSource) Page(ctx context.Context, phrase string) (page *wikiscraper.Page, err error) {
	defer func(begin time.Time) {
		var id string
		var size int
		if page != nil {
			id, size = page.Identifier, len(page.HTML)
		}
		s.logger.Info("page",
			"phrase", phrase,
			"identifier", id,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Page(ctx, phrase)
}
