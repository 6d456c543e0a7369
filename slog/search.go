package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tldr"
)

// Ensure LoggingSearch implements tldr.SearchService.
var _ tldr.SearchService = (*LoggingSearch)(nil)

// LoggingSearch wraps a SearchService with debug logging.
type LoggingSearch struct {
	next   tldr.SearchService
	logger *slog.Logger
}

// NewLoggingSearch creates a new LoggingSearch.
func NewLoggingSearch(next tldr.SearchService, logger *slog.Logger) *LoggingSearch {
	return &LoggingSearch{next: next, logger: logger}
}

// Build delegates to the wrapped service and logs corpus size.
func (s *LoggingSearch) Build(ctx context.Context) (corpus *tldr.Corpus, err error) {
	defer func(begin time.Time) {
		var docs, tokens int
		if corpus != nil {
			docs, tokens = corpus.DocumentCount(), len(corpus.AllTokens)
		}
		s.logger.Info("search build",
			"documents", docs,
			"tokens", tokens,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Build(ctx)
}

// Search delegates to the wrapped service and logs the result count.
func (s *LoggingSearch) Search(ctx context.Context, query string) (results []tldr.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("search",
			"query", query,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}

// Clear delegates to the wrapped service and logs the operation.
func (s *LoggingSearch) Clear(ctx context.Context) (err error) {
	defer func() {
		s.logger.Info("search clear", "err", err)
	}()
	return s.next.Clear(ctx)
}
