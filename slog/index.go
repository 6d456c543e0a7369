// Package slog provides logging decorators for the page index and search
// services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tldr"
)

// Ensure LoggingIndex implements tldr.PageIndex.
var _ tldr.PageIndex = (*LoggingIndex)(nil)

// LoggingIndex wraps a PageIndex with debug logging.
type LoggingIndex struct {
	next   tldr.PageIndex
	logger *slog.Logger
}

// NewLoggingIndex creates a new LoggingIndex.
func NewLoggingIndex(next tldr.PageIndex, logger *slog.Logger) *LoggingIndex {
	return &LoggingIndex{next: next, logger: logger}
}

// FindPage delegates to the wrapped index and logs the resolved location.
func (s *LoggingIndex) FindPage(ctx context.Context, name, platform, language string) (loc *tldr.Location, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"page", name,
			"platform", platform,
			"language", language,
			"duration", time.Since(begin),
		}
		if loc != nil {
			attrs = append(attrs, "dir", loc.Dir, "substituted", loc.Substituted)
		} else {
			attrs = append(attrs, "found", false)
		}
		attrs = append(attrs, "err", err)
		s.logger.Debug("find page", attrs...)
	}(time.Now())
	return s.next.FindPage(ctx, name, platform, language)
}

// HasPage delegates to the wrapped index.
func (s *LoggingIndex) HasPage(name string) bool {
	return s.next.HasPage(name)
}

// Entry delegates to the wrapped index.
func (s *LoggingIndex) Entry(ctx context.Context, name string) (*tldr.PageEntry, error) {
	return s.next.Entry(ctx, name)
}

// Commands delegates to the wrapped index.
func (s *LoggingIndex) Commands(ctx context.Context) ([]string, error) {
	return s.next.Commands(ctx)
}

// CommandsFor delegates to the wrapped index.
func (s *LoggingIndex) CommandsFor(ctx context.Context, platform string) ([]string, error) {
	return s.next.CommandsFor(ctx, platform)
}

// Rebuild delegates to the wrapped index and logs the page count.
func (s *LoggingIndex) Rebuild(ctx context.Context) (idx tldr.ShortIndex, err error) {
	defer func(begin time.Time) {
		s.logger.Info("index rebuild",
			"pages", len(idx),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Rebuild(ctx)
}

// Clear delegates to the wrapped index and logs the operation.
func (s *LoggingIndex) Clear(ctx context.Context) (err error) {
	defer func() {
		s.logger.Info("index clear", "err", err)
	}()
	return s.next.Clear(ctx)
}

// UpdatedAt delegates to the wrapped index.
func (s *LoggingIndex) UpdatedAt(ctx context.Context) (time.Time, error) {
	return s.next.UpdatedAt(ctx)
}
