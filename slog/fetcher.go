// Package slog provides logging decorators for citer services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/citer"
)

// Ensure LoggingFetcher implements citer.Fetcher.
var _ citer.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   citer.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next citer.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (resp *citer.Response, err error) {
	defer func(begin time.Time) {
		var size int
		if resp != nil {
			size = len(resp.Body)
		}
		f.logger.Debug("fetch",
			"url", url,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
