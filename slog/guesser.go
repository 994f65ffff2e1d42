package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/citer"
)

// Ensure LoggingGuesser implements citer.Guesser.
var _ citer.Guesser = (*LoggingGuesser)(nil)

// LoggingGuesser wraps a Guesser with debug logging.
type LoggingGuesser struct {
	next   citer.Guesser
	logger *slog.Logger
}

// NewLoggingGuesser creates a new LoggingGuesser.
func NewLoggingGuesser(next citer.Guesser, logger *slog.Logger) *LoggingGuesser {
	return &LoggingGuesser{next: next, logger: logger}
}

// Guess delegates to the wrapped guesser and logs the outcome.
func (g *LoggingGuesser) Guess(ctx context.Context, rawURL string) (guesses *citer.Guesses, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", rawURL, "duration", time.Since(begin)}
		if guesses != nil {
			attrs = append(attrs,
				"author", guesses.Author,
				"author_source", string(guesses.AuthorSource),
				"year", guesses.Year,
				"site", guesses.Site,
			)
		}
		if err != nil {
			attrs = append(attrs, "kind", citer.GuessKindOf(err).String(), "err", err)
		}
		g.logger.Debug("guess", attrs...)
	}(time.Now())
	return g.next.Guess(ctx, rawURL)
}
