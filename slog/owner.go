package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/citer"
)

// Ensure LoggingOwnerResolver implements citer.OwnerResolver.
var _ citer.OwnerResolver = (*LoggingOwnerResolver)(nil)

// LoggingOwnerResolver wraps an OwnerResolver with debug logging.
// Owner lookup failures are absorbed by the guesser, so this is where
// their kind becomes visible.
type LoggingOwnerResolver struct {
	next   citer.OwnerResolver
	logger *slog.Logger
}

// NewLoggingOwnerResolver creates a new LoggingOwnerResolver.
func NewLoggingOwnerResolver(next citer.OwnerResolver, logger *slog.Logger) *LoggingOwnerResolver {
	return &LoggingOwnerResolver{next: next, logger: logger}
}

// ResolveOwner delegates to the wrapped resolver and logs the operation.
func (r *LoggingOwnerResolver) ResolveOwner(ctx context.Context, host string) (owner string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"host", host,
			"owner", owner,
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "kind", citer.OwnerKindOf(err).String(), "err", err)
		}
		r.logger.Debug("whois lookup", attrs...)
	}(time.Now())
	return r.next.ResolveOwner(ctx, host)
}
