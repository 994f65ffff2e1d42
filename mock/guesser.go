package mock

import (
	"context"

	"github.com/fwojciec/citer"
)

var _ citer.Guesser = (*Guesser)(nil)

// Guesser is a mock implementation of citer.Guesser.
type Guesser struct {
	GuessFn func(ctx context.Context, rawURL string) (*citer.Guesses, error)
}

func (g *Guesser) Guess(ctx context.Context, rawURL string) (*citer.Guesses, error) {
	return g.GuessFn(ctx, rawURL)
}
