package guess

import (
	"context"
	"net/url"
	"sync"

	"github.com/fwojciec/citer"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of guesses Batch runs at once when
// Concurrency is unset.
const DefaultConcurrency = 4

// Outcome is the result of guessing a single URL in a batch.
type Outcome struct {
	URL     string
	Guesses *citer.Guesses
	Err     error
}

// ProgressFunc is called once per URL as each guess finishes.
type ProgressFunc func(done, total int, outcome Outcome)

// Batch runs independent guesses for several URLs.
// Each guess is itself sequential; only separate URLs run in parallel.
type Batch struct {
	Guesser     citer.Guesser
	RateLimiter citer.DomainLimiter
	Concurrency int
}

// GuessAll guesses every URL and returns the outcomes in input order.
// A failed URL does not stop the others. Cancelling ctx stops guesses
// that have not started; their outcomes carry the context error.
func (b *Batch) GuessAll(ctx context.Context, urls []string, progress ProgressFunc) []Outcome {
	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	outcomes := make([]Outcome, len(urls))

	var mu sync.Mutex
	done := 0

	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, rawURL := range urls {
		i, rawURL := i, rawURL
		g.Go(func() error {
			outcome := b.guessOne(ctx, rawURL)
			outcomes[i] = outcome

			if progress != nil {
				mu.Lock()
				done++
				progress(done, len(urls), outcome)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func (b *Batch) guessOne(ctx context.Context, rawURL string) Outcome {
	if err := ctx.Err(); err != nil {
		return Outcome{URL: rawURL, Err: err}
	}

	if b.RateLimiter != nil {
		if u, err := url.Parse(rawURL); err == nil && u.Hostname() != "" {
			if err := b.RateLimiter.Wait(ctx, u.Hostname()); err != nil {
				return Outcome{URL: rawURL, Err: err}
			}
		}
	}

	guesses, err := b.Guesser.Guess(ctx, rawURL)
	return Outcome{URL: rawURL, Guesses: guesses, Err: err}
}
