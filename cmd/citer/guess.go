package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/citer"
	"github.com/fwojciec/citer/guess"
)

// Run executes the guess command.
func (c *GuessCmd) Run(deps *Dependencies) error {
	if c.Concurrency > 0 {
		deps.Batch.Concurrency = c.Concurrency
	}

	outcomes := deps.Batch.GuessAll(deps.Ctx, c.URLs, nil)

	failed := 0
	for i, outcome := range outcomes {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		if outcome.Err != nil {
			failed++
			reportGuessError(deps.Stderr, outcome)
			continue
		}
		printGuesses(deps.Stdout, outcome.URL, outcome.Guesses)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d guesses failed", failed, len(outcomes))
	}
	return nil
}

func printGuesses(w io.Writer, rawURL string, g *citer.Guesses) {
	fmt.Fprintln(w, rawURL)
	fmt.Fprintf(w, "  Author: %s (%s)\n", g.Author, g.AuthorSource)
	fmt.Fprintf(w, "  Year:   %s\n", g.Year)
	fmt.Fprintf(w, "  Title:  %s\n", g.Page)
	fmt.Fprintf(w, "  Site:   %s\n", g.Site)
}

func reportGuessError(w io.Writer, outcome guess.Outcome) {
	if kind := citer.GuessKindOf(outcome.Err); kind != citer.GuessUnknown {
		fmt.Fprintf(w, "error: %s: %s (%s)\n", outcome.URL, citer.ErrorMessage(outcome.Err), kind)
		return
	}
	fmt.Fprintf(w, "error: %s: %v\n", outcome.URL, outcome.Err)
}
