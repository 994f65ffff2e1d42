// Package guess infers citation metadata for web pages.
// It coordinates page fetching, header and title inspection, site label
// derivation, and domain owner lookup.
package guess

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fwojciec/citer"
)

// Ensure Guesser implements citer.Guesser.
var _ citer.Guesser = (*Guesser)(nil)

// Guesser assembles citer.Guesses for a URL.
//
// Owners is optional. When it is nil or fails, the author falls back to
// the site label.
type Guesser struct {
	Fetcher  citer.Fetcher
	Titles   citer.TitleExtractor
	Owners   citer.OwnerResolver
	Suffixes citer.SuffixSet

	// Now returns the current local time. Defaults to time.Now.
	Now func() time.Time
}

// Guess fetches rawURL once and derives all four citation fields from the
// response. Any failure other than the owner lookup aborts the guess and is
// returned as *citer.GuessError.
func (g *Guesser) Guess(ctx context.Context, rawURL string) (*citer.Guesses, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, guessErr(citer.GuessURLParse, rawURL, err)
	}
	if !u.IsAbs() {
		return nil, guessErr(citer.GuessURLParse, rawURL, fmt.Errorf("URL is not absolute"))
	}

	resp, err := g.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, guessErr(citer.GuessRequest, rawURL, err)
	}

	year := citer.YearFromHeader(resp.Header, g.now())

	text, err := decodeBody(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, guessErr(citer.GuessDecoding, rawURL, err)
	}

	page, ok, err := g.Titles.ExtractTitle(text)
	if err != nil {
		return nil, guessErr(citer.GuessDOMParsing, rawURL, err)
	}
	if !ok {
		page = citer.UnknownTitle
	}

	host := u.Hostname()
	if host == "" {
		return nil, guessErr(citer.GuessNoDomain, rawURL, nil)
	}

	site := citer.SiteLabel(host, g.Suffixes)

	author, source := site, citer.AuthorFromSite
	if g.Owners != nil {
		if owner, err := g.Owners.ResolveOwner(ctx, host); err == nil {
			author, source = owner, citer.AuthorFromWhois
		}
	}

	return &citer.Guesses{
		Author:       author,
		Year:         year,
		Page:         page,
		Site:         site,
		AuthorSource: source,
	}, nil
}

func (g *Guesser) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

func guessErr(kind citer.GuessKind, rawURL string, err error) *citer.GuessError {
	return &citer.GuessError{Kind: kind, URL: rawURL, Err: err}
}
