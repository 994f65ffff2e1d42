package citer

import "context"

// UnknownTitle is used as the page title when a document has no <title>.
const UnknownTitle = "unknown title"

// AuthorSource records where the author of a guess came from.
type AuthorSource string

// AuthorSource values.
const (
	// AuthorFromWhois means the author is the registrant organisation of the
	// page's domain.
	AuthorFromWhois AuthorSource = "whois"

	// AuthorFromSite means the owner lookup failed or was not configured,
	// and the author is the site label.
	AuthorFromSite AuthorSource = "site"
)

// Guesses holds the inferred citation fields for a URL.
// All fields are populated on success; failing sub-steps are replaced by
// fallback values.
type Guesses struct {
	Author       string       `json:"author"`
	Year         string       `json:"year"`
	Page         string       `json:"page"`
	Site         string       `json:"site"`
	AuthorSource AuthorSource `json:"authorSource"`
}

// Guesser infers citation metadata for a URL.
type Guesser interface {
	// Guess fetches the URL once and assembles a Guesses record.
	// Failures are returned as *GuessError.
	Guess(ctx context.Context, rawURL string) (*Guesses, error)
}
