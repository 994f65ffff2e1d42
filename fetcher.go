package citer

import (
	"context"
	"net/http"
)

// Response is a fetched web page. The same response serves both header
// and body inspection.
type Response struct {
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Fetcher retrieves web pages over HTTP.
type Fetcher interface {
	// Fetch issues a single GET request for the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Response, error)
}
