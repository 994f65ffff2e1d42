package mock

import (
	"context"

	"github.com/fwojciec/citer"
)

var _ citer.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of citer.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*citer.Response, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*citer.Response, error) {
	return f.FetchFn(ctx, url)
}
