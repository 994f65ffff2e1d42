package mock

import (
	"context"

	"github.com/fwojciec/citer"
)

var _ citer.OwnerResolver = (*OwnerResolver)(nil)

// OwnerResolver is a mock implementation of citer.OwnerResolver.
type OwnerResolver struct {
	ResolveOwnerFn func(ctx context.Context, host string) (string, error)
}

func (r *OwnerResolver) ResolveOwner(ctx context.Context, host string) (string, error) {
	return r.ResolveOwnerFn(ctx, host)
}
