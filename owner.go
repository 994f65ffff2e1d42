package citer

import "context"

// OwnerResolver looks up the organisation that registered a domain.
type OwnerResolver interface {
	// ResolveOwner returns the registrant organisation for host.
	// Failures are returned as *OwnerError.
	ResolveOwner(ctx context.Context, host string) (string, error)
}
