package mock

import (
	"context"

	"github.com/fwojciec/citer"
)

var _ citer.ReferenceService = (*ReferenceService)(nil)

// ReferenceService is a mock implementation of citer.ReferenceService.
type ReferenceService struct {
	CreateReferenceFn           func(ctx context.Context, ref *citer.Reference) error
	FindReferenceByIDFn         func(ctx context.Context, id string) (*citer.Reference, error)
	FindReferencesFn            func(ctx context.Context, filter citer.ReferenceFilter) ([]*citer.Reference, error)
	UpdateReferenceFn           func(ctx context.Context, id string, upd citer.ReferenceUpdate) (*citer.Reference, error)
	DeleteReferenceFn           func(ctx context.Context, id string) error
	DeleteReferencesByProjectFn func(ctx context.Context, projectID string) error
}

func (s *ReferenceService) CreateReference(ctx context.Context, ref *citer.Reference) error {
	return s.CreateReferenceFn(ctx, ref)
}

func (s *ReferenceService) FindReferenceByID(ctx context.Context, id string) (*citer.Reference, error) {
	return s.FindReferenceByIDFn(ctx, id)
}

func (s *ReferenceService) FindReferences(ctx context.Context, filter citer.ReferenceFilter) ([]*citer.Reference, error) {
	return s.FindReferencesFn(ctx, filter)
}

func (s *ReferenceService) UpdateReference(ctx context.Context, id string, upd citer.ReferenceUpdate) (*citer.Reference, error) {
	return s.UpdateReferenceFn(ctx, id, upd)
}

func (s *ReferenceService) DeleteReference(ctx context.Context, id string) error {
	return s.DeleteReferenceFn(ctx, id)
}

func (s *ReferenceService) DeleteReferencesByProject(ctx context.Context, projectID string) error {
	return s.DeleteReferencesByProjectFn(ctx, projectID)
}
