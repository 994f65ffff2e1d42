package mock

import (
	"context"

	"github.com/fwojciec/citer"
)

var _ citer.StateService = (*StateService)(nil)

// StateService is a mock implementation of citer.StateService.
type StateService struct {
	CurrentProjectFn    func(ctx context.Context) (*citer.Project, error)
	SetCurrentProjectFn func(ctx context.Context, id string) error
}

func (s *StateService) CurrentProject(ctx context.Context) (*citer.Project, error) {
	return s.CurrentProjectFn(ctx)
}

func (s *StateService) SetCurrentProject(ctx context.Context, id string) error {
	return s.SetCurrentProjectFn(ctx, id)
}
