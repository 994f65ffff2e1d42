package sqlite

import (
	"context"
	"database/sql"

	"github.com/fwojciec/citer"
)

// Compile-time interface verification.
var _ citer.StateService = (*StateService)(nil)

// StateService implements citer.StateService using SQLite.
// The current project is cleared automatically when it is deleted.
type StateService struct {
	db       *DB
	projects *ProjectService
}

// NewStateService creates a new StateService.
func NewStateService(db *DB) *StateService {
	return &StateService{db: db, projects: NewProjectService(db)}
}

// CurrentProject returns the selected project.
func (s *StateService) CurrentProject(ctx context.Context) (*citer.Project, error) {
	var id sql.NullString
	if err := s.db.QueryRowContext(ctx,
		"SELECT current_project_id FROM state WHERE id = 1",
	).Scan(&id); err != nil {
		return nil, err
	}

	if !id.Valid {
		return nil, citer.Errorf(citer.ENOTFOUND, "no current project")
	}
	return s.projects.FindProjectByID(ctx, id.String)
}

// SetCurrentProject selects the project with the given ID.
func (s *StateService) SetCurrentProject(ctx context.Context, id string) error {
	if _, err := s.projects.FindProjectByID(ctx, id); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, "UPDATE state SET current_project_id = ? WHERE id = 1", id)
	return err
}
