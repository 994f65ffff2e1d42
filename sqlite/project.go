package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/citer"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ citer.ProjectService = (*ProjectService)(nil)

// ProjectService implements citer.ProjectService using SQLite.
type ProjectService struct {
	db *DB
}

// NewProjectService creates a new ProjectService.
func NewProjectService(db *DB) *ProjectService {
	return &ProjectService{db: db}
}

const projectColumns = "id, name, created_at, updated_at"

// CreateProject creates a new project.
func (s *ProjectService) CreateProject(ctx context.Context, project *citer.Project) error {
	if err := project.Validate(); err != nil {
		return err
	}
	if err := s.checkNameFree(ctx, project.Name, ""); err != nil {
		return err
	}

	project.ID = uuid.New().String()
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`, project.ID, project.Name, formatTime(project.CreatedAt), formatTime(project.UpdatedAt))

	return err
}

// FindProjectByID retrieves a project by ID.
func (s *ProjectService) FindProjectByID(ctx context.Context, id string) (*citer.Project, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+projectColumns+" FROM projects WHERE id = ?", id)

	project, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, citer.Errorf(citer.ENOTFOUND, "project not found")
	}
	if err != nil {
		return nil, err
	}
	return project, nil
}

// FindProjects retrieves projects matching the filter, oldest first.
func (s *ProjectService) FindProjects(ctx context.Context, filter citer.ProjectFilter) ([]*citer.Project, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + projectColumns + " FROM projects WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at ASC, name ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*citer.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

// UpdateProject updates an existing project.
func (s *ProjectService) UpdateProject(ctx context.Context, id string, upd citer.ProjectUpdate) (*citer.Project, error) {
	project, err := s.FindProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		project.Name = *upd.Name
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkNameFree(ctx, project.Name, id); err != nil {
		return nil, err
	}

	project.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE projects
		SET name = ?, updated_at = ?
		WHERE id = ?
	`, project.Name, formatTime(project.UpdatedAt), id)
	if err != nil {
		return nil, err
	}

	return project, nil
}

// DeleteProject permanently removes a project. References are removed by
// the foreign key cascade.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return citer.Errorf(citer.ENOTFOUND, "project not found")
	}

	return nil
}

// checkNameFree returns ECONFLICT if a project other than exceptID
// already uses name.
func (s *ProjectService) checkNameFree(ctx context.Context, name, exceptID string) error {
	var id string
	err := s.db.QueryRowContext(ctx, "SELECT id FROM projects WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	if id != exceptID {
		return citer.Errorf(citer.ECONFLICT, "project %q already exists", name)
	}
	return nil
}

func scanProject(sc scanner) (*citer.Project, error) {
	var project citer.Project
	var createdAt, updatedAt string

	if err := sc.Scan(&project.ID, &project.Name, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if project.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if project.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &project, nil
}
