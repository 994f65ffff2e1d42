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
var _ citer.ReferenceService = (*ReferenceService)(nil)

// ReferenceService implements citer.ReferenceService using SQLite.
type ReferenceService struct {
	db *DB
}

// NewReferenceService creates a new ReferenceService.
func NewReferenceService(db *DB) *ReferenceService {
	return &ReferenceService{db: db}
}

const referenceColumns = "id, project_id, url, author, year, title, site, author_source, accessed_at, created_at"

// CreateReference creates a new reference.
// AccessedAt defaults to the current time when unset.
func (s *ReferenceService) CreateReference(ctx context.Context, ref *citer.Reference) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	ref.ID = uuid.New().String()
	now := time.Now()
	ref.CreatedAt = now.UTC()
	if ref.AccessedAt.IsZero() {
		ref.AccessedAt = now
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO refs (`+referenceColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, ref.ID, ref.ProjectID, ref.URL, ref.Author, ref.Year, ref.Title, ref.Site,
		string(ref.AuthorSource), formatTime(ref.AccessedAt), formatTime(ref.CreatedAt))
	if err != nil && strings.Contains(err.Error(), "FOREIGN KEY") {
		return citer.Errorf(citer.ENOTFOUND, "project not found")
	}

	return err
}

// FindReferenceByID retrieves a reference by ID.
func (s *ReferenceService) FindReferenceByID(ctx context.Context, id string) (*citer.Reference, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+referenceColumns+" FROM refs WHERE id = ?", id)

	ref, err := scanReference(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, citer.Errorf(citer.ENOTFOUND, "reference not found")
	}
	if err != nil {
		return nil, err
	}
	return ref, nil
}

// FindReferences retrieves references matching the filter in the order
// they were added.
func (s *ReferenceService) FindReferences(ctx context.Context, filter citer.ReferenceFilter) ([]*citer.Reference, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + referenceColumns + " FROM refs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.ProjectID != nil {
		query.WriteString(" AND project_id = ?")
		args = append(args, *filter.ProjectID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []*citer.Reference
	for rows.Next() {
		ref, err := scanReference(rows)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}

// UpdateReference updates the citation fields of an existing reference.
func (s *ReferenceService) UpdateReference(ctx context.Context, id string, upd citer.ReferenceUpdate) (*citer.Reference, error) {
	ref, err := s.FindReferenceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Author != nil {
		ref.Author = *upd.Author
	}
	if upd.Year != nil {
		ref.Year = *upd.Year
	}
	if upd.Title != nil {
		ref.Title = *upd.Title
	}
	if upd.Site != nil {
		ref.Site = *upd.Site
	}

	if err := ref.Validate(); err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE refs
		SET author = ?, year = ?, title = ?, site = ?
		WHERE id = ?
	`, ref.Author, ref.Year, ref.Title, ref.Site, id)
	if err != nil {
		return nil, err
	}

	return ref, nil
}

// DeleteReference permanently removes a reference.
func (s *ReferenceService) DeleteReference(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM refs WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return citer.Errorf(citer.ENOTFOUND, "reference not found")
	}

	return nil
}

// DeleteReferencesByProject removes all references for a project.
func (s *ReferenceService) DeleteReferencesByProject(ctx context.Context, projectID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM refs WHERE project_id = ?", projectID)
	return err
}

func scanReference(sc scanner) (*citer.Reference, error) {
	var ref citer.Reference
	var source, accessedAt, createdAt string

	if err := sc.Scan(&ref.ID, &ref.ProjectID, &ref.URL, &ref.Author, &ref.Year, &ref.Title,
		&ref.Site, &source, &accessedAt, &createdAt); err != nil {
		return nil, err
	}
	ref.AuthorSource = citer.AuthorSource(source)

	var err error
	if ref.AccessedAt, err = parseRFC3339(accessedAt, "accessed_at"); err != nil {
		return nil, err
	}
	if ref.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &ref, nil
}
