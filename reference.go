package citer

import (
	"context"
	"time"
)

// Reference represents a cited web page within a project.
type Reference struct {
	ID           string       `json:"id"`
	ProjectID    string       `json:"projectId"`
	URL          string       `json:"url"`
	Author       string       `json:"author"`
	Year         string       `json:"year"`
	Title        string       `json:"title"`
	Site         string       `json:"site"`
	AuthorSource AuthorSource `json:"authorSource"`
	AccessedAt   time.Time    `json:"accessedAt"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// NewReference builds a reference from guessed metadata.
func NewReference(projectID, url string, g *Guesses, accessedAt time.Time) *Reference {
	return &Reference{
		ProjectID:    projectID,
		URL:          url,
		Author:       g.Author,
		Year:         g.Year,
		Title:        g.Page,
		Site:         g.Site,
		AuthorSource: g.AuthorSource,
		AccessedAt:   accessedAt,
	}
}

// Validate returns an error if the reference contains invalid fields.
func (r *Reference) Validate() error {
	if r.ProjectID == "" {
		return Errorf(EINVALID, "reference project ID required")
	}
	if r.URL == "" {
		return Errorf(EINVALID, "reference URL required")
	}
	return nil
}

// ReferenceService represents a service for managing references.
type ReferenceService interface {
	// CreateReference creates a new reference.
	CreateReference(ctx context.Context, ref *Reference) error

	// FindReferenceByID retrieves a reference by ID.
	// Returns ENOTFOUND if reference does not exist.
	FindReferenceByID(ctx context.Context, id string) (*Reference, error)

	// FindReferences retrieves references matching the filter.
	FindReferences(ctx context.Context, filter ReferenceFilter) ([]*Reference, error)

	// UpdateReference updates an existing reference.
	// Returns ENOTFOUND if reference does not exist.
	UpdateReference(ctx context.Context, id string, upd ReferenceUpdate) (*Reference, error)

	// DeleteReference permanently removes a reference.
	// Returns ENOTFOUND if reference does not exist.
	DeleteReference(ctx context.Context, id string) error

	// DeleteReferencesByProject removes all references for a project.
	DeleteReferencesByProject(ctx context.Context, projectID string) error
}

// ReferenceFilter represents a filter for FindReferences.
type ReferenceFilter struct {
	ID        *string `json:"id"`
	ProjectID *string `json:"projectId"`
	URL       *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ReferenceUpdate represents fields that can be updated on a reference.
type ReferenceUpdate struct {
	Author *string `json:"author"`
	Year   *string `json:"year"`
	Title  *string `json:"title"`
	Site   *string `json:"site"`
}
