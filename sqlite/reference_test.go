package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/citer"
	"github.com/fwojciec/citer/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupReferences(t *testing.T) (*sqlite.ReferenceService, *citer.Project) {
	t.Helper()
	db := setupTestDB(t)
	project := createProject(t, sqlite.NewProjectService(db), "essay")
	return sqlite.NewReferenceService(db), project
}

func TestReferenceService_CreateReference(t *testing.T) {
	t.Parallel()

	t.Run("stores all citation fields", func(t *testing.T) {
		t.Parallel()

		svc, project := setupReferences(t)
		ctx := context.Background()
		accessed := time.Date(2024, time.March, 5, 23, 30, 0, 0, time.FixedZone("NZDT", 13*3600))

		ref := &citer.Reference{
			ProjectID:    project.ID,
			URL:          "https://example.com/post",
			Author:       "Example Org",
			Year:         "2023",
			Title:        "A Post",
			Site:         "Example",
			AuthorSource: citer.AuthorFromWhois,
			AccessedAt:   accessed,
		}
		require.NoError(t, svc.CreateReference(ctx, ref))
		assert.NotEmpty(t, ref.ID)

		found, err := svc.FindReferenceByID(ctx, ref.ID)
		require.NoError(t, err)
		assert.Equal(t, project.ID, found.ProjectID)
		assert.Equal(t, "https://example.com/post", found.URL)
		assert.Equal(t, "Example Org", found.Author)
		assert.Equal(t, "2023", found.Year)
		assert.Equal(t, "A Post", found.Title)
		assert.Equal(t, "Example", found.Site)
		assert.Equal(t, citer.AuthorFromWhois, found.AuthorSource)
		assert.True(t, accessed.Equal(found.AccessedAt))
		assert.Equal(t, "5/3/2024", citer.FormatAccessDate(found.AccessedAt), "calendar date survives storage")
	})

	t.Run("defaults access time to now", func(t *testing.T) {
		t.Parallel()

		svc, project := setupReferences(t)

		before := time.Now()
		ref := &citer.Reference{ProjectID: project.ID, URL: "https://example.com/"}
		require.NoError(t, svc.CreateReference(context.Background(), ref))

		assert.False(t, ref.AccessedAt.Before(before))
	})

	t.Run("returns EINVALID without URL", func(t *testing.T) {
		t.Parallel()

		svc, project := setupReferences(t)

		err := svc.CreateReference(context.Background(), &citer.Reference{ProjectID: project.ID})

		require.Error(t, err)
		assert.Equal(t, citer.EINVALID, citer.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unknown project", func(t *testing.T) {
		t.Parallel()

		svc, _ := setupReferences(t)

		err := svc.CreateReference(context.Background(), &citer.Reference{ProjectID: "missing", URL: "https://example.com/"})

		require.Error(t, err)
		assert.Equal(t, citer.ENOTFOUND, citer.ErrorCode(err))
	})
}

func TestReferenceService_FindReferences(t *testing.T) {
	t.Parallel()

	t.Run("filters by project in insertion order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		projects := sqlite.NewProjectService(db)
		svc := sqlite.NewReferenceService(db)
		ctx := context.Background()

		mine := createProject(t, projects, "mine")
		other := createProject(t, projects, "other")

		for _, u := range []string{"https://b.example/", "https://a.example/"} {
			require.NoError(t, svc.CreateReference(ctx, &citer.Reference{ProjectID: mine.ID, URL: u}))
		}
		require.NoError(t, svc.CreateReference(ctx, &citer.Reference{ProjectID: other.ID, URL: "https://c.example/"}))

		refs, err := svc.FindReferences(ctx, citer.ReferenceFilter{ProjectID: &mine.ID})

		require.NoError(t, err)
		require.Len(t, refs, 2)
		assert.Equal(t, "https://b.example/", refs[0].URL)
		assert.Equal(t, "https://a.example/", refs[1].URL)
	})

	t.Run("filters by URL", func(t *testing.T) {
		t.Parallel()

		svc, project := setupReferences(t)
		ctx := context.Background()
		require.NoError(t, svc.CreateReference(ctx, &citer.Reference{ProjectID: project.ID, URL: "https://a.example/"}))
		require.NoError(t, svc.CreateReference(ctx, &citer.Reference{ProjectID: project.ID, URL: "https://b.example/"}))

		u := "https://b.example/"
		refs, err := svc.FindReferences(ctx, citer.ReferenceFilter{URL: &u})

		require.NoError(t, err)
		require.Len(t, refs, 1)
		assert.Equal(t, u, refs[0].URL)
	})

	t.Run("respects limit", func(t *testing.T) {
		t.Parallel()

		svc, project := setupReferences(t)
		ctx := context.Background()
		for _, u := range []string{"https://a.example/", "https://b.example/", "https://c.example/"} {
			require.NoError(t, svc.CreateReference(ctx, &citer.Reference{ProjectID: project.ID, URL: u}))
		}

		refs, err := svc.FindReferences(ctx, citer.ReferenceFilter{ProjectID: &project.ID, Limit: 2})

		require.NoError(t, err)
		assert.Len(t, refs, 2)
	})
}

func TestReferenceService_UpdateReference(t *testing.T) {
	t.Parallel()

	t.Run("updates only given fields", func(t *testing.T) {
		t.Parallel()

		svc, project := setupReferences(t)
		ctx := context.Background()
		ref := &citer.Reference{ProjectID: project.ID, URL: "https://example.com/", Author: "Example", Year: "2020", Title: "Old", Site: "Example"}
		require.NoError(t, svc.CreateReference(ctx, ref))

		author, title := "Jane Doe", "New"
		updated, err := svc.UpdateReference(ctx, ref.ID, citer.ReferenceUpdate{Author: &author, Title: &title})

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", updated.Author)
		assert.Equal(t, "New", updated.Title)
		assert.Equal(t, "2020", updated.Year)

		found, err := svc.FindReferenceByID(ctx, ref.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", found.Author)
		assert.Equal(t, "New", found.Title)
		assert.Equal(t, "Example", found.Site)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		svc, _ := setupReferences(t)

		year := "2024"
		_, err := svc.UpdateReference(context.Background(), "missing", citer.ReferenceUpdate{Year: &year})

		require.Error(t, err)
		assert.Equal(t, citer.ENOTFOUND, citer.ErrorCode(err))
	})
}

func TestReferenceService_DeleteReference(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing reference", func(t *testing.T) {
		t.Parallel()

		svc, project := setupReferences(t)
		ctx := context.Background()
		ref := &citer.Reference{ProjectID: project.ID, URL: "https://example.com/"}
		require.NoError(t, svc.CreateReference(ctx, ref))

		require.NoError(t, svc.DeleteReference(ctx, ref.ID))

		_, err := svc.FindReferenceByID(ctx, ref.ID)
		assert.Equal(t, citer.ENOTFOUND, citer.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		svc, _ := setupReferences(t)

		err := svc.DeleteReference(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, citer.ENOTFOUND, citer.ErrorCode(err))
	})

	t.Run("deletes all references of a project", func(t *testing.T) {
		t.Parallel()

		svc, project := setupReferences(t)
		ctx := context.Background()
		for _, u := range []string{"https://a.example/", "https://b.example/"} {
			require.NoError(t, svc.CreateReference(ctx, &citer.Reference{ProjectID: project.ID, URL: u}))
		}

		require.NoError(t, svc.DeleteReferencesByProject(ctx, project.ID))

		refs, err := svc.FindReferences(ctx, citer.ReferenceFilter{ProjectID: &project.ID})
		require.NoError(t, err)
		assert.Empty(t, refs)
	})
}
