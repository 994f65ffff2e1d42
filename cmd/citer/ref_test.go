package main_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/citer"
	main "github.com/fwojciec/citer/cmd/citer"
	"github.com/fwojciec/citer/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accessed = time.Date(2024, time.July, 3, 9, 0, 0, 0, time.Local)

func currentProject(p *citer.Project) *mock.StateService {
	return &mock.StateService{
		CurrentProjectFn: func(context.Context) (*citer.Project, error) {
			return p, nil
		},
	}
}

func strPtr(s string) *string { return &s }

func TestRefAddCmd_Run(t *testing.T) {
	t.Parallel()

	essay := &citer.Project{ID: "proj-1", Name: "essay"}

	exampleGuesser := &mock.Guesser{
		GuessFn: func(context.Context, string) (*citer.Guesses, error) {
			return &citer.Guesses{
				Author:       "Example Org",
				Year:         "2023",
				Page:         "Example Domain",
				Site:         "Example",
				AuthorSource: citer.AuthorFromWhois,
			}, nil
		},
	}

	t.Run("stores guessed reference in current project", func(t *testing.T) {
		t.Parallel()

		var created *citer.Reference
		refs := &mock.ReferenceService{
			CreateReferenceFn: func(_ context.Context, ref *citer.Reference) error {
				ref.ID = "ref-1"
				created = ref
				return nil
			},
		}
		deps, stdout, stderr := newDeps(nil, currentProject(essay))
		deps.References = refs
		deps.Guesser = exampleGuesser
		deps.Now = func() time.Time { return accessed }

		err := (&main.RefAddCmd{URL: "https://www.example.com/"}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "proj-1", created.ProjectID)
		assert.Equal(t, "Example Org", created.Author)
		assert.Equal(t, citer.AuthorFromWhois, created.AuthorSource)
		assert.Equal(t, accessed, created.AccessedAt)
		assert.Contains(t, stdout.String(), `Added reference ref-1 to "essay"`)
		assert.Contains(t, stdout.String(),
			"Example Org (2023) Example Domain. Example. Available at: https://www.example.com/ (Accessed: 3/7/2024).")
		assert.Empty(t, stderr.String())
	})

	t.Run("applies overrides", func(t *testing.T) {
		t.Parallel()

		var created *citer.Reference
		refs := &mock.ReferenceService{
			CreateReferenceFn: func(_ context.Context, ref *citer.Reference) error {
				created = ref
				return nil
			},
		}
		deps, _, _ := newDeps(nil, currentProject(essay))
		deps.References = refs
		deps.Guesser = exampleGuesser
		deps.Now = func() time.Time { return accessed }

		cmd := &main.RefAddCmd{URL: "https://www.example.com/"}
		cmd.Author = strPtr("Jane Doe")
		cmd.Year = strPtr("2019")

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "Jane Doe", created.Author)
		assert.Equal(t, "2019", created.Year)
		assert.Equal(t, "Example Domain", created.Title)
	})

	t.Run("uses named project", func(t *testing.T) {
		t.Parallel()

		var created *citer.Reference
		refs := &mock.ReferenceService{
			CreateReferenceFn: func(_ context.Context, ref *citer.Reference) error {
				created = ref
				return nil
			},
		}
		deps, _, _ := newDeps(projectsNamed(&citer.Project{ID: "proj-2", Name: "thesis"}), nil)
		deps.References = refs
		deps.Guesser = exampleGuesser
		deps.Now = func() time.Time { return accessed }

		require.NoError(t, (&main.RefAddCmd{URL: "https://example.com/", Project: "thesis"}).Run(deps))
		assert.Equal(t, "proj-2", created.ProjectID)
	})

	t.Run("reports guess failure kind without storing", func(t *testing.T) {
		t.Parallel()

		refs := &mock.ReferenceService{
			CreateReferenceFn: func(context.Context, *citer.Reference) error {
				panic("must not store")
			},
		}
		deps, _, stderr := newDeps(nil, currentProject(essay))
		deps.References = refs
		deps.Guesser = &mock.Guesser{
			GuessFn: func(_ context.Context, rawURL string) (*citer.Guesses, error) {
				return nil, &citer.GuessError{Kind: citer.GuessRequest, URL: rawURL}
			},
		}

		err := (&main.RefAddCmd{URL: "https://example.com/"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "could not guess citation details (Request)")
	})

	t.Run("hints when no project is selected", func(t *testing.T) {
		t.Parallel()

		state := &mock.StateService{
			CurrentProjectFn: func(context.Context) (*citer.Project, error) {
				return nil, citer.Errorf(citer.ENOTFOUND, "no current project")
			},
		}
		deps, _, stderr := newDeps(nil, state)

		err := (&main.RefAddCmd{URL: "https://example.com/"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "citer project use")
	})
}

func TestRefListCmd_Run(t *testing.T) {
	t.Parallel()

	essay := &citer.Project{ID: "proj-1", Name: "essay"}
	stored := []*citer.Reference{
		{ID: "r1", URL: "https://z.example/", Author: "Zed", Year: "2020", Title: "Last", Site: "Z", AccessedAt: accessed},
		{ID: "r2", URL: "https://a.example/", Author: "Abe", Year: "2021", Title: "First", Site: "A", AccessedAt: accessed},
	}

	t.Run("prints bibliography sorted by author", func(t *testing.T) {
		t.Parallel()

		var gotProject string
		refs := &mock.ReferenceService{
			FindReferencesFn: func(_ context.Context, filter citer.ReferenceFilter) ([]*citer.Reference, error) {
				gotProject = *filter.ProjectID
				return stored, nil
			},
		}
		deps, stdout, _ := newDeps(nil, currentProject(essay))
		deps.References = refs

		require.NoError(t, (&main.RefListCmd{}).Run(deps))

		assert.Equal(t, "proj-1", gotProject)
		assert.Equal(t,
			"Abe (2021) First. A. Available at: https://a.example/ (Accessed: 3/7/2024).\n"+
				"Zed (2020) Last. Z. Available at: https://z.example/ (Accessed: 3/7/2024).\n",
			stdout.String())
	})

	t.Run("prefixes IDs in insertion order", func(t *testing.T) {
		t.Parallel()

		refs := &mock.ReferenceService{
			FindReferencesFn: func(context.Context, citer.ReferenceFilter) ([]*citer.Reference, error) {
				return stored, nil
			},
		}
		deps, stdout, _ := newDeps(nil, currentProject(essay))
		deps.References = refs

		require.NoError(t, (&main.RefListCmd{IDs: true}).Run(deps))

		lines := stdout.String()
		assert.Contains(t, lines, "r1  Zed (2020)")
		assert.Contains(t, lines, "r2  Abe (2021)")
		assert.Less(t, strings.Index(lines, "r1"), strings.Index(lines, "r2"))
	})

	t.Run("shows helpful message when empty", func(t *testing.T) {
		t.Parallel()

		refs := &mock.ReferenceService{
			FindReferencesFn: func(context.Context, citer.ReferenceFilter) ([]*citer.Reference, error) {
				return nil, nil
			},
		}
		deps, stdout, _ := newDeps(nil, currentProject(essay))
		deps.References = refs

		require.NoError(t, (&main.RefListCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), `No references in "essay"`)
	})
}

func TestRefEditCmd_Run(t *testing.T) {
	t.Parallel()

	var got citer.ReferenceUpdate
	refs := &mock.ReferenceService{
		UpdateReferenceFn: func(_ context.Context, id string, upd citer.ReferenceUpdate) (*citer.Reference, error) {
			got = upd
			return &citer.Reference{ID: id, URL: "https://example.com/", Author: *upd.Author, Year: "2024", Title: "T"}, nil
		},
	}
	deps, stdout, _ := newDeps(nil, nil)
	deps.References = refs

	cmd := &main.RefEditCmd{ID: "r1"}
	cmd.Author = strPtr("Jane Doe")

	require.NoError(t, cmd.Run(deps))

	require.NotNil(t, got.Author)
	assert.Equal(t, "Jane Doe", *got.Author)
	assert.Nil(t, got.Year)
	assert.Contains(t, stdout.String(), "Updated reference r1")
	assert.Contains(t, stdout.String(), "Jane Doe (2024) T.")
}

func TestRefDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes reference", func(t *testing.T) {
		t.Parallel()

		var deleted string
		refs := &mock.ReferenceService{
			DeleteReferenceFn: func(_ context.Context, id string) error {
				deleted = id
				return nil
			},
		}
		deps, stdout, _ := newDeps(nil, nil)
		deps.References = refs

		require.NoError(t, (&main.RefDeleteCmd{ID: "r1"}).Run(deps))
		assert.Equal(t, "r1", deleted)
		assert.Contains(t, stdout.String(), "Deleted reference r1")
	})

	t.Run("reports missing reference", func(t *testing.T) {
		t.Parallel()

		refs := &mock.ReferenceService{
			DeleteReferenceFn: func(context.Context, string) error {
				return citer.Errorf(citer.ENOTFOUND, "reference not found")
			},
		}
		deps, _, stderr := newDeps(nil, nil)
		deps.References = refs

		err := (&main.RefDeleteCmd{ID: "nope"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: reference not found")
	})
}
