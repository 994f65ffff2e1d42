package citer_test

import (
	"testing"
	"time"

	"github.com/fwojciec/citer"
	"github.com/stretchr/testify/assert"
)

func TestFormatAccessDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3/7/2024", citer.FormatAccessDate(time.Date(2024, time.July, 3, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, "14/10/2026", citer.FormatAccessDate(time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)))
}

func TestFormatHarvard(t *testing.T) {
	t.Parallel()

	accessed := time.Date(2024, time.July, 3, 9, 0, 0, 0, time.UTC)

	t.Run("formats all fields", func(t *testing.T) {
		t.Parallel()

		ref := &citer.Reference{
			URL:        "https://www.example.com/about",
			Author:     "Example Org",
			Year:       "2021",
			Title:      "About us",
			Site:       "Example",
			AccessedAt: accessed,
		}

		assert.Equal(t,
			"Example Org (2021) About us. Example. Available at: https://www.example.com/about (Accessed: 3/7/2024).",
			citer.FormatHarvard(ref))
	})

	t.Run("omits site when it repeats the author", func(t *testing.T) {
		t.Parallel()

		ref := &citer.Reference{
			URL:        "https://www.example.com/",
			Author:     "Example",
			Year:       "2021",
			Title:      "Home",
			Site:       "Example",
			AccessedAt: accessed,
		}

		assert.Equal(t,
			"Example (2021) Home. Available at: https://www.example.com/ (Accessed: 3/7/2024).",
			citer.FormatHarvard(ref))
	})

	t.Run("omits empty author and access date", func(t *testing.T) {
		t.Parallel()

		ref := &citer.Reference{URL: "https://co.uk/", Year: "2020", Title: citer.UnknownTitle}

		assert.Equal(t, "(2020) unknown title. Available at: https://co.uk/.", citer.FormatHarvard(ref))
	})
}

func TestFormatBibliography(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string for no references", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", citer.FormatBibliography(nil))
	})

	t.Run("sorts by author then year without modifying input", func(t *testing.T) {
		t.Parallel()

		refs := []*citer.Reference{
			{URL: "https://c.example", Author: "zeta", Year: "2001", Title: "C"},
			{URL: "https://b.example", Author: "Alpha", Year: "2010", Title: "B"},
			{URL: "https://a.example", Author: "alpha", Year: "2005", Title: "A"},
		}

		got := citer.FormatBibliography(refs)

		assert.Equal(t,
			"alpha (2005) A. Available at: https://a.example.\n"+
				"Alpha (2010) B. Available at: https://b.example.\n"+
				"zeta (2001) C. Available at: https://c.example.",
			got)
		assert.Equal(t, "zeta", refs[0].Author)
	})
}

func TestNewReference(t *testing.T) {
	t.Parallel()

	accessed := time.Date(2024, time.July, 3, 9, 0, 0, 0, time.UTC)
	g := &citer.Guesses{
		Author:       "Example Org",
		Year:         "2021",
		Page:         "About us",
		Site:         "Example",
		AuthorSource: citer.AuthorFromWhois,
	}

	ref := citer.NewReference("proj-1", "https://example.com/about", g, accessed)

	assert.Equal(t, "proj-1", ref.ProjectID)
	assert.Equal(t, "https://example.com/about", ref.URL)
	assert.Equal(t, "Example Org", ref.Author)
	assert.Equal(t, "2021", ref.Year)
	assert.Equal(t, "About us", ref.Title)
	assert.Equal(t, "Example", ref.Site)
	assert.Equal(t, citer.AuthorFromWhois, ref.AuthorSource)
	assert.Equal(t, accessed, ref.AccessedAt)
	assert.NoError(t, ref.Validate())
}

func TestReference_Validate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, citer.EINVALID, citer.ErrorCode((&citer.Reference{URL: "https://example.com"}).Validate()))
	assert.Equal(t, citer.EINVALID, citer.ErrorCode((&citer.Reference{ProjectID: "p"}).Validate()))
}

func TestProject_Validate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, citer.EINVALID, citer.ErrorCode((&citer.Project{}).Validate()))
	assert.NoError(t, (&citer.Project{Name: "thesis"}).Validate())
}
