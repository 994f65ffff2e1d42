package main

import (
	"fmt"

	"github.com/fwojciec/citer"
)

// Run executes the ref add command.
func (c *RefAddCmd) Run(deps *Dependencies) error {
	project, err := resolveProject(deps, c.Project)
	if err != nil {
		return err
	}

	guesses, err := deps.Guesser.Guess(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s (%s)\n", citer.ErrorMessage(err), citer.GuessKindOf(err))
		return err
	}

	ref := citer.NewReference(project.ID, c.URL, guesses, deps.Now())
	c.RefFields.apply(ref)

	if err := deps.References.CreateReference(deps.Ctx, ref); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", citer.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added reference %s to %q\n", ref.ID, project.Name)
	fmt.Fprintf(deps.Stdout, "  %s\n", citer.FormatHarvard(ref))
	return nil
}

// Run executes the ref list command.
func (c *RefListCmd) Run(deps *Dependencies) error {
	project, err := resolveProject(deps, c.Project)
	if err != nil {
		return err
	}

	refs, err := deps.References.FindReferences(deps.Ctx, citer.ReferenceFilter{ProjectID: &project.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", citer.ErrorMessage(err))
		return err
	}

	if len(refs) == 0 {
		fmt.Fprintf(deps.Stdout, "No references in %q. Use 'citer ref add <url>' to add one.\n", project.Name)
		return nil
	}

	if !c.IDs {
		fmt.Fprintln(deps.Stdout, citer.FormatBibliography(refs))
		return nil
	}

	for _, ref := range refs {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", ref.ID, citer.FormatHarvard(ref))
	}
	return nil
}

// Run executes the ref edit command.
func (c *RefEditCmd) Run(deps *Dependencies) error {
	upd := citer.ReferenceUpdate{
		Author: c.Author,
		Year:   c.Year,
		Title:  c.Title,
		Site:   c.Site,
	}

	ref, err := deps.References.UpdateReference(deps.Ctx, c.ID, upd)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", citer.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Updated reference %s\n", ref.ID)
	fmt.Fprintf(deps.Stdout, "  %s\n", citer.FormatHarvard(ref))
	return nil
}

// Run executes the ref delete command.
func (c *RefDeleteCmd) Run(deps *Dependencies) error {
	if err := deps.References.DeleteReference(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", citer.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted reference %s\n", c.ID)
	return nil
}

// apply overwrites guessed fields with any values given on the command line.
func (f *RefFields) apply(ref *citer.Reference) {
	if f.Author != nil {
		ref.Author = *f.Author
	}
	if f.Year != nil {
		ref.Year = *f.Year
	}
	if f.Title != nil {
		ref.Title = *f.Title
	}
	if f.Site != nil {
		ref.Site = *f.Site
	}
}
