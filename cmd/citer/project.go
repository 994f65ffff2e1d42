package main

import (
	"fmt"

	"github.com/fwojciec/citer"
)

// Run executes the project add command.
func (c *ProjectAddCmd) Run(deps *Dependencies) error {
	project := &citer.Project{Name: c.Name}

	if err := deps.Projects.CreateProject(deps.Ctx, project); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", citer.ErrorMessage(err))
		return err
	}

	if err := deps.State.SetCurrentProject(deps.Ctx, project.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", citer.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added project %q (%s)\n", project.Name, project.ID)
	return nil
}

// Run executes the project list command. The current project is marked
// with an asterisk.
func (c *ProjectListCmd) Run(deps *Dependencies) error {
	projects, err := deps.Projects.FindProjects(deps.Ctx, citer.ProjectFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", citer.ErrorMessage(err))
		return err
	}

	if len(projects) == 0 {
		fmt.Fprintln(deps.Stdout, "No projects found. Use 'citer project add' to create one.")
		return nil
	}

	var currentID string
	current, err := deps.State.CurrentProject(deps.Ctx)
	switch {
	case err == nil:
		currentID = current.ID
	case citer.ErrorCode(err) != citer.ENOTFOUND:
		fmt.Fprintf(deps.Stderr, "error: %s\n", citer.ErrorMessage(err))
		return err
	}

	for _, p := range projects {
		marker := " "
		if p.ID == currentID {
			marker = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s %s  %s\n", marker, p.ID, p.Name)
	}

	return nil
}

// Run executes the project use command.
func (c *ProjectUseCmd) Run(deps *Dependencies) error {
	project, err := findProjectByName(deps, c.Name)
	if err != nil {
		return err
	}

	if err := deps.State.SetCurrentProject(deps.Ctx, project.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", citer.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Now using project %q\n", project.Name)
	return nil
}

// Run executes the project rename command.
func (c *ProjectRenameCmd) Run(deps *Dependencies) error {
	project, err := findProjectByName(deps, c.Name)
	if err != nil {
		return err
	}

	updated, err := deps.Projects.UpdateProject(deps.Ctx, project.ID, citer.ProjectUpdate{Name: &c.NewName})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", citer.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Renamed project %q to %q\n", c.Name, updated.Name)
	return nil
}

// Run executes the project delete command.
func (c *ProjectDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return citer.Errorf(citer.EINVALID, "use --force to confirm deletion")
	}

	project, err := findProjectByName(deps, c.Name)
	if err != nil {
		return err
	}

	if err := deps.Projects.DeleteProject(deps.Ctx, project.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", citer.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted project %q\n", project.Name)
	return nil
}

// findProjectByName looks up a project by name, reporting failures to stderr.
func findProjectByName(deps *Dependencies, name string) (*citer.Project, error) {
	projects, err := deps.Projects.FindProjects(deps.Ctx, citer.ProjectFilter{Name: &name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", citer.ErrorMessage(err))
		return nil, err
	}

	if len(projects) == 0 {
		fmt.Fprintf(deps.Stderr, "error: project %q not found. Use 'citer project list' to see available projects.\n", name)
		return nil, citer.Errorf(citer.ENOTFOUND, "project %q not found", name)
	}

	return projects[0], nil
}

// resolveProject returns the named project, or the current project when
// name is empty.
func resolveProject(deps *Dependencies, name string) (*citer.Project, error) {
	if name != "" {
		return findProjectByName(deps, name)
	}

	project, err := deps.State.CurrentProject(deps.Ctx)
	if citer.ErrorCode(err) == citer.ENOTFOUND {
		fmt.Fprintln(deps.Stderr, "error: no current project. Use 'citer project add' or 'citer project use' to select one.")
		return nil, err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", citer.ErrorMessage(err))
		return nil, err
	}
	return project, nil
}
