package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/citer"
	"github.com/fwojciec/citer/guess"
	"github.com/fwojciec/citer/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Projects   citer.ProjectService
	References citer.ReferenceService
	State      citer.StateService
	Guesser    citer.Guesser
	Batch      *guess.Batch
	Now        func() time.Time
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB       string        `name:"db" env:"CITER_DB" help:"Database path"`
	Config   string        `name:"config" env:"CITER_CONFIG" help:"Config file path"`
	WhoisKey string        `name:"whois-key" env:"CITER_WHOIS_API_KEY" help:"API key for the WHOIS XML service"`
	WhoisURL string        `name:"whois-url" env:"CITER_WHOIS_URL" help:"Base URL of the WHOIS XML service"`
	Suffixes string        `name:"suffixes" env:"CITER_SUFFIXES" help:"File of subdomain and suffix tokens, one per line"`
	Timeout  time.Duration `help:"HTTP timeout per request"`
	Debug    bool          `help:"Log network calls to stderr"`

	Guess   GuessCmd   `cmd:"" help:"Guess citation details for URLs"`
	Project ProjectCmd `cmd:"" help:"Manage projects"`
	Ref     RefCmd     `cmd:"" help:"Manage references"`
}

// GuessCmd is the "guess" subcommand.
type GuessCmd struct {
	URLs        []string `arg:"" name:"url" help:"URLs to guess"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent guess limit"`
}

// ProjectCmd groups the project subcommands.
type ProjectCmd struct {
	Add    ProjectAddCmd    `cmd:"" help:"Create a project and make it current"`
	List   ProjectListCmd   `cmd:"" help:"List projects"`
	Use    ProjectUseCmd    `cmd:"" help:"Select the current project"`
	Rename ProjectRenameCmd `cmd:"" help:"Rename a project"`
	Delete ProjectDeleteCmd `cmd:"" help:"Delete a project and its references"`
}

// ProjectAddCmd is the "project add" subcommand.
type ProjectAddCmd struct {
	Name string `arg:"" help:"Project name"`
}

// ProjectListCmd is the "project list" subcommand.
type ProjectListCmd struct{}

// ProjectUseCmd is the "project use" subcommand.
type ProjectUseCmd struct {
	Name string `arg:"" help:"Project name"`
}

// ProjectRenameCmd is the "project rename" subcommand.
type ProjectRenameCmd struct {
	Name    string `arg:"" help:"Current project name"`
	NewName string `arg:"" help:"New project name"`
}

// ProjectDeleteCmd is the "project delete" subcommand.
type ProjectDeleteCmd struct {
	Name  string `arg:"" help:"Project name"`
	Force bool   `help:"Confirm deletion"`
}

// RefCmd groups the reference subcommands.
type RefCmd struct {
	Add    RefAddCmd    `cmd:"" help:"Guess a URL's details and add it as a reference"`
	List   RefListCmd   `cmd:"" help:"List references as Harvard citations"`
	Edit   RefEditCmd   `cmd:"" help:"Correct the details of a reference"`
	Delete RefDeleteCmd `cmd:"" help:"Delete a reference"`
}

// RefFields holds manual overrides for guessed citation fields.
type RefFields struct {
	Author *string `help:"Author or organisation"`
	Year   *string `help:"Publication year"`
	Title  *string `help:"Page title"`
	Site   *string `help:"Site name"`
}

// RefAddCmd is the "ref add" subcommand.
type RefAddCmd struct {
	URL     string `arg:"" help:"URL to cite"`
	Project string `short:"p" help:"Project name (default: current project)"`
	RefFields `embed:""`
}

// RefListCmd is the "ref list" subcommand.
type RefListCmd struct {
	Project string `short:"p" help:"Project name (default: current project)"`
	IDs     bool   `name:"ids" help:"Prefix each citation with its reference ID"`
}

// RefEditCmd is the "ref edit" subcommand.
type RefEditCmd struct {
	ID string `arg:"" help:"Reference ID"`
	RefFields `embed:""`
}

// RefDeleteCmd is the "ref delete" subcommand.
type RefDeleteCmd struct {
	ID string `arg:"" help:"Reference ID"`
}
