package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/citer"
	"github.com/fwojciec/citer/goquery"
	"github.com/fwojciec/citer/guess"
	citerhttp "github.com/fwojciec/citer/http"
	citerslog "github.com/fwojciec/citer/slog"
	"github.com/fwojciec/citer/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when neither flags nor the config file set one.
	DBPath string

	// Config file path used when --config is not given.
	ConfigPath string

	// Now returns the time recorded as a reference's access date.
	Now func() time.Time

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ProjectService   citer.ProjectService
	ReferenceService citer.ReferenceService
	StateService     citer.StateService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		ConfigPath: defaultConfigPath(),
		Now:        time.Now,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Now:    m.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("citer"),
		kong.Description("Guess and manage Harvard citations for web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'citer --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := m.loadConfig(cli.Config)
	if err != nil {
		return err
	}
	cfg.Merge(cli)
	if cfg.DBPath == "" {
		cfg.DBPath = m.DBPath
	}

	m.DB = sqlite.NewDB(cfg.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CITER_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cfg.DBPath, err)
	}
	defer m.Close()

	m.ProjectService = sqlite.NewProjectService(m.DB)
	m.ReferenceService = sqlite.NewReferenceService(m.DB)
	m.StateService = sqlite.NewStateService(m.DB)
	deps.DB = m.DB
	deps.Projects = m.ProjectService
	deps.References = m.ReferenceService
	deps.State = m.StateService

	cmd := kongCtx.Command()
	if strings.HasPrefix(cmd, "guess") || strings.HasPrefix(cmd, "ref add") {
		var logger *slog.Logger
		if cli.Debug {
			logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}

		guesser, err := newGuesser(cfg, logger)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return err
		}
		if cfg.Whois.APIKey == "" && cli.Debug {
			logger.Info("whois disabled", "hint", "set CITER_WHOIS_API_KEY to look up domain owners")
		}

		deps.Guesser = guesser
		deps.Batch = &guess.Batch{
			Guesser:     guesser,
			RateLimiter: guess.NewDomainLimiter(1.0),
			Concurrency: cli.Guess.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

// loadConfig reads the config file. A missing file is only an error when
// its path was given explicitly.
func (m *Main) loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = m.ConfigPath
	}
	if path == "" {
		return &Config{}, nil
	}

	cfg, err := LoadConfigFile(path)
	if errors.Is(err, ErrConfigNotFound) && !explicit {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config %q: %w", path, err)
	}
	return cfg, nil
}

// newGuesser wires the guess pipeline from configuration. A nil logger
// disables logging.
func newGuesser(cfg *Config, logger *slog.Logger) (citer.Guesser, error) {
	suffixes, err := LoadSuffixes(cfg.SuffixesFile)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = citerhttp.DefaultFetchTimeout
	}

	var fetcher citer.Fetcher = citerhttp.NewFetcher(citerhttp.WithTimeout(timeout))
	if logger != nil {
		fetcher = citerslog.NewLoggingFetcher(fetcher, logger)
	}

	var owners citer.OwnerResolver
	if cfg.Whois.APIKey != "" {
		opts := []citerhttp.WhoisOption{citerhttp.WithWhoisTimeout(timeout)}
		if cfg.Whois.BaseURL != "" {
			opts = append(opts, citerhttp.WithWhoisBaseURL(cfg.Whois.BaseURL))
		}
		owners = citerhttp.NewWhoisClient(cfg.Whois.APIKey, opts...)
		if logger != nil {
			owners = citerslog.NewLoggingOwnerResolver(owners, logger)
		}
	}

	var guesser citer.Guesser = &guess.Guesser{
		Fetcher:  fetcher,
		Titles:   goquery.NewTitleExtractor(),
		Owners:   owners,
		Suffixes: suffixes,
	}
	if logger != nil {
		guesser = citerslog.NewLoggingGuesser(guesser, logger)
	}
	return guesser, nil
}
