package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/tldr"
	"github.com/fwojciec/tldr/fs"
	"github.com/fwojciec/tldr/index"
	"github.com/fwojciec/tldr/search"
	tslog "github.com/fwojciec/tldr/slog"
	"github.com/fwojciec/tldr/snowball"
	"github.com/fwojciec/tldr/sqlite"
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
	// Getenv looks up locale variables. Defaults to os.Getenv.
	Getenv func(string) string

	// GOOS is the host operating system used when no platform is configured.
	GOOS string

	// SQLite database, opened only for --store=sqlite.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Getenv: os.Getenv,
		GOOS:   runtime.GOOS,
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
		Pick:   rand.IntN,
		Now:    time.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tldr"),
		kong.Description("Simplified, community-driven man pages from a local cache"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"cache_dir": defaultCacheDir()},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'tldr --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if err := m.wire(cli, deps); err != nil {
		return err
	}
	defer m.Close()

	return kongCtx.Run(deps)
}

// wire builds the services selected by the global flags.
func (m *Main) wire(cli *CLI, deps *Dependencies) error {
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: level}))

	root := cli.CacheDir
	var store tldr.ArtifactStore
	switch cli.Store {
	case "sqlite":
		if err := os.MkdirAll(root, 0755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
		path := filepath.Join(root, "tldr.db")
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(deps.Stderr, "Hint: Set TLDR_STORE=json to use plain files\n")
			return fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		store = sqlite.NewStore(m.DB)
	default:
		store = fs.NewStore(root)
	}

	scanner := fs.NewScanner()
	reader := fs.NewReader(root)

	pages := index.NewService(root, scanner, store)
	pages.Strict = cli.Strict
	deps.Pages = tslog.NewLoggingIndex(pages, logger)

	deps.Search = tslog.NewLoggingSearch(&search.Service{
		Root:        root,
		Scanner:     scanner,
		Reader:      reader,
		Store:       store,
		Tokenizer:   snowball.NewTokenizer(),
		Pages:       pages,
		Concurrency: cli.Concurrency,
	}, logger)

	deps.Reader = reader
	deps.Platform = tldr.PreferredPlatform(cli.Platform, m.GOOS)
	deps.Language = cli.Language
	if deps.Language == "" {
		deps.Language = tldr.PreferredLanguage(m.Getenv)
	}
	return nil
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".tldr", "cache")
	}
	return filepath.Join(home, ".tldr", "cache")
}
