package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/tldr"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Pages  tldr.PageIndex
	Search tldr.SearchService
	Reader tldr.ContentReader

	// Platform and Language are the preferred lookup target.
	Platform string
	Language string

	// Pick returns a random index in [0, n).
	Pick func(n int) int

	// Now returns the current time.
	Now func() time.Time
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	CacheDir    string `name:"cache-dir" env:"TLDR_CACHE_DIR" default:"${cache_dir}" help:"Page cache directory"`
	Store       string `env:"TLDR_STORE" enum:"json,sqlite" default:"json" help:"Artifact store (json, sqlite)"`
	Platform    string `short:"p" env:"TLDR_PLATFORM" help:"Override the operating system"`
	Language    string `short:"L" help:"Override the locale language"`
	Strict      bool   `help:"Never substitute a page from another platform"`
	Concurrency int    `short:"c" default:"8" help:"Concurrent page reads when building the search corpus"`
	Verbose     bool   `short:"v" help:"Log debug output to stderr"`

	Page        PageCmd        `cmd:"" default:"withargs" help:"Show the page for a command"`
	List        ListCmd        `cmd:"" help:"List pages for the current platform"`
	ListAll     ListAllCmd     `cmd:"" name:"list-all" help:"List pages for all platforms"`
	Random      RandomCmd      `cmd:"" help:"Show a random page for the current platform"`
	Search      SearchCmd      `cmd:"" help:"Search pages by keywords"`
	Rebuild     RebuildCmd     `cmd:"" help:"Rebuild the page index from the cache"`
	BuildSearch BuildSearchCmd `cmd:"" name:"build-search" help:"Build the search corpus from the cache"`
	Clear       ClearCmd       `cmd:"" help:"Remove the page index and search corpus"`
}

// PageCmd is the "page" subcommand.
type PageCmd struct {
	Command []string `arg:"" help:"Command name; words are joined with dashes"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	SingleColumn bool `short:"1" help:"One page per line"`
}

// ListAllCmd is the "list-all" subcommand.
type ListAllCmd struct {
	SingleColumn bool `short:"1" help:"One page per line"`
}

// RandomCmd is the "random" subcommand.
type RandomCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query []string `arg:"" help:"Keywords to search for"`
}

// RebuildCmd is the "rebuild" subcommand.
type RebuildCmd struct{}

// BuildSearchCmd is the "build-search" subcommand.
type BuildSearchCmd struct{}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct{}
