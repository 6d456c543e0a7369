package main

import (
	"fmt"

	"github.com/fwojciec/tldr"
)

// Run executes the rebuild command.
func (c *RebuildCmd) Run(deps *Dependencies) error {
	idx, err := deps.Pages.Rebuild(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tldr.ErrorMessage(err))
		return err
	}
	if len(idx) == 0 {
		fmt.Fprintln(deps.Stderr, emptyCacheMessage)
		return errEmptyCache()
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d pages\n", len(idx))
	return nil
}

// Run executes the build-search command.
func (c *BuildSearchCmd) Run(deps *Dependencies) error {
	corpus, err := deps.Search.Build(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tldr.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d documents, %d tokens\n", corpus.DocumentCount(), len(corpus.AllTokens))
	return nil
}

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if err := deps.Pages.Clear(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tldr.ErrorMessage(err))
		return err
	}
	if err := deps.Search.Clear(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tldr.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Done")
	return nil
}
