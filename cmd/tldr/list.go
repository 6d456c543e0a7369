package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/tldr"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	names, err := deps.Pages.CommandsFor(deps.Ctx, deps.Platform)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tldr.ErrorMessage(err))
		return err
	}
	return printPages(deps, names, c.SingleColumn)
}

// Run executes the list-all command.
func (c *ListAllCmd) Run(deps *Dependencies) error {
	names, err := deps.Pages.Commands(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tldr.ErrorMessage(err))
		return err
	}
	return printPages(deps, names, c.SingleColumn)
}

func printPages(deps *Dependencies, names []string, singleColumn bool) error {
	if len(names) == 0 {
		fmt.Fprintln(deps.Stderr, emptyCacheMessage)
		return errEmptyCache()
	}

	checkStale(deps)

	delimiter := ", "
	if singleColumn {
		delimiter = "\n"
	}
	fmt.Fprintln(deps.Stdout, strings.Join(names, delimiter))
	return nil
}
