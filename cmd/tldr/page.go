package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/tldr"
)

// Run executes the page command.
func (c *PageCmd) Run(deps *Dependencies) error {
	return showPage(deps, strings.Join(c.Command, "-"))
}

// Run executes the random command.
func (c *RandomCmd) Run(deps *Dependencies) error {
	names, err := deps.Pages.CommandsFor(deps.Ctx, deps.Platform)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tldr.ErrorMessage(err))
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(deps.Stderr, emptyCacheMessage)
		return errEmptyCache()
	}

	name := names[deps.Pick(len(names))]
	fmt.Fprintf(deps.Stdout, "PAGE %s\n", name)
	return showPage(deps, name)
}

// showPage resolves a page for the preferred platform and language and
// prints its raw markdown.
func showPage(deps *Dependencies, name string) error {
	loc, err := deps.Pages.FindPage(deps.Ctx, name, deps.Platform, deps.Language)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tldr.ErrorMessage(err))
		return err
	}

	if loc == nil {
		if deps.Pages.HasPage(name) {
			msg := fmt.Sprintf("page %s is not available for platform %s", name, deps.Platform)
			fmt.Fprintf(deps.Stderr, "error: %s\n", msg)
			return tldr.Errorf(tldr.ENOTFOUND, "%s", msg)
		}
		fmt.Fprintln(deps.Stderr, notFoundMessage)
		return tldr.Errorf(tldr.ENOTFOUND, "page %s not found", name)
	}

	checkStale(deps)

	if loc.Substituted {
		fmt.Fprintf(deps.Stderr, "Showing page from platform %s, it is not available for %s.\n", loc.Platform, deps.Platform)
	}

	content, err := deps.Reader.ReadText(deps.Ctx, loc.Path(name))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to read page %s\n", name)
		return fmt.Errorf("read page %s: %w", name, err)
	}

	fmt.Fprint(deps.Stdout, content)
	if !strings.HasSuffix(content, "\n") {
		fmt.Fprintln(deps.Stdout)
	}
	return nil
}
