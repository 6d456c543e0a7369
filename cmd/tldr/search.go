package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/tldr"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Search.Search(deps.Ctx, strings.Join(c.Query, " "))
	if tldr.ErrorCode(err) == tldr.ENOTFOUND {
		fmt.Fprintln(deps.Stderr, "Search corpus not found. Run 'tldr build-search' first.")
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tldr.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results found.")
		return nil
	}

	for _, r := range results {
		var platforms []string
		for _, t := range r.Targets {
			if len(platforms) == 0 || platforms[len(platforms)-1] != t.Platform {
				platforms = append(platforms, t.Platform)
			}
		}
		line := fmt.Sprintf("%s  %.4f  %s", r.Page, r.Score, r.File)
		if len(platforms) > 0 {
			line += "  [" + strings.Join(platforms, ", ") + "]"
		}
		fmt.Fprintln(deps.Stdout, line)
	}
	return nil
}
