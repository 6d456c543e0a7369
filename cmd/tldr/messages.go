package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/tldr"
)

const (
	emptyCacheMessage = "Local cache is empty\nPlease run tldr rebuild"
	staleMessage      = `Cache is out of date, you should run "tldr rebuild"`
	notFoundMessage   = "Page not found.\nIf you want to contribute it, feel free to send a pull request to: https://github.com/tldr-pages/tldr"
)

// errEmptyCache reports a cache without any pages.
func errEmptyCache() error {
	return tldr.Errorf(tldr.ENOTFOUND, "local cache is empty")
}

// staleAfter is the index age after which a rebuild is suggested.
const staleAfter = 30 * 24 * time.Hour

// checkStale warns on stderr when the persisted index is older than
// staleAfter. An index that cannot be dated is not reported.
func checkStale(deps *Dependencies) {
	updated, err := deps.Pages.UpdatedAt(deps.Ctx)
	if err != nil {
		return
	}
	if deps.Now().Sub(updated) > staleAfter {
		fmt.Fprintln(deps.Stderr, staleMessage)
	}
}
