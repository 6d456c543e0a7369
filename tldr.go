// Package tldr provides the page index and search engine behind a local,
// CLI-based cheat sheet viewer. It indexes a cache directory of pages
// (one per command, segmented by platform and language), resolves the best
// page for a preferred platform and language, and ranks pages against
// free-text queries.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, snowball/, fs/).
package tldr
