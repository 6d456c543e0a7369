package tldr

import (
	"cmp"
	"context"
	"slices"
	"sort"
	"time"
)

// DefaultLanguage is the language of pages stored under the unqualified
// pages directory. It is never used as a directory suffix.
const DefaultLanguage = "en"

// PlatformCommon marks pages that apply to every platform.
const PlatformCommon = "common"

// Target is a platform and language at which a page has a stored file.
type Target struct {
	Platform string `json:"platform"`
	Language string `json:"language"`
}

// PageEntry holds the unique targets at which a page is available.
type PageEntry struct {
	Targets []Target `json:"targets"`
}

// Add records a target, ignoring duplicates. Targets are kept sorted by
// platform then language so that two builds of the same tree are identical.
func (e *PageEntry) Add(t Target) {
	i, found := slices.BinarySearchFunc(e.Targets, t, compareTargets)
	if found {
		return
	}
	e.Targets = slices.Insert(e.Targets, i, t)
}

// Has reports whether the page is available at the target.
func (e *PageEntry) Has(t Target) bool {
	return slices.Contains(e.Targets, t)
}

// HasPlatform reports whether the page is available on the platform in any language.
func (e *PageEntry) HasPlatform(platform string) bool {
	return slices.ContainsFunc(e.Targets, func(t Target) bool { return t.Platform == platform })
}

// HasLanguage reports whether the page is available in the language on any platform.
func (e *PageEntry) HasLanguage(language string) bool {
	return slices.ContainsFunc(e.Targets, func(t Target) bool { return t.Language == language })
}

// Platforms returns the distinct platforms of the page in sorted order.
func (e *PageEntry) Platforms() []string {
	var platforms []string
	for _, t := range e.Targets {
		if !slices.Contains(platforms, t.Platform) {
			platforms = append(platforms, t.Platform)
		}
	}
	return platforms
}

// Clone returns a copy of the entry that shares no memory with e.
func (e *PageEntry) Clone() *PageEntry {
	if e == nil {
		return nil
	}
	return &PageEntry{Targets: slices.Clone(e.Targets)}
}

func compareTargets(a, b Target) int {
	if c := cmp.Compare(a.Platform, b.Platform); c != 0 {
		return c
	}
	return cmp.Compare(a.Language, b.Language)
}

// ShortIndex maps page names to the targets where each page is available.
type ShortIndex map[string]*PageEntry

// Add records that page is available at target.
func (idx ShortIndex) Add(page string, t Target) {
	entry, ok := idx[page]
	if !ok {
		entry = &PageEntry{}
		idx[page] = entry
	}
	entry.Add(t)
}

// Validate returns EINVALID if any page has no entry or no targets.
func (idx ShortIndex) Validate() error {
	for name, entry := range idx {
		if entry == nil || len(entry.Targets) == 0 {
			return Errorf(EINVALID, "page %q has no targets", name)
		}
	}
	return nil
}

// Clone returns a deep copy of the index.
func (idx ShortIndex) Clone() ShortIndex {
	if idx == nil {
		return nil
	}
	out := make(ShortIndex, len(idx))
	for name, entry := range idx {
		out[name] = entry.Clone()
	}
	return out
}

// Names returns all page names in sorted order.
func (idx ShortIndex) Names() []string {
	names := make([]string, 0, len(idx))
	for name := range idx {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NamesFor returns the sorted names of pages available on platform or on
// the common platform.
func (idx ShortIndex) NamesFor(platform string) []string {
	var names []string
	for name, entry := range idx {
		if entry.HasPlatform(platform) || entry.HasPlatform(PlatformCommon) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Location is the resolved storage directory of a page.
type Location struct {
	// Dir is the language-qualified pages directory joined with the
	// platform, e.g. "pages.fr/common". Always slash-separated.
	Dir      string `json:"dir"`
	Platform string `json:"platform"`
	Language string `json:"language"`

	// Substituted is set when the requested platform and the common
	// platform were both unavailable and another platform was chosen.
	Substituted bool `json:"substituted"`
}

// Path returns the slash-separated path of the page file relative to the cache root.
func (l *Location) Path(page string) string {
	return l.Dir + "/" + page + PageExt
}

// PageIndex represents the lookup side of the page cache.
type PageIndex interface {
	// FindPage returns the best location of the page for the preferred
	// platform and language. Returns nil if the page has no usable target.
	FindPage(ctx context.Context, name, platform, language string) (*Location, error)

	// HasPage reports whether the page exists in the currently loaded index.
	// It never loads or builds the index.
	HasPage(name string) bool

	// Entry returns the targets of a page. Returns ENOTFOUND if the page does not exist.
	Entry(ctx context.Context, name string) (*PageEntry, error)

	// Commands returns the sorted names of all pages.
	Commands(ctx context.Context) ([]string, error)

	// CommandsFor returns the sorted names of pages available on the
	// platform or on the common platform.
	CommandsFor(ctx context.Context, platform string) ([]string, error)

	// Rebuild discards the persisted and in-memory index and rebuilds it
	// from the cache directory.
	Rebuild(ctx context.Context) (ShortIndex, error)

	// Clear removes the persisted and in-memory index.
	Clear(ctx context.Context) error

	// UpdatedAt returns when the index was last persisted.
	// Returns ENOTFOUND if no index has been persisted.
	UpdatedAt(ctx context.Context) (time.Time, error)
}
