// Package index builds, caches and queries the short page index.
package index

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/tldr"
)

// Compile-time interface verification.
var _ tldr.PageIndex = (*Service)(nil)

// Service owns the short index of a cache directory. The index is loaded
// lazily from the artifact store and rebuilt from a directory scan when no
// persisted copy is available.
//
// Service is safe for concurrent use within one process. Concurrent
// rebuilds from separate processes are not coordinated.
type Service struct {
	root    string
	scanner tldr.Scanner
	store   tldr.ArtifactStore

	// Strict disables falling back to an arbitrary platform when neither
	// the requested platform nor the common platform has the page.
	Strict bool

	mu  sync.Mutex // serializes loads and rebuilds
	idx atomic.Pointer[tldr.ShortIndex]
}

// NewService creates a Service for the cache directory root.
func NewService(root string, scanner tldr.Scanner, store tldr.ArtifactStore) *Service {
	return &Service{
		root:    root,
		scanner: scanner,
		store:   store,
	}
}

// Get returns a copy of the index, loading the persisted index or
// rebuilding it when none is loaded.
func (s *Service) Get(ctx context.Context) (tldr.ShortIndex, error) {
	idx, err := s.load(ctx)
	return idx.Clone(), err
}

// load returns the shared in-memory index. Callers must not modify it.
// A persisted index that fails to decode or validate is rebuilt.
func (s *Service) load(ctx context.Context) (tldr.ShortIndex, error) {
	if idx := s.idx.Load(); idx != nil {
		return *idx, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have loaded the index while we waited.
	if idx := s.idx.Load(); idx != nil {
		return *idx, nil
	}

	var idx tldr.ShortIndex
	if err := s.store.ReadArtifact(ctx, tldr.ShortIndexFile, &idx); err == nil && idx != nil && idx.Validate() == nil {
		s.idx.Store(&idx)
		return idx, nil
	}

	return s.reset(ctx)
}

// Rebuild removes the persisted and in-memory index and builds a new one
// from the cache directory.
func (s *Service) Rebuild(ctx context.Context) (tldr.ShortIndex, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, err := s.reset(ctx)
	return idx.Clone(), err
}

// reset clears all state then rebuilds. Must be called with mu held.
func (s *Service) reset(ctx context.Context) (tldr.ShortIndex, error) {
	if err := s.clear(ctx); err != nil {
		return nil, err
	}
	return s.rebuild(ctx)
}

// rebuild builds the index from a scan. An empty cache yields an empty
// index that is neither cached nor persisted. Must be called with mu held.
func (s *Service) rebuild(ctx context.Context) (tldr.ShortIndex, error) {
	idx := s.build(ctx)
	if len(idx) == 0 {
		return idx, nil
	}

	s.idx.Store(&idx)
	if err := s.store.WriteArtifact(ctx, tldr.ShortIndexFile, idx); err != nil {
		return idx, err
	}
	return idx, nil
}

// build folds the page files of the cache directory into an index.
// A failed scan is treated as an unpopulated cache.
func (s *Service) build(ctx context.Context) tldr.ShortIndex {
	idx := tldr.ShortIndex{}
	files, err := s.scanner.Scan(ctx, s.root)
	if err != nil {
		return idx
	}
	for _, f := range files {
		if !tldr.IsPage(f) {
			continue
		}
		name, target := tldr.Classify(f)
		idx.Add(name, target)
	}
	return idx
}

// Clear removes the persisted and in-memory index.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clear(ctx)
}

func (s *Service) clear(ctx context.Context) error {
	s.idx.Store(nil)
	return s.store.DeleteArtifact(ctx, tldr.ShortIndexFile)
}

// HasPage reports whether the page is in the currently loaded index.
// It returns false when no index is loaded and never performs I/O.
func (s *Service) HasPage(name string) bool {
	idx := s.idx.Load()
	if idx == nil {
		return false
	}
	_, ok := (*idx)[name]
	return ok
}

// Entry returns the targets of a page.
func (s *Service) Entry(ctx context.Context, name string) (*tldr.PageEntry, error) {
	idx, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	entry, ok := idx[name]
	if !ok {
		return nil, tldr.Errorf(tldr.ENOTFOUND, "page %q not found", name)
	}
	return entry.Clone(), nil
}

// FindPage returns the best location of the page for the preferred
// platform and language, or nil if there is none.
func (s *Service) FindPage(ctx context.Context, name, platform, language string) (*tldr.Location, error) {
	idx, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if s.Strict {
		return tldr.ResolveStrict(idx[name], platform, language), nil
	}
	return tldr.Resolve(idx[name], platform, language), nil
}

// Commands returns the sorted names of all pages.
func (s *Service) Commands(ctx context.Context) ([]string, error) {
	idx, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return idx.Names(), nil
}

// CommandsFor returns the sorted names of pages available on the platform
// or on the common platform.
func (s *Service) CommandsFor(ctx context.Context, platform string) ([]string, error) {
	idx, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return idx.NamesFor(platform), nil
}

// UpdatedAt returns when the index was last persisted.
// Returns ENOTFOUND if no index has been persisted.
func (s *Service) UpdatedAt(ctx context.Context) (time.Time, error) {
	return s.store.ArtifactUpdatedAt(ctx, tldr.ShortIndexFile)
}
