// Package search builds the TF-IDF search corpus of a page cache and ranks
// pages against free-text queries.
package search

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/tldr"
	"golang.org/x/sync/errgroup"
)

// Compile-time interface verification.
var _ tldr.SearchService = (*Service)(nil)

// DefaultConcurrency is the number of pages read in parallel during a build.
const DefaultConcurrency = 8

// Service builds, persists and queries the search corpus.
// It is safe for concurrent use within one process.
type Service struct {
	Root      string
	Scanner   tldr.Scanner
	Reader    tldr.ContentReader
	Store     tldr.ArtifactStore
	Tokenizer tldr.Tokenizer

	// Pages, if set, is used to annotate results with page targets.
	Pages tldr.PageIndex

	// Concurrency limits parallel page reads. Defaults to DefaultConcurrency.
	Concurrency int

	mu     sync.Mutex // serializes builds and loads
	corpus atomic.Pointer[tldr.Corpus]
}

// Build reads every page under the cache root and replaces the persisted
// and in-memory corpus. Any scan or read failure aborts the build without
// persisting anything.
func (s *Service) Build(ctx context.Context) (*tldr.Corpus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	files, err := s.Scanner.Scan(ctx, s.Root)
	if err != nil {
		return nil, fmt.Errorf("scan pages: %w", err)
	}

	var pages []string
	for _, f := range files {
		if tldr.IsPage(f) {
			pages = append(pages, f)
		}
	}

	docs, err := s.readAll(ctx, pages)
	if err != nil {
		return nil, err
	}

	corpus := tldr.NewCorpus(docs, s.Tokenizer)
	s.corpus.Store(corpus)
	if err := s.Store.WriteArtifact(ctx, tldr.CorpusFile, corpus); err != nil {
		return corpus, fmt.Errorf("write corpus: %w", err)
	}
	return corpus, nil
}

// readAll reads pages concurrently. Documents are returned in the order
// of paths regardless of completion order.
func (s *Service) readAll(ctx context.Context, paths []string) ([]tldr.Document, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	docs := make([]tldr.Document, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, path := range paths {
		g.Go(func() error {
			text, err := s.Reader.ReadText(gctx, path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			docs[i] = tldr.Document{Path: path, Text: text}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// Corpus returns the in-memory corpus, loading the persisted corpus when
// none is loaded. Returns ENOTFOUND if no corpus has been built.
func (s *Service) Corpus(ctx context.Context) (*tldr.Corpus, error) {
	if c := s.corpus.Load(); c != nil {
		return c, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c := s.corpus.Load(); c != nil {
		return c, nil
	}

	var c tldr.Corpus
	if err := s.Store.ReadArtifact(ctx, tldr.CorpusFile, &c); err != nil {
		if tldr.ErrorCode(err) == tldr.ENOTFOUND {
			return nil, tldr.Errorf(tldr.ENOTFOUND, "search corpus not found, build it first")
		}
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	s.corpus.Store(&c)
	return &c, nil
}

// Search ranks pages against the query and returns at most
// tldr.SearchLimit results.
func (s *Service) Search(ctx context.Context, query string) ([]tldr.SearchResult, error) {
	corpus, err := s.Corpus(ctx)
	if err != nil {
		return nil, err
	}

	results := corpus.Rank(s.Tokenizer.Tokenize(query), tldr.SearchLimit)

	if s.Pages != nil {
		for i := range results {
			entry, err := s.Pages.Entry(ctx, results[i].Page)
			if tldr.ErrorCode(err) == tldr.ENOTFOUND {
				continue
			} else if err != nil {
				return nil, err
			}
			results[i].Targets = entry.Targets
		}
	}
	return results, nil
}

// Clear removes the persisted and in-memory corpus.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.corpus.Store(nil)
	return s.Store.DeleteArtifact(ctx, tldr.CorpusFile)
}
