package mock

import (
	"context"

	"github.com/fwojciec/tldr"
)

var _ tldr.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of tldr.SearchService.
type SearchService struct {
	BuildFn  func(ctx context.Context) (*tldr.Corpus, error)
	SearchFn func(ctx context.Context, query string) ([]tldr.SearchResult, error)
	ClearFn  func(ctx context.Context) error
}

func (s *SearchService) Build(ctx context.Context) (*tldr.Corpus, error) {
	return s.BuildFn(ctx)
}

func (s *SearchService) Search(ctx context.Context, query string) ([]tldr.SearchResult, error) {
	return s.SearchFn(ctx, query)
}

func (s *SearchService) Clear(ctx context.Context) error {
	return s.ClearFn(ctx)
}

var _ tldr.Tokenizer = (*Tokenizer)(nil)

// Tokenizer is a mock implementation of tldr.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(text string) []string
}

func (t *Tokenizer) Tokenize(text string) []string {
	return t.TokenizeFn(text)
}
