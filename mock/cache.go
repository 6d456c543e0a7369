package mock

import (
	"context"
	"time"

	"github.com/fwojciec/tldr"
)

var _ tldr.Scanner = (*Scanner)(nil)

// Scanner is a mock implementation of tldr.Scanner.
type Scanner struct {
	ScanFn func(ctx context.Context, root string) ([]string, error)
}

func (s *Scanner) Scan(ctx context.Context, root string) ([]string, error) {
	return s.ScanFn(ctx, root)
}

var _ tldr.ContentReader = (*ContentReader)(nil)

// ContentReader is a mock implementation of tldr.ContentReader.
type ContentReader struct {
	ReadTextFn func(ctx context.Context, path string) (string, error)
}

func (r *ContentReader) ReadText(ctx context.Context, path string) (string, error) {
	return r.ReadTextFn(ctx, path)
}

var _ tldr.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore is a mock implementation of tldr.ArtifactStore.
type ArtifactStore struct {
	ReadArtifactFn   func(ctx context.Context, name string, v any) error
	WriteArtifactFn  func(ctx context.Context, name string, v any) error
	DeleteArtifactFn func(ctx context.Context, name string) error

	ArtifactUpdatedAtFn func(ctx context.Context, name string) (time.Time, error)
}

func (s *ArtifactStore) ReadArtifact(ctx context.Context, name string, v any) error {
	return s.ReadArtifactFn(ctx, name, v)
}

func (s *ArtifactStore) WriteArtifact(ctx context.Context, name string, v any) error {
	return s.WriteArtifactFn(ctx, name, v)
}

func (s *ArtifactStore) DeleteArtifact(ctx context.Context, name string) error {
	return s.DeleteArtifactFn(ctx, name)
}

func (s *ArtifactStore) ArtifactUpdatedAt(ctx context.Context, name string) (time.Time, error) {
	return s.ArtifactUpdatedAtFn(ctx, name)
}
