package tldr

import (
	"context"
	"time"
)

// Scanner lists the files of a directory tree.
type Scanner interface {
	// Scan returns the slash-separated paths, relative to root, of every
	// regular file under root. Any failure aborts the whole scan.
	Scan(ctx context.Context, root string) ([]string, error)
}

// ContentReader reads page text from the cache.
type ContentReader interface {
	// ReadText returns the content of a slash-separated path relative to the cache root.
	ReadText(ctx context.Context, path string) (string, error)
}

// ArtifactStore persists derived artifacts such as the short index and
// the search corpus.
type ArtifactStore interface {
	// ReadArtifact decodes the named artifact into v.
	// Returns ENOTFOUND if the artifact does not exist.
	ReadArtifact(ctx context.Context, name string, v any) error

	// WriteArtifact replaces the named artifact with the encoding of v.
	WriteArtifact(ctx context.Context, name string, v any) error

	// DeleteArtifact removes the named artifact. Deleting a missing
	// artifact is not an error.
	DeleteArtifact(ctx context.Context, name string) error

	// ArtifactUpdatedAt returns when the named artifact was last written.
	// Returns ENOTFOUND if the artifact does not exist.
	ArtifactUpdatedAt(ctx context.Context, name string) (time.Time, error)
}
