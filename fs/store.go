package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/tldr"
	"github.com/google/uuid"
)

// Ensure Store implements tldr.ArtifactStore at compile time.
var _ tldr.ArtifactStore = (*Store)(nil)

// Store persists artifacts as JSON files in a directory.
// Writes go to a temporary file which is then renamed over the artifact,
// so readers never observe a partially written file.
type Store struct {
	dir string
}

// NewStore creates a new Store that keeps artifacts in dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// ReadArtifact decodes the named JSON file into v.
func (s *Store) ReadArtifact(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := os.ReadFile(s.path(name))
	if errors.Is(err, iofs.ErrNotExist) {
		return tldr.Errorf(tldr.ENOTFOUND, "%s not found", name)
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

// WriteArtifact encodes v and atomically replaces the named JSON file.
func (s *Store) WriteArtifact(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	tmp := s.path(name + "." + uuid.New().String() + ".tmp")
	if err := os.WriteFile(tmp, b, 0644); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, s.path(name)); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// DeleteArtifact removes the named JSON file if it exists.
func (s *Store) DeleteArtifact(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.Remove(s.path(name))
	if err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return err
	}
	return nil
}

// ArtifactUpdatedAt returns the modification time of the named JSON file.
func (s *Store) ArtifactUpdatedAt(ctx context.Context, name string) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	info, err := os.Stat(s.path(name))
	if errors.Is(err, iofs.ErrNotExist) {
		return time.Time{}, tldr.Errorf(tldr.ENOTFOUND, "%s not found", name)
	}
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
