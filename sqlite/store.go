package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/tldr"
)

// Compile-time interface verification.
var _ tldr.ArtifactStore = (*Store)(nil)

// Artifact describes a stored artifact without its body.
type Artifact struct {
	Name        string
	ContentHash string
	UpdatedAt   time.Time
}

// Store implements tldr.ArtifactStore using SQLite. Artifacts are stored as
// JSON, so the same values round-trip through this store and fs.Store.
type Store struct {
	db *DB
}

// NewStore creates a new Store.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// ReadArtifact decodes the named artifact into v.
func (s *Store) ReadArtifact(ctx context.Context, name string, v any) error {
	var body []byte
	err := s.db.db.QueryRowContext(ctx, `
		SELECT body FROM artifacts WHERE name = ?
	`, name).Scan(&body)
	if err == sql.ErrNoRows {
		return tldr.Errorf(tldr.ENOTFOUND, "%s not found", name)
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

// WriteArtifact encodes v and replaces the named artifact. A write whose
// content hash matches the stored one only refreshes updated_at.
func (s *Store) WriteArtifact(ctx context.Context, name string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	_, err = s.db.db.ExecContext(ctx, `
		INSERT INTO artifacts (name, body, content_hash, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			body = CASE WHEN artifacts.content_hash = excluded.content_hash THEN artifacts.body ELSE excluded.body END,
			content_hash = excluded.content_hash,
			updated_at = excluded.updated_at
	`, name, body, hashContent(body), time.Now().UTC().Format(time.RFC3339))
	return err
}

// DeleteArtifact removes the named artifact if it exists.
func (s *Store) DeleteArtifact(ctx context.Context, name string) error {
	_, err := s.db.db.ExecContext(ctx, `DELETE FROM artifacts WHERE name = ?`, name)
	return err
}

// ArtifactUpdatedAt returns when the named artifact was last written.
func (s *Store) ArtifactUpdatedAt(ctx context.Context, name string) (time.Time, error) {
	a, err := s.FindArtifact(ctx, name)
	if err != nil {
		return time.Time{}, err
	}
	return a.UpdatedAt, nil
}

// FindArtifact returns metadata for the named artifact.
// Returns ENOTFOUND if the artifact does not exist.
func (s *Store) FindArtifact(ctx context.Context, name string) (*Artifact, error) {
	a := Artifact{Name: name}
	var updatedAt string
	err := s.db.db.QueryRowContext(ctx, `
		SELECT content_hash, updated_at FROM artifacts WHERE name = ?
	`, name).Scan(&a.ContentHash, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, tldr.Errorf(tldr.ENOTFOUND, "%s not found", name)
	}
	if err != nil {
		return nil, err
	}

	if a.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &a, nil
}
