package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/tldr"
	"github.com/fwojciec/tldr/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Artifact Storage
// The store keeps derived artifacts as JSON files next to the pages

func TestStore_WriteThenRead(t *testing.T) {
	t.Parallel()

	// Given a store
	dir := t.TempDir()
	store := fs.NewStore(dir)
	ctx := context.Background()
	idx := tldr.ShortIndex{}
	idx.Add("cp", tldr.Target{Platform: "common", Language: "en"})

	// When I write and read back an index
	require.NoError(t, store.WriteArtifact(ctx, tldr.ShortIndexFile, idx))
	var got tldr.ShortIndex
	require.NoError(t, store.ReadArtifact(ctx, tldr.ShortIndexFile, &got))

	// Then the contents survive the round trip
	assert.Equal(t, idx, got)

	// And the file uses the documented schema
	b, err := os.ReadFile(filepath.Join(dir, tldr.ShortIndexFile))
	require.NoError(t, err)
	assert.JSONEq(t, `{"cp":{"targets":[{"platform":"common","language":"en"}]}}`, string(b))
}

func TestStore_WriteLeavesNoTemporaryFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := fs.NewStore(dir)

	require.NoError(t, store.WriteArtifact(context.Background(), tldr.CorpusFile, map[string]int{"a": 1}))
	require.NoError(t, store.WriteArtifact(context.Background(), tldr.CorpusFile, map[string]int{"a": 2}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, tldr.CorpusFile, entries[0].Name())
}

func TestStore_ReadMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	var v map[string]any
	err := fs.NewStore(t.TempDir()).ReadArtifact(context.Background(), tldr.ShortIndexFile, &v)

	require.Error(t, err)
	assert.Equal(t, tldr.ENOTFOUND, tldr.ErrorCode(err))
}

func TestStore_ReadCorruptReturnsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, tldr.ShortIndexFile), []byte("{not json"), 0644))

	var v tldr.ShortIndex
	err := fs.NewStore(dir).ReadArtifact(context.Background(), tldr.ShortIndexFile, &v)

	require.Error(t, err)
	assert.Equal(t, tldr.EINTERNAL, tldr.ErrorCode(err))
}

func TestStore_DeleteArtifact(t *testing.T) {
	t.Parallel()

	t.Run("removes existing artifact", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewStore(dir)
		ctx := context.Background()
		require.NoError(t, store.WriteArtifact(ctx, tldr.ShortIndexFile, tldr.ShortIndex{}))

		require.NoError(t, store.DeleteArtifact(ctx, tldr.ShortIndexFile))

		_, err := os.Stat(filepath.Join(dir, tldr.ShortIndexFile))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("missing artifact is not an error", func(t *testing.T) {
		t.Parallel()

		err := fs.NewStore(t.TempDir()).DeleteArtifact(context.Background(), tldr.ShortIndexFile)

		require.NoError(t, err)
	})
}

func TestStore_ArtifactUpdatedAt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := fs.NewStore(dir)
	ctx := context.Background()

	_, err := store.ArtifactUpdatedAt(ctx, tldr.CorpusFile)
	assert.Equal(t, tldr.ENOTFOUND, tldr.ErrorCode(err))

	require.NoError(t, store.WriteArtifact(ctx, tldr.CorpusFile, map[string]int{}))
	old := time.Now().Add(-48 * time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(filepath.Join(dir, tldr.CorpusFile), old, old))

	updated, err := store.ArtifactUpdatedAt(ctx, tldr.CorpusFile)

	require.NoError(t, err)
	assert.True(t, updated.Equal(old), "want %v, got %v", old, updated)
}
