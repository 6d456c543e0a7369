package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/tldr/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file and its parent directories under root.
func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestScanner_Scan(t *testing.T) {
	t.Parallel()

	t.Run("lists nested files relative to root", func(t *testing.T) {
		t.Parallel()

		// Given a cache tree with pages and an index file
		root := t.TempDir()
		writeFile(t, root, "pages/common/cp.md", "# cp")
		writeFile(t, root, "pages.fr/linux/dd.md", "# dd")
		writeFile(t, root, "shortIndex.json", "{}")

		// When I scan it
		files, err := fs.NewScanner().Scan(context.Background(), root)

		// Then every regular file is listed with a slash-separated relative path
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			"pages/common/cp.md",
			"pages.fr/linux/dd.md",
			"shortIndex.json",
		}, files)
	})

	t.Run("returns empty list for empty directory", func(t *testing.T) {
		t.Parallel()

		files, err := fs.NewScanner().Scan(context.Background(), t.TempDir())

		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("fails for missing root", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewScanner().Scan(context.Background(), filepath.Join(t.TempDir(), "missing"))

		require.Error(t, err)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "pages/common/cp.md", "# cp")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewScanner().Scan(ctx, root)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestReader_ReadText(t *testing.T) {
	t.Parallel()

	t.Run("reads file relative to root", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "pages/common/cp.md", "# cp\n\n> Copy files.")

		text, err := fs.NewReader(root).ReadText(context.Background(), "pages/common/cp.md")

		require.NoError(t, err)
		assert.Equal(t, "# cp\n\n> Copy files.", text)
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewReader(t.TempDir()).ReadText(context.Background(), "pages/common/nope.md")

		require.Error(t, err)
	})
}
