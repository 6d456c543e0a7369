// Package fs provides file-based access to the page cache.
package fs

import (
	"context"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/tldr"
)

// Ensure Scanner implements tldr.Scanner at compile time.
var _ tldr.Scanner = (*Scanner)(nil)

// Scanner lists files by walking the file system.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan returns every regular file under root as a slash-separated path
// relative to root. Any unreadable entry fails the whole scan.
func (s *Scanner) Scan(ctx context.Context, root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Ensure Reader implements tldr.ContentReader at compile time.
var _ tldr.ContentReader = (*Reader)(nil)

// Reader reads page text relative to a cache root.
type Reader struct {
	root string
}

// NewReader creates a new Reader rooted at the cache directory.
func NewReader(root string) *Reader {
	return &Reader{root: root}
}

// ReadText returns the content of a slash-separated path relative to the root.
func (r *Reader) ReadText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(filepath.Join(r.root, filepath.FromSlash(path)))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
