package fsxlocal

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalFileSystem stores blobs under a root directory on local disk and
// serves them from baseURL.
type LocalFileSystem struct {
	root    string
	baseURL string
}

// NewLocalFileSystem creates a disk-backed file system rooted at root. Stored
// paths resolve publicly to "<baseURL>/<path>".
func NewLocalFileSystem(root, baseURL string) *LocalFileSystem {
	return &LocalFileSystem{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Root returns the on-disk root directory, for static serving.
func (l *LocalFileSystem) Root() string {
	return l.root
}

func (l *LocalFileSystem) WriteFile(_ context.Context, path string, data []byte) error {
	full := filepath.Join(l.root, filepath.FromSlash(path))

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}

func (l *LocalFileSystem) ReadFileStream(_ context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(l.root, filepath.FromSlash(path)))
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	return f, nil
}

func (l *LocalFileSystem) DeleteFile(_ context.Context, path string) error {
	if err := os.Remove(filepath.Join(l.root, filepath.FromSlash(path))); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", path, err)
	}
	return nil
}

func (l *LocalFileSystem) Join(elem ...string) string {
	return strings.Join(elem, "/")
}

func (l *LocalFileSystem) PublicURL(path string) string {
	return l.baseURL + "/" + strings.TrimLeft(path, "/")
}
