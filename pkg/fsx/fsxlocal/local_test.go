package fsxlocal

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCreatesMissingDirectories(t *testing.T) {
	root := t.TempDir()
	fs := NewLocalFileSystem(filepath.Join(root, "uploads"), "http://localhost:4000")

	err := fs.WriteFile(context.Background(), "cv-abc.pdf", []byte("pdf-bytes"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "uploads", "cv-abc.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf-bytes"), data)
}

func TestReadFileStream(t *testing.T) {
	fs := NewLocalFileSystem(t.TempDir(), "http://localhost:4000")
	require.NoError(t, fs.WriteFile(context.Background(), "cover-1.txt", []byte("hello")))

	r, err := fs.ReadFileStream(context.Background(), "cover-1.txt")
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestDeleteFile(t *testing.T) {
	fs := NewLocalFileSystem(t.TempDir(), "http://localhost:4000")
	require.NoError(t, fs.WriteFile(context.Background(), "cv-1.pdf", []byte("x")))

	require.NoError(t, fs.DeleteFile(context.Background(), "cv-1.pdf"))
	_, err := fs.ReadFileStream(context.Background(), "cv-1.pdf")
	assert.Error(t, err)
}

func TestPublicURL(t *testing.T) {
	fs := NewLocalFileSystem(t.TempDir(), "http://localhost:4000/")
	assert.Equal(t, "http://localhost:4000/uploads/cv-1.pdf", fs.PublicURL("uploads/cv-1.pdf"))
}

func TestWriteFailurePropagates(t *testing.T) {
	root := t.TempDir()
	// a file where the root directory should be makes MkdirAll fail
	blocked := filepath.Join(root, "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

	fs := NewLocalFileSystem(blocked, "http://localhost:4000")
	err := fs.WriteFile(context.Background(), "sub/cv.pdf", []byte("y"))
	assert.Error(t, err)
}
