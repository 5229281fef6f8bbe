// Package fsx abstracts durable blob storage behind a small file-system
// interface with local-disk and S3 implementations.
package fsx

import (
	"context"
	"io"
)

// FileSystem stores and serves uploaded blobs. Paths are storage-relative;
// PublicURL maps a stored path to the externally addressable URL clients use.
type FileSystem interface {
	// WriteFile persists data at path, creating parent directories as
	// needed. A failed write is reported, never silently dropped.
	WriteFile(ctx context.Context, path string, data []byte) error

	// ReadFileStream opens the stored blob for reading.
	ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error)

	// DeleteFile removes a stored blob.
	DeleteFile(ctx context.Context, path string) error

	// Join builds a storage path from segments.
	Join(elem ...string) string

	// PublicURL returns the URL a client can fetch the blob from.
	PublicURL(path string) string
}
