package storage

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("storage: file not found")

type FileStorage interface {
	// Upload writes the content and returns the stored path.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download returns ErrNotFound when the path does not exist.
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete is a no-op for missing files.
	Delete(ctx context.Context, path string) error
}
