package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Get when nothing is stored under the path.
var ErrNotFound = errors.New("stored object not found")

// Storage persists uploaded gallery images.
type Storage interface {
	// Save writes content under the relative path, replacing any previous object.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get opens the object stored under path. The caller closes the reader.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, path string) error
}
