package ports

import (
	"context"
	"io"
)

// PhotoStorage stores and serves product photo files by their stored name.
// Names are unique per upload, so storing never overwrites another photo.
type PhotoStorage interface {
	// Store writes the file content under the given name.
	Store(ctx context.Context, name string, content io.Reader) error

	// Retrieve opens the stored file for reading. The caller closes it.
	Retrieve(ctx context.Context, name string) (io.ReadCloser, error)

	// Remove deletes the stored file.
	Remove(ctx context.Context, name string) error
}
