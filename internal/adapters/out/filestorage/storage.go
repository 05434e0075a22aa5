// Package filestorage stores product photo files on the local file system,
// one file per stored name inside a single directory.
package filestorage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// LocalPhotoStorage implements ports.PhotoStorage on a local directory. The
// directory is created on first write.
type LocalPhotoStorage struct {
	dir string
}

// NewLocalPhotoStorage creates a photo storage rooted at dir.
func NewLocalPhotoStorage(dir string) *LocalPhotoStorage {
	return &LocalPhotoStorage{dir: dir}
}

// Store writes the file content under the given name.
func (s *LocalPhotoStorage) Store(_ context.Context, name string, content io.Reader) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	file, err := os.Create(s.path(name))
	if err != nil {
		return err
	}
	if _, err = io.Copy(file, content); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Retrieve opens the stored file for reading.
func (s *LocalPhotoStorage) Retrieve(_ context.Context, name string) (io.ReadCloser, error) {
	return os.Open(s.path(name))
}

// Remove deletes the stored file.
func (s *LocalPhotoStorage) Remove(_ context.Context, name string) error {
	return os.Remove(s.path(name))
}

// path confines stored files to the storage directory regardless of the
// characters in name.
func (s *LocalPhotoStorage) path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}
