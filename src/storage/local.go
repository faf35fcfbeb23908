package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStore writes blobs into a directory that the router also serves
// under /images.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create upload directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) path(key string) string {
	return filepath.Join(s.dir, filepath.Base(key))
}

func (s *LocalStore) Save(ctx context.Context, name, contentType string, r io.Reader) (Blob, error) {
	if err := ctx.Err(); err != nil {
		return Blob{}, err
	}

	key := filepath.Base(name)
	filePath := s.path(key)

	dst, err := os.Create(filePath)
	if err != nil {
		return Blob{}, fmt.Errorf("could not save file: %w", err)
	}

	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		os.Remove(filePath)
		return Blob{}, fmt.Errorf("could not save file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(filePath)
		return Blob{}, fmt.Errorf("could not save file: %w", err)
	}

	return Blob{Key: key, Location: key}, nil
}

func (s *LocalStore) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not delete file: %w", err)
	}
	return nil
}
