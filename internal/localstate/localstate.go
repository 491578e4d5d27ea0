// Package localstate persists small named records for the client-side state
// stores (cart, wishlist, session, orders). It is the durable local storage
// of the storefront: synchronous, single-writer, best-effort on load.
package localstate

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"jewelstore/internal/domain"
)

// Repository stores raw serialized records by key.
type Repository interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

type fileStore struct {
	dir string
}

// NewFileStore returns a Repository backed by one file per key under dir.
// The directory is created on first write.
func NewFileStore(dir string) Repository {
	return &fileStore{dir: dir}
}

func (s *fileStore) path(key string) string {
	// Keys are internal constants, but never trust them as path segments.
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, key)
	return filepath.Join(s.dir, name+".json")
}

func (s *fileStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *fileStore) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), value, 0o644)
}

func (s *fileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
