package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStore keeps the collection in a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the file at path. The file is not
// touched until the first Load or Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the location of the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the collection from disk. A missing file is created holding an
// empty array.
func (s *FileStore) Load(ctx context.Context) ([]User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(s.path, emptyCollection, 0o644); err != nil {
			return nil, fmt.Errorf("initialise %s: %w", s.path, err)
		}
		return []User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return decode(data), nil
}

// Save writes the collection to a temporary file next to the target and
// renames it into place.
func (s *FileStore) Save(ctx context.Context, users []User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encode(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}

	tmp := filepath.Join(filepath.Dir(s.path), "."+filepath.Base(s.path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
