// Package filesnapshot implements the key-value persistence
// collaborator on the local filesystem, for deployments without a
// database. Each key maps to one JSON file under the configured
// directory; writes go through a temp file and rename so a crashed
// write never leaves a truncated snapshot.
package filesnapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrInvalidKey возвращается для ключа, непригодного как имя файла
var ErrInvalidKey = errors.New("filesnapshot: invalid key")

// Store file-backed persistence collaborator
type Store struct {
	dir string
}

// New creates the store, ensuring the directory exists
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filesnapshot: failed to create dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Save persists the value under the key atomically
func (s *Store) Save(_ context.Context, key string, data []byte) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("filesnapshot: failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("filesnapshot: failed to replace %s: %w", path, err)
	}
	return nil
}

// Load returns the stored value for the key; found=false when absent
func (s *Store) Load(_ context.Context, key string) ([]byte, bool, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("filesnapshot: failed to read %s: %w", path, err)
	}
	return data, true, nil
}

func (s *Store) pathFor(key string) (string, error) {
	if key == "" || key != filepath.Base(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
