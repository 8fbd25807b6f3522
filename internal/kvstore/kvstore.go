// Package kvstore is a small file-backed key-value store for app state
// that lives outside the ledger database: the user registry, the session
// record and the settings blob. Each key is one file in the state
// directory.
package kvstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoKey is returned by Get when the key has never been set.
var ErrNoKey = errors.New("key not found")

// scratchKey is a low-value key that Set sacrifices to free space when a
// write fails, before retrying once.
const scratchKey = "temp-data"

// Store reads and writes keys under a single directory.
type Store struct {
	dir string
}

// New creates the state directory if needed and returns a Store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Get returns the value stored under key, or ErrNoKey.
func (s *Store) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%q: %w", key, ErrNoKey)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return data, nil
}

// Set writes the value under key. On failure it deletes the scratch key
// and retries once; a second failure is reported to the caller.
func (s *Store) Set(key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0600); err != nil {
		_ = s.Delete(scratchKey)
		if retryErr := os.WriteFile(s.path(key), value, 0600); retryErr != nil {
			return fmt.Errorf("failed to write %q: %w", key, retryErr)
		}
	}
	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// Has reports whether the key is set.
func (s *Store) Has(key string) bool {
	_, err := os.Stat(s.path(key))
	return err == nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
