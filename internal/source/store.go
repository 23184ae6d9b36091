// Package source reads and rewrites files under a root directory,
// serializing read-modify-write cycles per file so that two concurrent
// updates to the same file cannot lose each other's change.
package source

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store is a file-content provider confined to a root directory.
type Store struct {
	root string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving root %s: %w", dir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", abs)
	}

	return &Store{root: abs, locks: make(map[string]*sync.Mutex)}, nil
}

// Root returns the store's absolute root directory.
func (s *Store) Root() string {
	return s.root
}

// Resolve maps a slash-separated relative path to an absolute path inside
// the root, rejecting anything that escapes it.
func (s *Store) Resolve(path string) (string, error) {
	abs := filepath.Join(s.root, filepath.FromSlash(path))

	rel, err := filepath.Rel(s.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s escapes root", path)
	}

	return abs, nil
}

// Read returns the current content of path.
func (s *Store) Read(path string) ([]byte, error) {
	abs, err := s.Resolve(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(abs)
}

// Update runs transform over the current content of path and writes the
// result back, keeping the file's mode. The whole cycle holds a per-file
// lock, so overlapping updates to one file run one at a time against fresh
// content. It reports whether the file actually changed; an unchanged
// result skips the write.
func (s *Store) Update(path string, transform func([]byte) ([]byte, error)) (bool, error) {
	abs, err := s.Resolve(path)
	if err != nil {
		return false, err
	}

	lock := s.fileLock(abs)
	lock.Lock()
	defer lock.Unlock()

	old, err := os.ReadFile(abs)
	if err != nil {
		return false, err
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(abs); err == nil {
		mode = info.Mode()
	}

	updated, err := transform(old)
	if err != nil {
		return false, err
	}
	if bytes.Equal(old, updated) {
		return false, nil
	}

	if err := os.WriteFile(abs, updated, mode); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}

	return true, nil
}

func (s *Store) fileLock(abs string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[abs]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[abs] = lock
	}
	return lock
}
