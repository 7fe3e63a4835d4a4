// Package sizecache persists artifact size measurements between runs.
package sizecache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/taskrun/internal/core/domain"
	"go.trai.ch/taskrun/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SizeStore = (*Store)(nil)

// Opener opens the size store backed by the file at path.
type Opener func(path string) (ports.SizeStore, error)

// Open is the Opener backed by NewStore.
func Open(path string) (ports.SizeStore, error) {
	return NewStore(path)
}

// Store implements ports.SizeStore using a flat JSON file keyed by artifact path.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.SizeEntry
}

// NewStore creates a new Store backed by the file at the given path.
// A missing or empty file is an empty store.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.SizeEntry),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", s.path)
	}

	return nil
}

func (s *Store) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}

	return nil
}

// Get retrieves the entry recorded for path. Returns nil, nil if not found.
func (s *Store) Get(path string) (*domain.SizeEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.cache[path]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// Replace discards the stored entries, keeps entries instead and saves to disk.
func (s *Store) Replace(entries []domain.SizeEntry) error {
	s.mu.Lock()
	s.cache = make(map[string]domain.SizeEntry, len(entries))
	for _, e := range entries {
		s.cache[e.Path] = e
	}
	s.mu.Unlock()

	return s.save()
}
