// Package cas implements the report store that keeps chunk reports between runs.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ReportStore using a flat JSON file keyed by chunk id.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.ChunkReport
}

// NewStore creates a new ReportStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.ChunkReport),
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
		return zerr.With(zerr.Wrap(err, "failed to read report store"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal report store"), "path", s.path)
	}

	return nil
}

// save writes the cache to disk. The caller must hold the write lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal report store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for report store"), "path", dir)
	}

	tmp := s.path + ".tmp"
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write report store"), "path", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace report store"), "path", s.path)
	}

	return nil
}

// Get retrieves the stored report for a chunk id.
func (s *Store) Get(chunkID string) (*domain.ChunkReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.cache[chunkID]
	if !ok {
		return nil, nil
	}
	return &report, nil
}

// Put stores reports and writes the store to disk.
func (s *Store) Put(reports []domain.ChunkReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range reports {
		s.cache[r.ID] = r
	}
	return s.save()
}
