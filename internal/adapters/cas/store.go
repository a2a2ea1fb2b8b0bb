// Package cas stores the provenance records of produced archives.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/pharbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.BuildRecordStore using a flat JSON file keyed by version.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.BuildRecord
}

// NewStore creates a new Store backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.BuildRecord),
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
		return errors.Join(domain.ErrStoreReadFailed, zerr.With(zerr.Wrap(err, "read failed"), "path", s.path))
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return errors.Join(domain.ErrStoreUnmarshalFailed, zerr.With(zerr.Wrap(err, "decode failed"), "path", s.path))
	}

	return nil
}

// save writes the cache through a temporary file so a crash never leaves a truncated store.
func (s *Store) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return errors.Join(domain.ErrStoreMarshalFailed, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, zerr.With(zerr.Wrap(err, "mkdir failed"), "path", dir))
	}

	tmp, err := os.CreateTemp(dir, ".builds-*.json")
	if err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, zerr.With(zerr.Wrap(err, "create failed"), "path", dir))
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.Join(domain.ErrStoreWriteFailed, zerr.With(zerr.Wrap(err, "write failed"), "path", tmpPath))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Join(domain.ErrStoreWriteFailed, zerr.With(zerr.Wrap(err, "close failed"), "path", tmpPath))
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Join(domain.ErrStoreWriteFailed, zerr.With(zerr.Wrap(err, "rename failed"), "path", s.path))
	}

	return nil
}

// Get retrieves the record for a version.
func (s *Store) Get(version string) (*domain.BuildRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[version]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record.
func (s *Store) Put(record domain.BuildRecord) error {
	s.mu.Lock()
	s.cache[record.Version] = record
	s.mu.Unlock()

	return s.save()
}

// List returns every record, versions first in ascending order, then other refs.
func (s *Store) List() ([]domain.BuildRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.BuildRecord, 0, len(s.cache))
	for _, r := range s.cache {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		return versionLess(records[i].Version, records[j].Version)
	})
	return records, nil
}

// versionLess orders semantic versions numerically and falls back to string order for
// refs that are not versions, such as branch names.
func versionLess(a, b string) bool {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	switch {
	case errA == nil && errB == nil:
		return va.LessThan(vb)
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}
