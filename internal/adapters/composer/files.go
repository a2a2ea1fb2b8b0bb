package composer

import (
	"errors"
	"os"

	"go.trai.ch/pharbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Files implements ports.ManifestStore and ports.LockfileReader on the local filesystem.
type Files struct{}

// NewFiles creates a new Files.
func NewFiles() *Files {
	return &Files{}
}

// ReadManifest parses composer.json at path.
func (f *Files) ReadManifest(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(domain.ErrManifestRead, zerr.With(zerr.Wrap(err, "read failed"), "path", path))
	}
	m, err := domain.ParseManifest(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid manifest"), "path", path)
	}
	return m, nil
}

// WriteManifest replaces composer.json at path with m.
func (f *Files) WriteManifest(path string, m *domain.Manifest) error {
	data, err := m.Marshal()
	if err != nil {
		return errors.Join(domain.ErrManifestWrite, err)
	}
	info, err := os.Stat(path)
	mode := os.FileMode(0o644)
	if err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return errors.Join(domain.ErrManifestWrite, zerr.With(zerr.Wrap(err, "write failed"), "path", path))
	}
	return nil
}

// ReadLockfile parses composer.lock at path.
func (f *Files) ReadLockfile(path string) (*domain.Lockfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(domain.ErrLockfileRead, zerr.With(zerr.Wrap(err, "read failed"), "path", path))
	}
	lock, err := domain.ParseLockfile(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid lock file"), "path", path)
	}
	return lock, nil
}
