package fs

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/pharbuild/internal/core/domain"
	"go.trai.ch/pharbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

var _ ports.Workspace = (*Workspace)(nil)

// Workspace implements ports.Workspace on the local filesystem.
type Workspace struct{}

// NewWorkspace creates a new Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// Reset removes dir and everything below it.
func (w *Workspace) Reset(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return errors.Join(domain.ErrWorkspaceReset, zerr.With(zerr.Wrap(err, "remove failed"), "path", dir))
	}
	return nil
}

// RemovePaths deletes each relative path below root. Paths leaving root are rejected.
func (w *Workspace) RemovePaths(root string, rel []string) error {
	for _, r := range rel {
		full, err := resolve(root, r)
		if err != nil {
			return errors.Join(domain.ErrPathRemove, err)
		}
		if err := os.RemoveAll(full); err != nil {
			return errors.Join(domain.ErrPathRemove, zerr.With(zerr.Wrap(err, "remove failed"), "path", full))
		}
	}
	return nil
}

// ListVendorDirs returns the package directories (vendor/<vendor>/<package>) below
// vendorDir, plus the bin and composer directories when present. Vendor namespace
// directories themselves are never listed.
func (w *Workspace) ListVendorDirs(vendorDir string) ([]string, error) {
	top, err := os.ReadDir(vendorDir)
	if err != nil {
		return nil, errors.Join(domain.ErrVendorList, zerr.With(zerr.Wrap(err, "read failed"), "path", vendorDir))
	}

	var dirs []string
	for _, entry := range top {
		if !entry.IsDir() {
			continue
		}
		if entry.Name() == domain.BinDir || entry.Name() == domain.ComposerInternalDir {
			dirs = append(dirs, entry.Name())
		}

		children, err := os.ReadDir(filepath.Join(vendorDir, entry.Name()))
		if err != nil {
			return nil, errors.Join(domain.ErrVendorList,
				zerr.With(zerr.Wrap(err, "read failed"), "path", filepath.Join(vendorDir, entry.Name())))
		}
		for _, child := range children {
			if child.IsDir() {
				dirs = append(dirs, entry.Name()+"/"+child.Name())
			}
		}
	}
	return dirs, nil
}

// EnsurePlaceholders creates the missing placeholders below vendorDir. Existing paths
// are left untouched whatever their kind.
func (w *Workspace) EnsurePlaceholders(vendorDir string, placeholders []domain.Placeholder) (int, error) {
	created := 0
	for _, p := range placeholders {
		full, err := resolve(vendorDir, p.Path)
		if err != nil {
			return created, errors.Join(domain.ErrPlaceholderCreate, err)
		}

		if _, err := os.Lstat(full); err == nil {
			continue
		} else if !errors.Is(err, os.ErrNotExist) {
			return created, placeholderError(err, full, p.Kind)
		}

		if err := createPlaceholder(full, p.Kind); err != nil {
			return created, placeholderError(err, full, p.Kind)
		}
		created++
	}
	return created, nil
}

func createPlaceholder(full string, kind domain.PlaceholderKind) error {
	if kind == domain.PlaceholderDir {
		return os.MkdirAll(full, dirPerm)
	}
	if err := os.MkdirAll(filepath.Dir(full), dirPerm); err != nil {
		return err
	}
	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm) //nolint:gosec // path is checked by resolve
	if err != nil {
		return err
	}
	if _, err := f.WriteString(domain.StubContent); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func placeholderError(err error, full string, kind domain.PlaceholderKind) error {
	return errors.Join(domain.ErrPlaceholderCreate,
		zerr.With(zerr.With(zerr.Wrap(err, "create failed"), "path", full), "kind", kind.String()))
}

// resolve joins a slash separated relative path to root and rejects paths escaping it.
func resolve(root, rel string) (string, error) {
	local := filepath.FromSlash(rel)
	if !filepath.IsLocal(local) {
		return "", zerr.With(zerr.New("path escapes its root"), "path", rel)
	}
	return filepath.Join(root, local), nil
}
