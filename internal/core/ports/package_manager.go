package ports

import (
	"context"

	"go.trai.ch/pharbuild/internal/core/domain"
)

// UpdateMode selects how a dependency resolution pass runs.
type UpdateMode int

const (
	// UpdateProductionOnly resolves and installs without development dependencies.
	UpdateProductionOnly UpdateMode = iota
	// UpdateFinal installs everything with suggestions off and an authoritative classmap.
	UpdateFinal
)

// PackageManager drives the external dependency manager inside a project directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageManager interface {
	// Update resolves and installs dependencies.
	Update(ctx context.Context, dir string, mode UpdateMode) error
	// InstalledPackages lists the names of every installed package.
	InstalledPackages(ctx context.Context, dir string) (domain.DependencySet, error)
	// Require declares requirements without resolving them.
	Require(ctx context.Context, dir string, reqs []domain.Requirement) error
	// AddRepository registers a custom package source under key.
	AddRepository(ctx context.Context, dir, key, repoType, url string) error
	// DumpAutoload regenerates the optimized, authoritative autoload index.
	DumpAutoload(ctx context.Context, dir string) error
}

// ManifestStore reads and writes the dependency manifest.
type ManifestStore interface {
	// ReadManifest parses the manifest at path.
	ReadManifest(path string) (*domain.Manifest, error)
	// WriteManifest serializes m to path, replacing the previous content.
	WriteManifest(path string, m *domain.Manifest) error
}

// LockfileReader reads the dependency manager's lock file.
type LockfileReader interface {
	// ReadLockfile parses the lock file at path.
	ReadLockfile(path string) (*domain.Lockfile, error)
}
