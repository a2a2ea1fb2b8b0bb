package ports

import "go.trai.ch/pharbuild/internal/core/domain"

// Workspace performs the filesystem operations of a build on the build directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// Reset removes dir recursively. A missing dir is not an error.
	Reset(dir string) error
	// RemovePaths removes each slash separated path below root. Missing paths are ignored.
	RemovePaths(root string, rel []string) error
	// ListVendorDirs returns the package directories (<vendor>/<package>) below vendorDir,
	// plus bin and composer when present, as slash separated relative paths.
	ListVendorDirs(vendorDir string) ([]string, error)
	// EnsurePlaceholders creates every placeholder below vendorDir that does not exist yet.
	// It returns how many were created.
	EnsurePlaceholders(vendorDir string, placeholders []domain.Placeholder) (int, error)
}
