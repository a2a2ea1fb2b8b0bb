package ports

import "go.trai.ch/pharbuild/internal/core/domain"

// ConfigLoader loads the build settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load merges the file at path over the embedded defaults. An empty path returns
	// the defaults.
	Load(path string) (*domain.Settings, error)
}
