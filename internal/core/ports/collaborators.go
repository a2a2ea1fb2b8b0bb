package ports

import (
	"context"
	"time"

	"go.trai.ch/pharbuild/internal/core/domain"
)

// PrefixRequest is the input of the symbol prefixer.
type PrefixRequest struct {
	BuildDir     string   `json:"buildDir"`
	Dependencies []string `json:"dependencies"`
	// ForcedPrefixes are namespaces that are always rewritten.
	ForcedPrefixes []string `json:"forcedPrefixes"`
	// ExemptNamespaces are never rewritten.
	ExemptNamespaces []string `json:"exemptNamespaces"`
	// ExtensionExemptions maps an extension package to the namespaces it must keep.
	ExtensionExemptions map[string][]string `json:"extensionExemptions"`
	Command             domain.ToolCommand  `json:"-"`
}

// PackageRequest is the input of the archive packager.
type PackageRequest struct {
	BuildDir     string             `json:"buildDir"`
	Output       string             `json:"output"`
	Dependencies []string           `json:"dependencies"`
	Timestamp    time.Time          `json:"timestamp"`
	Version      string             `json:"version"`
	Command      domain.ToolCommand `json:"-"`
}

// Prefixer rewrites dependency namespaces so the archive can be embedded in a host
// project without class collisions.
//
//go:generate go run go.uber.org/mock/mockgen -source=collaborators.go -destination=mocks/mock_collaborators.go -package=mocks
type Prefixer interface {
	Prefix(ctx context.Context, req PrefixRequest) error
}

// Packager turns the build directory into a single distributable archive.
type Packager interface {
	Package(ctx context.Context, req PackageRequest) error
}
