package domain

import (
	"path/filepath"
	"strings"
)

const (
	// VendorDir is the directory Composer installs dependencies into.
	VendorDir = "vendor"
	// ComposerInternalDir is Composer's own directory below vendor/.
	ComposerInternalDir = "composer"
	// BinDir is the executable shim directory below vendor/.
	BinDir = "bin"
	// ManifestFile is the dependency manifest name.
	ManifestFile = "composer.json"
	// LockFile is the dependency lock file name.
	LockFile = "composer.lock"
)

// Settings is the immutable reference data a build runs against. It is loaded once at
// startup and passed by pointer; nothing writes to it after loading.
type Settings struct {
	Repository       string
	BuildDir         string
	OutputDir        string
	ArchiveName      string
	PatchesDir       string
	SourceCleanup    []string
	AutoloaderSuffix string
	CleanerIgnore    []string
	BuildTools       []Requirement
	ExtensionBranch  string
	Extensions       []Extension
	ExemptNamespaces []string
	ForcedPrefixes   []string
	PatchSource      PatchSource
	Prefixer         ToolCommand
	Packager         ToolCommand
}

// Requirement is a package name with a version constraint.
type Requirement struct {
	Name       string
	Constraint string
}

// String renders the requirement the way composer require expects it.
func (r Requirement) String() string {
	if r.Constraint == "" {
		return r.Name
	}
	return r.Name + ":" + r.Constraint
}

// Extension is an entry of the extension registry.
type Extension struct {
	Name string
	// Source is the auxiliary VCS repository the package is pulled from.
	Source string
	// Exemptions are namespace prefixes the prefixer must leave untouched.
	Exemptions []string
}

// RepositoryKey returns the key used to register the extension source with composer config.
func (e Extension) RepositoryKey() string {
	return strings.ReplaceAll(e.Name, "/", "-")
}

// PatchSource describes the synthetic metapackage carrying source patches.
type PatchSource struct {
	Name    string
	Version string
	Patches []Patch
}

// Patch is one patch applied by the composer patches plugin.
type Patch struct {
	Package     string
	Description string
	File        string
}

// ToolCommand is an argv template for an external collaborator. The placeholders
// {buildDir}, {output} and {request} are substituted before execution.
type ToolCommand struct {
	Command []string
}

// ExtensionNames returns the registered extension package names in registry order.
func (s *Settings) ExtensionNames() []string {
	names := make([]string, 0, len(s.Extensions))
	for _, ext := range s.Extensions {
		names = append(names, ext.Name)
	}
	return names
}

// ExtensionExemptions returns the per-extension namespace exemptions handed to the
// prefixer. It is empty when extensions are not bundled.
func (s *Settings) ExtensionExemptions(includeExtensions bool) map[string][]string {
	exemptions := make(map[string][]string, len(s.Extensions))
	if !includeExtensions {
		return exemptions
	}
	for _, ext := range s.Extensions {
		exemptions[ext.Name] = append([]string(nil), ext.Exemptions...)
	}
	return exemptions
}

// ArchivePath returns the output archive location for a resolved version.
func (s *Settings) ArchivePath(version string) string {
	name := strings.ReplaceAll(s.ArchiveName, "{version}", version)
	return filepath.Join(s.OutputDir, name)
}
