// Package config loads the build settings from YAML.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/pharbuild/internal/core/domain"
	"go.trai.ch/pharbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file picked up from the working directory.
const DefaultFileName = "pharbuild.yaml"

const tmpPlaceholder = "{tmp}"

//go:embed defaults.yaml
var defaultsYAML []byte

// Loader implements ports.ConfigLoader.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load decodes the file at path over the embedded defaults. With an empty path,
// pharbuild.yaml in the working directory is used when present. Relative directories are
// resolved against the directory holding the file. Without a patchesDir the bundled
// patches are extracted below the temp dir.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	var file File
	if err := decode(defaultsYAML, "defaults.yaml", &file); err != nil {
		return nil, err
	}

	baseDir, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine working directory")
	}

	if path == "" {
		if _, err := os.Stat(DefaultFileName); err == nil {
			path = DefaultFileName
		}
	}

	if path != "" {
		//nolint:gosec // path is chosen by the operator
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Join(domain.ErrConfigRead, zerr.With(zerr.Wrap(err, "read failed"), "path", path))
		}
		if err := decode(data, path, &file); err != nil {
			return nil, err
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve config path"), "path", path)
		}
		baseDir = filepath.Dir(abs)
		l.Logger.Info("using configuration " + path)
	}

	settings := file.toDomain(baseDir)
	if err := Validate(settings); err != nil {
		return nil, err
	}

	if settings.PatchesDir == "" {
		settings.PatchesDir = bundledPatchesDir()
		if err := extractBundledPatches(settings.PatchesDir); err != nil {
			return nil, err
		}
	}
	if err := checkPatches(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// decode applies a YAML document on top of file. Unknown keys are rejected.
func decode(data []byte, source string, file *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(file); err != nil && !errors.Is(err, io.EOF) {
		return errors.Join(domain.ErrConfigParse, zerr.With(zerr.Wrap(err, "decode failed"), "path", source))
	}
	return nil
}

func (f *File) toDomain(baseDir string) *domain.Settings {
	s := &domain.Settings{
		Repository:       f.Repository,
		BuildDir:         resolveDir(baseDir, f.BuildDir),
		OutputDir:        resolveDir(baseDir, f.OutputDir),
		ArchiveName:      f.ArchiveName,
		PatchesDir:       resolveDir(baseDir, f.PatchesDir),
		SourceCleanup:    f.SourceCleanup,
		AutoloaderSuffix: f.AutoloaderSuffix,
		CleanerIgnore:    f.CleanerIgnore,
		ExtensionBranch:  f.ExtensionBranch,
		ExemptNamespaces: f.ExemptNamespaces,
		ForcedPrefixes:   f.ForcedPrefixes,
		PatchSource: domain.PatchSource{
			Name:    f.PatchSource.Name,
			Version: f.PatchSource.Version,
		},
		Prefixer: domain.ToolCommand{Command: f.Prefixer.Command},
		Packager: domain.ToolCommand{Command: f.Packager.Command},
	}

	for _, r := range f.BuildTools {
		s.BuildTools = append(s.BuildTools, domain.Requirement{Name: r.Name, Constraint: r.Constraint})
	}
	for _, e := range f.Extensions {
		s.Extensions = append(s.Extensions, domain.Extension{Name: e.Name, Source: e.Source, Exemptions: e.Exemptions})
	}
	for _, p := range f.PatchSource.Patches {
		s.PatchSource.Patches = append(s.PatchSource.Patches, domain.Patch{
			Package:     p.Package,
			Description: p.Description,
			File:        p.File,
		})
	}
	return s
}

// resolveDir expands {tmp} and anchors relative paths at baseDir.
func resolveDir(baseDir, dir string) string {
	if dir == "" {
		return ""
	}
	dir = strings.ReplaceAll(dir, tmpPlaceholder, os.TempDir())
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(baseDir, dir)
}
