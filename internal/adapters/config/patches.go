package config

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"go.trai.ch/pharbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

//go:embed patches/*.patch
var bundledPatches embed.FS

// bundledPatchesDir is where the bundled patches are extracted.
func bundledPatchesDir() string {
	return filepath.Join(os.TempDir(), "pharbuild", "patches")
}

// extractBundledPatches writes every bundled patch file into dir, replacing older copies.
func extractBundledPatches(dir string) error {
	entries, err := fs.ReadDir(bundledPatches, "patches")
	if err != nil {
		return errors.Join(domain.ErrPatchExtract, zerr.Wrap(err, "read bundled patches"))
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Join(domain.ErrPatchExtract, zerr.With(zerr.Wrap(err, "create patches dir"), "path", dir))
	}

	for _, e := range entries {
		data, err := bundledPatches.ReadFile(path.Join("patches", e.Name()))
		if err != nil {
			return errors.Join(domain.ErrPatchExtract, zerr.With(zerr.Wrap(err, "read bundled patch"), "file", e.Name()))
		}
		target := filepath.Join(dir, e.Name())
		if err := os.WriteFile(target, data, 0o600); err != nil {
			return errors.Join(domain.ErrPatchExtract, zerr.With(zerr.Wrap(err, "write patch"), "path", target))
		}
	}
	return nil
}

// checkPatches fails when a patch listed in the patch source is missing from PatchesDir.
func checkPatches(s *domain.Settings) error {
	var errs []error
	for _, p := range s.PatchSource.Patches {
		target := filepath.Join(s.PatchesDir, p.File)
		info, err := os.Stat(target)
		if err == nil && !info.IsDir() {
			continue
		}
		detail := zerr.With(zerr.New("patch file missing"), "path", target)
		detail = zerr.With(detail, "package", p.Package)
		errs = append(errs, detail)
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(domain.ErrPatchNotFound, errors.Join(errs...))
}
