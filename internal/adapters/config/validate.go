package config

import (
	"errors"
	"regexp"

	"go.trai.ch/pharbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// packageNamePattern is the vendor/package form Composer accepts.
var packageNamePattern = regexp.MustCompile(`^[a-z0-9]([_.-]?[a-z0-9]+)*/[a-z0-9](([_.]|-{1,2})?[a-z0-9]+)*$`)

// Validate checks the merged settings. All problems are reported together.
func Validate(s *domain.Settings) error {
	var errs []error
	fail := func(msg, key string, value any) {
		errs = append(errs, zerr.With(zerr.New(msg), key, value))
	}

	if s.Repository == "" {
		fail("repository must not be empty", "key", "repository")
	}
	if s.BuildDir == "" {
		fail("buildDir must not be empty", "key", "buildDir")
	}
	if s.ArchiveName == "" {
		fail("archiveName must not be empty", "key", "archiveName")
	}
	if s.AutoloaderSuffix == "" {
		fail("autoloaderSuffix must not be empty", "key", "autoloaderSuffix")
	}

	for _, tool := range s.BuildTools {
		if !packageNamePattern.MatchString(tool.Name) {
			fail("invalid build tool package name", "package", tool.Name)
		}
	}

	seen := make(map[string]struct{}, len(s.Extensions))
	for _, ext := range s.Extensions {
		if !packageNamePattern.MatchString(ext.Name) {
			fail("invalid extension package name", "package", ext.Name)
		}
		if _, dup := seen[ext.Name]; dup {
			fail("duplicate extension", "package", ext.Name)
		}
		seen[ext.Name] = struct{}{}
		if ext.Source == "" {
			fail("extension has no source repository", "package", ext.Name)
		}
	}
	if len(s.Extensions) > 0 && s.ExtensionBranch == "" {
		fail("extensionBranch must not be empty", "key", "extensionBranch")
	}

	if !packageNamePattern.MatchString(s.PatchSource.Name) {
		fail("invalid patch source package name", "package", s.PatchSource.Name)
	}
	for _, p := range s.PatchSource.Patches {
		if !packageNamePattern.MatchString(p.Package) {
			fail("invalid patched package name", "package", p.Package)
		}
		if p.File == "" {
			fail("patch has no file", "package", p.Package)
		}
	}

	if len(s.Prefixer.Command) == 0 {
		fail("prefixer command must not be empty", "key", "prefixer.command")
	}
	if len(s.Packager.Command) == 0 {
		fail("packager command must not be empty", "key", "packager.command")
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{domain.ErrConfigInvalid}, errs...)...)
}
