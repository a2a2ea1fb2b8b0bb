package compiler

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/pharbuild/internal/core/domain"
	"go.trai.ch/pharbuild/internal/core/ports"
)

func (c *Compiler) prepareWorkspace(_ context.Context, b *build) error {
	return c.deps.Workspace.Reset(b.settings.BuildDir)
}

func (c *Compiler) fetchSource(ctx context.Context, b *build) error {
	dir := b.settings.BuildDir

	url := b.req.RepositoryURL
	if url == "" {
		url = b.settings.Repository
	}
	if err := c.deps.VCS.Clone(ctx, url, dir); err != nil {
		return err
	}

	ref := b.req.Version
	if ref == "" {
		tag, err := c.deps.VCS.LatestTag(ctx, dir)
		if err != nil {
			return err
		}
		ref = tag
		c.deps.Logger.Info("no version requested, using latest tag " + ref)
	}
	if err := c.deps.VCS.Checkout(ctx, dir, ref); err != nil {
		return err
	}

	hash, err := c.deps.VCS.CommitHash(ctx, dir)
	if err != nil {
		return err
	}
	date, err := c.deps.VCS.CommitDate(ctx, dir)
	if err != nil {
		return err
	}
	b.revision = domain.Revision{Ref: ref, CommitHash: hash, CommitDate: date}
	c.deps.Logger.Info(fmt.Sprintf("checked out %s at %s (%s)", ref, b.revision.ShortHash(), date.Format("2006-01-02 15:04:05")))

	return c.deps.Workspace.RemovePaths(dir, b.settings.SourceCleanup)
}

func (c *Compiler) editManifest(_ context.Context, b *build) error {
	s := b.settings
	path := filepath.Join(s.BuildDir, domain.ManifestFile)

	m, err := c.deps.Manifests.ReadManifest(path)
	if err != nil {
		return err
	}

	m.RemoveDevSections()
	if err := m.SetAutoloaderSuffix(s.AutoloaderSuffix + b.revision.CommitHash); err != nil {
		return err
	}
	for _, ext := range s.Extensions {
		if err := m.IgnoreForCleaner(ext.Name, s.CleanerIgnore); err != nil {
			return err
		}
	}
	repo := s.PatchSource.RepositoryEntry(func(file string) string {
		return filepath.Join(s.PatchesDir, file)
	})
	if err := m.AppendRepository(s.PatchSource.Name, repo); err != nil {
		return err
	}
	if err := m.SetClassmap(domain.VendorDir); err != nil {
		return err
	}

	return c.deps.Manifests.WriteManifest(path, m)
}

func (c *Compiler) installDependencies(ctx context.Context, b *build) error {
	s := b.settings
	dir := s.BuildDir

	if err := c.deps.Packages.Update(ctx, dir, ports.UpdateProductionOnly); err != nil {
		return err
	}

	resolved, err := c.deps.Packages.InstalledPackages(ctx, dir)
	if err != nil {
		return err
	}
	b.resolved = resolved
	c.deps.Logger.Info(fmt.Sprintf("resolved %d runtime packages", resolved.Len()))

	if err := c.deps.Packages.Require(ctx, dir, s.BuildTools); err != nil {
		return err
	}

	if b.req.IncludeExtensions && len(s.Extensions) > 0 {
		reqs := make([]domain.Requirement, 0, len(s.Extensions))
		for _, ext := range s.Extensions {
			if err := c.deps.Packages.AddRepository(ctx, dir, ext.RepositoryKey(), "vcs", ext.Source); err != nil {
				return err
			}
			reqs = append(reqs, domain.Requirement{Name: ext.Name, Constraint: s.ExtensionBranch})
		}
		if err := c.deps.Packages.Require(ctx, dir, reqs); err != nil {
			return err
		}
	}

	return c.deps.Packages.Update(ctx, dir, ports.UpdateFinal)
}

func (c *Compiler) prefixSymbols(ctx context.Context, b *build) error {
	s := b.settings
	return c.deps.Prefixer.Prefix(ctx, ports.PrefixRequest{
		BuildDir:            s.BuildDir,
		Dependencies:        b.resolved.Names(),
		ForcedPrefixes:      s.ForcedPrefixes,
		ExemptNamespaces:    s.ExemptNamespaces,
		ExtensionExemptions: s.ExtensionExemptions(b.req.IncludeExtensions),
		Command:             s.Prefixer,
	})
}

func (c *Compiler) pruneDependencies(_ context.Context, b *build) error {
	s := b.settings
	vendor := filepath.Join(s.BuildDir, domain.VendorDir)

	lock, err := c.deps.Lockfiles.ReadLockfile(filepath.Join(s.BuildDir, domain.LockFile))
	if err != nil {
		return err
	}
	b.lock = lock

	candidates, err := c.deps.Workspace.ListVendorDirs(vendor)
	if err != nil {
		return err
	}
	doomed := domain.PlanPrune(candidates, domain.NewKeepSet(b.resolved, s.ExtensionNames()))
	if err := c.deps.Workspace.RemovePaths(vendor, doomed); err != nil {
		return err
	}
	if len(doomed) > 0 {
		c.deps.Logger.Info("pruned " + strings.Join(doomed, ", "))
	}

	placeholders, err := lock.Placeholders()
	if err != nil {
		return err
	}
	created, err := c.deps.Workspace.EnsurePlaceholders(vendor, placeholders)
	if err != nil {
		return err
	}
	c.deps.Logger.Info(fmt.Sprintf("restored %d of %d autoload paths", created, len(placeholders)))
	return nil
}

func (c *Compiler) rebuildAutoload(ctx context.Context, b *build) error {
	return c.deps.Packages.DumpAutoload(ctx, b.settings.BuildDir)
}

func (c *Compiler) packageArchive(ctx context.Context, b *build) error {
	s := b.settings
	b.archive = s.ArchivePath(b.revision.Ref)

	return c.deps.Packager.Package(ctx, ports.PackageRequest{
		BuildDir:     s.BuildDir,
		Output:       b.archive,
		Dependencies: b.resolved.Names(),
		Timestamp:    b.revision.CommitDate,
		Version:      b.revision.Ref,
		Command:      s.Packager,
	})
}

func (c *Compiler) recordProvenance(_ context.Context, b *build) error {
	archiveHash, err := c.deps.Hasher.HashFile(b.archive)
	if err != nil {
		return err
	}
	treeHash, err := c.deps.Hasher.HashTree(b.settings.BuildDir)
	if err != nil {
		return err
	}

	repository := b.req.RepositoryURL
	if repository == "" {
		repository = b.settings.Repository
	}

	b.record = domain.BuildRecord{
		Version:      b.revision.Ref,
		Ref:          b.revision.Ref,
		CommitHash:   b.revision.CommitHash,
		CommitDate:   b.revision.CommitDate,
		Repository:   repository,
		Extensions:   b.req.IncludeExtensions,
		Archive:      b.archive,
		ArchiveHash:  archiveHash,
		TreeHash:     treeHash,
		Dependencies: b.resolved.Names(),
	}
	return c.deps.Store.Put(b.record)
}
