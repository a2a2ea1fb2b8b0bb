package compiler_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pharbuild/internal/core/domain"
	"go.trai.ch/pharbuild/internal/core/ports"
	"go.trai.ch/pharbuild/internal/core/ports/mocks"
	"go.trai.ch/pharbuild/internal/engine/compiler"
	"go.uber.org/mock/gomock"
)

const (
	buildDir  = "/work/build"
	commitSHA = "0123456789abcdef0123456789abcdef01234567"
)

var commitDate = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

type harness struct {
	vcs       *mocks.MockVersionControl
	packages  *mocks.MockPackageManager
	manifests *mocks.MockManifestStore
	lockfiles *mocks.MockLockfileReader
	workspace *mocks.MockWorkspace
	prefixer  *mocks.MockPrefixer
	packager  *mocks.MockPackager
	hasher    *mocks.MockHasher
	store     *mocks.MockBuildRecordStore
	compiler  *compiler.Compiler
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()

	telemetry := mocks.NewMockTelemetry(ctrl)
	telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	h := &harness{
		vcs:       mocks.NewMockVersionControl(ctrl),
		packages:  mocks.NewMockPackageManager(ctrl),
		manifests: mocks.NewMockManifestStore(ctrl),
		lockfiles: mocks.NewMockLockfileReader(ctrl),
		workspace: mocks.NewMockWorkspace(ctrl),
		prefixer:  mocks.NewMockPrefixer(ctrl),
		packager:  mocks.NewMockPackager(ctrl),
		hasher:    mocks.NewMockHasher(ctrl),
		store:     mocks.NewMockBuildRecordStore(ctrl),
	}
	h.compiler = compiler.NewCompiler(compiler.Deps{
		VCS:       h.vcs,
		Packages:  h.packages,
		Manifests: h.manifests,
		Lockfiles: h.lockfiles,
		Workspace: h.workspace,
		Prefixer:  h.prefixer,
		Packager:  h.packager,
		Hasher:    h.hasher,
		Store:     h.store,
		Telemetry: telemetry,
		Logger:    logger,
	})
	return h
}

func testSettings() *domain.Settings {
	return &domain.Settings{
		Repository:       "https://example.com/phpstan-src.git",
		BuildDir:         buildDir,
		OutputDir:        "/work/out",
		ArchiveName:      "phpstan-{version}.phar",
		PatchesDir:       "/work/patches",
		SourceCleanup:    []string{"tests", "compiler"},
		AutoloaderSuffix: "PhpStanPhar",
		CleanerIgnore:    []string{"extension.neon", "rules.neon"},
		BuildTools: []domain.Requirement{
			{Name: "dg/composer-cleaner", Constraint: "^2.2"},
		},
		ExtensionBranch: "dev-phar-build",
		Extensions: []domain.Extension{
			{Name: "phpstan/phpstan-doctrine", Source: "https://example.com/doctrine.git", Exemptions: []string{"Doctrine"}},
			{Name: "phpstan/phpstan-strict-rules", Source: "https://example.com/strict.git"},
		},
		ExemptNamespaces: []string{"PHPStan"},
		ForcedPrefixes:   []string{"Nette"},
		PatchSource: domain.PatchSource{
			Name:    "phpstan/phar-patches",
			Version: "1.0.0",
			Patches: []domain.Patch{{Package: "nette/di", Description: "no eval", File: "nette.patch"}},
		},
		Prefixer: domain.ToolCommand{Command: []string{"prefix", "{request}"}},
		Packager: domain.ToolCommand{Command: []string{"pack", "{output}"}},
	}
}

func testLockfile() *domain.Lockfile {
	lock, err := domain.ParseLockfile([]byte(`{"packages": [
		{"name": "nette/utils", "autoload": {"classmap": ["src/"]}},
		{"name": "symfony/polyfill-php80", "autoload": {"psr-4": {"Symfony\\Polyfill\\Php80\\": ""}, "files": ["bootstrap.php"]}}
	]}`))
	if err != nil {
		panic(err)
	}
	return lock
}

func (h *harness) expectFetch(ref string) {
	h.workspace.EXPECT().Reset(buildDir).Return(nil)
	h.vcs.EXPECT().Clone(gomock.Any(), "https://example.com/phpstan-src.git", buildDir).Return(nil)
	h.vcs.EXPECT().Checkout(gomock.Any(), buildDir, ref).Return(nil)
	h.vcs.EXPECT().CommitHash(gomock.Any(), buildDir).Return(commitSHA, nil)
	h.vcs.EXPECT().CommitDate(gomock.Any(), buildDir).Return(commitDate, nil)
	h.workspace.EXPECT().RemovePaths(buildDir, []string{"tests", "compiler"}).Return(nil)
}

func (h *harness) expectManifest(t *testing.T) {
	t.Helper()
	manifestPath := filepath.Join(buildDir, domain.ManifestFile)
	m, err := domain.ParseManifest([]byte(`{"name": "phpstan/phpstan-src", "require-dev": {"phpunit/phpunit": "^9"}, "autoload": {"classmap": ["src/", "vendor"]}}`))
	require.NoError(t, err)

	h.manifests.EXPECT().ReadManifest(manifestPath).Return(m, nil)
	h.manifests.EXPECT().WriteManifest(manifestPath, gomock.Any()).
		DoAndReturn(func(_ string, written *domain.Manifest) error {
			_, ok := written.Lookup("require-dev")
			assert.False(t, ok)

			suffix, _ := written.Lookup("config", "autoloader-suffix")
			assert.Equal(t, "PhpStanPhar"+commitSHA, suffix)

			ignore, ok := written.Lookup("config", "cleaner-ignore", "phpstan/phpstan-strict-rules")
			assert.True(t, ok)
			assert.Equal(t, []any{"extension.neon", "rules.neon"}, ignore)

			classmap, _ := written.Lookup("autoload", "classmap")
			assert.Equal(t, []any{"vendor"}, classmap)
			return nil
		})
}

func (h *harness) expectRest(resolved domain.DependencySet, vendorDirs, pruned []string) {
	vendor := filepath.Join(buildDir, domain.VendorDir)
	archive := filepath.Join("/work/out", "phpstan-1.10.0.phar")

	h.prefixer.EXPECT().Prefix(gomock.Any(), gomock.Any()).Return(nil)
	h.lockfiles.EXPECT().ReadLockfile(filepath.Join(buildDir, domain.LockFile)).Return(testLockfile(), nil)
	h.workspace.EXPECT().ListVendorDirs(vendor).Return(vendorDirs, nil)
	h.workspace.EXPECT().RemovePaths(vendor, pruned).Return(nil)
	h.workspace.EXPECT().EnsurePlaceholders(vendor, []domain.Placeholder{
		{Path: "nette/utils/src", Kind: domain.PlaceholderDir},
		{Path: "symfony/polyfill-php80/bootstrap.php", Kind: domain.PlaceholderStub},
		{Path: "symfony/polyfill-php80", Kind: domain.PlaceholderDir},
	}).Return(2, nil)
	h.packages.EXPECT().DumpAutoload(gomock.Any(), buildDir).Return(nil)
	h.packager.EXPECT().Package(gomock.Any(), ports.PackageRequest{
		BuildDir:     buildDir,
		Output:       archive,
		Dependencies: resolved.Names(),
		Timestamp:    commitDate,
		Version:      "1.10.0",
		Command:      domain.ToolCommand{Command: []string{"pack", "{output}"}},
	}).Return(nil)
	h.hasher.EXPECT().HashFile(archive).Return("archivehash", nil)
	h.hasher.EXPECT().HashTree(buildDir).Return("treehash", nil)
}

func TestCompiler_Compile_WithoutExtensions(t *testing.T) {
	h := newHarness(t)
	settings := testSettings()
	resolved := domain.NewDependencySet("nette/utils", "symfony/polyfill-php80")

	h.expectFetch("1.10.0")
	h.expectManifest(t)
	gomock.InOrder(
		h.packages.EXPECT().Update(gomock.Any(), buildDir, ports.UpdateProductionOnly).Return(nil),
		h.packages.EXPECT().InstalledPackages(gomock.Any(), buildDir).Return(resolved, nil),
		h.packages.EXPECT().Require(gomock.Any(), buildDir, settings.BuildTools).Return(nil),
		h.packages.EXPECT().Update(gomock.Any(), buildDir, ports.UpdateFinal).Return(nil),
	)
	h.expectRest(resolved,
		[]string{"bin", "composer", "nette/utils", "phpunit/phpunit", "symfony/polyfill-php80"},
		[]string{"phpunit/phpunit"},
	)

	var stored domain.BuildRecord
	h.store.EXPECT().Put(gomock.Any()).DoAndReturn(func(r domain.BuildRecord) error {
		stored = r
		return nil
	})

	res, err := h.compiler.Compile(context.Background(), domain.BuildRequest{Version: "1.10.0"}, settings)
	require.NoError(t, err)

	assert.Equal(t, "1.10.0", res.Revision.Ref)
	assert.Equal(t, commitSHA, res.Revision.CommitHash)
	assert.Equal(t, filepath.Join("/work/out", "phpstan-1.10.0.phar"), res.Archive)
	assert.Equal(t, []string{"nette/utils", "symfony/polyfill-php80"}, res.Dependencies.Names())

	assert.Equal(t, stored, res.Record)
	assert.Equal(t, "archivehash", stored.ArchiveHash)
	assert.Equal(t, "treehash", stored.TreeHash)
	assert.Equal(t, "https://example.com/phpstan-src.git", stored.Repository)
	assert.False(t, stored.Extensions)

	for _, name := range []string{compiler.StageWorkspace, compiler.StageFetch, compiler.StageRecord} {
		assert.Equal(t, domain.StageStatusCompleted, h.compiler.Status(name), name)
	}
}

func TestCompiler_Compile_WithExtensions(t *testing.T) {
	h := newHarness(t)
	settings := testSettings()
	resolved := domain.NewDependencySet("nette/utils", "symfony/polyfill-php80")

	h.vcs.EXPECT().LatestTag(gomock.Any(), buildDir).Return("1.10.0", nil)
	h.expectFetch("1.10.0")
	h.expectManifest(t)
	gomock.InOrder(
		h.packages.EXPECT().Update(gomock.Any(), buildDir, ports.UpdateProductionOnly).Return(nil),
		h.packages.EXPECT().InstalledPackages(gomock.Any(), buildDir).Return(resolved, nil),
		h.packages.EXPECT().Require(gomock.Any(), buildDir, settings.BuildTools).Return(nil),
		h.packages.EXPECT().AddRepository(gomock.Any(), buildDir, "phpstan-phpstan-doctrine", "vcs", "https://example.com/doctrine.git").Return(nil),
		h.packages.EXPECT().AddRepository(gomock.Any(), buildDir, "phpstan-phpstan-strict-rules", "vcs", "https://example.com/strict.git").Return(nil),
		h.packages.EXPECT().Require(gomock.Any(), buildDir, []domain.Requirement{
			{Name: "phpstan/phpstan-doctrine", Constraint: "dev-phar-build"},
			{Name: "phpstan/phpstan-strict-rules", Constraint: "dev-phar-build"},
		}).Return(nil),
		h.packages.EXPECT().Update(gomock.Any(), buildDir, ports.UpdateFinal).Return(nil),
	)

	// Extensions survive pruning even though they are not runtime dependencies.
	h.expectRest(resolved,
		[]string{"composer", "nette/utils", "phpstan/phpstan-doctrine", "phpstan/phpstan-strict-rules", "dg/composer-cleaner"},
		[]string{"dg/composer-cleaner"},
	)
	h.store.EXPECT().Put(gomock.Any()).Return(nil)

	res, err := h.compiler.Compile(context.Background(), domain.BuildRequest{IncludeExtensions: true}, settings)
	require.NoError(t, err)
	assert.True(t, res.Record.Extensions)
	assert.Equal(t, "1.10.0", res.Record.Version)
}

func TestCompiler_Compile_PrefixRequest(t *testing.T) {
	h := newHarness(t)
	settings := testSettings()
	resolved := domain.NewDependencySet("nette/utils")

	h.expectFetch("1.10.0")
	h.expectManifest(t)
	h.packages.EXPECT().Update(gomock.Any(), buildDir, gomock.Any()).Return(nil).Times(2)
	h.packages.EXPECT().InstalledPackages(gomock.Any(), buildDir).Return(resolved, nil)
	h.packages.EXPECT().Require(gomock.Any(), buildDir, gomock.Any()).Return(nil).Times(2)
	h.packages.EXPECT().AddRepository(gomock.Any(), buildDir, gomock.Any(), "vcs", gomock.Any()).Return(nil).Times(2)

	var got ports.PrefixRequest
	h.prefixer.EXPECT().Prefix(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req ports.PrefixRequest) error {
		got = req
		return errors.New("prefixer crashed")
	})

	_, err := h.compiler.Compile(context.Background(), domain.BuildRequest{Version: "1.10.0", IncludeExtensions: true}, settings)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStageFailed)
	assert.Contains(t, err.Error(), "stage prefix failed")

	assert.Equal(t, buildDir, got.BuildDir)
	assert.Equal(t, []string{"nette/utils"}, got.Dependencies)
	assert.Equal(t, []string{"Nette"}, got.ForcedPrefixes)
	assert.Equal(t, []string{"PHPStan"}, got.ExemptNamespaces)
	assert.Equal(t, map[string][]string{
		"phpstan/phpstan-doctrine":     {"Doctrine"},
		"phpstan/phpstan-strict-rules": nil,
	}, got.ExtensionExemptions)

	assert.Equal(t, domain.StageStatusCompleted, h.compiler.Status(compiler.StageInstall))
	assert.Equal(t, domain.StageStatusFailed, h.compiler.Status(compiler.StagePrefix))
	assert.Equal(t, domain.StageStatusSkipped, h.compiler.Status(compiler.StagePrune))
}

func TestCompiler_Compile_StageFailure(t *testing.T) {
	h := newHarness(t)
	cloneErr := errors.Join(domain.ErrCommandFailed, errors.New("repository not found"))

	h.workspace.EXPECT().Reset(buildDir).Return(nil)
	h.vcs.EXPECT().Clone(gomock.Any(), gomock.Any(), buildDir).Return(cloneErr)

	res, err := h.compiler.Compile(context.Background(), domain.BuildRequest{Version: "1.10.0"}, testSettings())
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrStageFailed)
	assert.ErrorIs(t, err, domain.ErrCommandFailed)
	assert.Contains(t, err.Error(), "stage fetch failed")

	assert.Equal(t, domain.StageStatusCompleted, h.compiler.Status(compiler.StageWorkspace))
	assert.Equal(t, domain.StageStatusFailed, h.compiler.Status(compiler.StageFetch))
	assert.Equal(t, domain.StageStatusSkipped, h.compiler.Status(compiler.StageRecord))
}

func TestCompiler_Compile_NoTags(t *testing.T) {
	h := newHarness(t)

	h.workspace.EXPECT().Reset(buildDir).Return(nil)
	h.vcs.EXPECT().Clone(gomock.Any(), gomock.Any(), buildDir).Return(nil)
	h.vcs.EXPECT().LatestTag(gomock.Any(), buildDir).Return("", domain.ErrNoTags)

	_, err := h.compiler.Compile(context.Background(), domain.BuildRequest{}, testSettings())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoTags)
}

func TestCompiler_Compile_RepositoryOverride(t *testing.T) {
	h := newHarness(t)

	h.workspace.EXPECT().Reset(buildDir).Return(nil)
	h.vcs.EXPECT().Clone(gomock.Any(), "https://mirror.example.com/src.git", buildDir).Return(errors.New("offline"))

	_, err := h.compiler.Compile(context.Background(),
		domain.BuildRequest{Version: "1.10.0", RepositoryURL: "https://mirror.example.com/src.git"}, testSettings())
	require.Error(t, err)
}

func TestCompiler_Compile_Cancelled(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.compiler.Compile(ctx, domain.BuildRequest{Version: "1.10.0"}, testSettings())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, domain.StageStatusSkipped, h.compiler.Status(compiler.StageWorkspace))
}

func TestCompiler_Status_Unknown(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, domain.StageStatusPending, h.compiler.Status("nope"))
}
