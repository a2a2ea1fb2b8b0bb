package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pharbuild/internal/core/domain"
)

func TestParseManifest_Invalid(t *testing.T) {
	for name, input := range map[string]string{
		"syntax": `{"name": `,
		"array":  `["not", "an", "object"]`,
		"null":   `null`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := domain.ParseManifest([]byte(input))
			require.ErrorIs(t, err, domain.ErrManifestParse)
		})
	}
}

func TestManifest_RemoveDevSections(t *testing.T) {
	m, err := domain.ParseManifest([]byte(`{
		"require": {"php": "^8.1"},
		"require-dev": {"x/y": "*"},
		"autoload-dev": {"psr-4": {"Tests\\": "tests/"}}
	}`))
	require.NoError(t, err)

	m.RemoveDevSections()
	_, ok := m.Lookup("require-dev")
	assert.False(t, ok)
	_, ok = m.Lookup("autoload-dev")
	assert.False(t, ok)

	// A second pass over a manifest without the keys changes nothing.
	before, err := m.Marshal()
	require.NoError(t, err)
	m.RemoveDevSections()
	after, err := m.Marshal()
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))

	_, ok = m.Lookup("require", "php")
	assert.True(t, ok)
}

func TestManifest_SetAutoloaderSuffix(t *testing.T) {
	m, err := domain.ParseManifest([]byte(`{"config": {"platform": {"php": "8.1.99"}}}`))
	require.NoError(t, err)

	require.NoError(t, m.SetAutoloaderSuffix("PhpStanPharabc123"))

	v, ok := m.Lookup("config", "autoloader-suffix")
	require.True(t, ok)
	assert.Equal(t, "PhpStanPharabc123", v)
	_, ok = m.Lookup("config", "platform", "php")
	assert.True(t, ok, "existing config must be preserved")
}

func TestManifest_SetAutoloaderSuffix_EmptyPHPArray(t *testing.T) {
	m, err := domain.ParseManifest([]byte(`{"config": []}`))
	require.NoError(t, err)

	require.NoError(t, m.SetAutoloaderSuffix("S"))
	v, _ := m.Lookup("config", "autoloader-suffix")
	assert.Equal(t, "S", v)
}

func TestManifest_SetAutoloaderSuffix_BadShape(t *testing.T) {
	m, err := domain.ParseManifest([]byte(`{"config": "nope"}`))
	require.NoError(t, err)

	require.ErrorIs(t, m.SetAutoloaderSuffix("S"), domain.ErrManifestShape)
}

func TestManifest_IgnoreForCleaner(t *testing.T) {
	m, err := domain.ParseManifest([]byte(`{}`))
	require.NoError(t, err)

	require.NoError(t, m.IgnoreForCleaner("phpstan/phpstan-strict-rules", []string{"extension.neon", "rules.neon"}))
	require.NoError(t, m.IgnoreForCleaner("phpstan/phpstan-phpunit", []string{"extension.neon", "rules.neon"}))

	v, ok := m.Lookup("config", "cleaner-ignore", "phpstan/phpstan-strict-rules")
	require.True(t, ok)
	assert.Equal(t, []any{"extension.neon", "rules.neon"}, v)
	_, ok = m.Lookup("config", "cleaner-ignore", "phpstan/phpstan-phpunit")
	assert.True(t, ok)
}

func TestManifest_AppendRepository(t *testing.T) {
	repo := map[string]any{"type": "package"}

	t.Run("absent", func(t *testing.T) {
		m, err := domain.ParseManifest([]byte(`{}`))
		require.NoError(t, err)
		require.NoError(t, m.AppendRepository("patches", repo))
		v, _ := m.Lookup("repositories")
		assert.Len(t, v, 1)
	})

	t.Run("list", func(t *testing.T) {
		m, err := domain.ParseManifest([]byte(`{"repositories": [{"type": "vcs", "url": "x"}]}`))
		require.NoError(t, err)
		require.NoError(t, m.AppendRepository("patches", repo))
		v, _ := m.Lookup("repositories")
		list, ok := v.([]any)
		require.True(t, ok)
		require.Len(t, list, 2)
		assert.Equal(t, repo, list[1])
	})

	t.Run("object", func(t *testing.T) {
		m, err := domain.ParseManifest([]byte(`{"repositories": {"packagist.org": false}}`))
		require.NoError(t, err)
		require.NoError(t, m.AppendRepository("patches", repo))
		v, ok := m.Lookup("repositories", "patches")
		require.True(t, ok)
		assert.Equal(t, repo, v)
	})

	t.Run("scalar", func(t *testing.T) {
		m, err := domain.ParseManifest([]byte(`{"repositories": 3}`))
		require.NoError(t, err)
		require.ErrorIs(t, m.AppendRepository("patches", repo), domain.ErrManifestShape)
	})
}

func TestManifest_SetClassmap(t *testing.T) {
	m, err := domain.ParseManifest([]byte(`{"autoload": {"psr-4": {"PHPStan\\": "src/"}}}`))
	require.NoError(t, err)

	require.NoError(t, m.SetClassmap("vendor"))
	require.NoError(t, m.SetClassmap("vendor"))

	v, ok := m.Lookup("autoload", "classmap")
	require.True(t, ok)
	assert.Equal(t, []any{"vendor"}, v)

	psr4, ok := m.Lookup("autoload", "psr-4")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"PHPStan\\": "src/"}, psr4)
}

func TestManifest_SetClassmap_ReplacesExistingEntries(t *testing.T) {
	m, err := domain.ParseManifest([]byte(`{"autoload": {"classmap": ["stubs/", "vendor"]}}`))
	require.NoError(t, err)

	require.NoError(t, m.SetClassmap("vendor"))

	v, _ := m.Lookup("autoload", "classmap")
	assert.Equal(t, []any{"vendor"}, v)
}

func TestManifest_SetClassmap_RejectsScalarAutoload(t *testing.T) {
	m, err := domain.ParseManifest([]byte(`{"autoload": "vendor"}`))
	require.NoError(t, err)

	require.ErrorIs(t, m.SetClassmap("vendor"), domain.ErrManifestShape)
}

func TestManifest_MarshalKeepsNumbersAndSlashes(t *testing.T) {
	m, err := domain.ParseManifest([]byte(`{"extra": {"branch-alias": {"dev-main": "2.1-dev"}, "weight": 1.10}, "homepage": "https://phpstan.org/"}`))
	require.NoError(t, err)

	out, err := m.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(out), `"weight": 1.10`)
	assert.Contains(t, string(out), `"https://phpstan.org/"`)
	assert.True(t, json.Valid(out))
}

func TestPatchSource_RepositoryEntry(t *testing.T) {
	src := domain.PatchSource{
		Name:    "pharbuild/patches",
		Version: "1.0.0",
		Patches: []domain.Patch{
			{Package: "nikic/php-parser", Description: "parser", File: "a.patch"},
			{Package: "symfony/console", Description: "console", File: "b.patch"},
		},
	}

	entry := src.RepositoryEntry(func(file string) string { return "/patches/" + file })

	assert.Equal(t, "package", entry["type"])
	pkg, ok := entry["package"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "pharbuild/patches", pkg["name"])
	assert.Equal(t, "metapackage", pkg["type"])
	patches := pkg["extra"].(map[string]any)["patches"].(map[string]any)
	assert.Equal(t, map[string]any{"parser": "/patches/a.patch"}, patches["nikic/php-parser"])
	assert.Equal(t, map[string]any{"console": "/patches/b.patch"}, patches["symfony/console"])
}
