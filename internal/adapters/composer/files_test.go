package composer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pharbuild/internal/adapters/composer"
	"go.trai.ch/pharbuild/internal/core/domain"
)

func TestFiles_ManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domain.ManifestFile)
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"phpstan/phpstan-src","require-dev":{"phpunit/phpunit":"^9"}}`), 0o600))

	files := composer.NewFiles()
	m, err := files.ReadManifest(path)
	require.NoError(t, err)

	m.RemoveDevSections()
	require.NoError(t, files.WriteManifest(path, m))

	reread, err := files.ReadManifest(path)
	require.NoError(t, err)
	_, ok := reread.Lookup("require-dev")
	assert.False(t, ok)
	name, ok := reread.Lookup("name")
	require.True(t, ok)
	assert.Equal(t, "phpstan/phpstan-src", name)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFiles_ReadManifest_Missing(t *testing.T) {
	_, err := composer.NewFiles().ReadManifest(filepath.Join(t.TempDir(), domain.ManifestFile))
	require.ErrorIs(t, err, domain.ErrManifestRead)
}

func TestFiles_ReadManifest_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.ManifestFile)
	require.NoError(t, os.WriteFile(path, []byte(`{"name":`), 0o600))

	_, err := composer.NewFiles().ReadManifest(path)
	require.ErrorIs(t, err, domain.ErrManifestParse)
}

func TestFiles_ReadLockfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.LockFile)
	lock := `{
    "packages": [
        {"name": "a/b", "autoload": {"psr-4": {"A\\B\\": "src/"}}, "bin": ["bin/tool"]}
    ],
    "packages-dev": []
}`
	require.NoError(t, os.WriteFile(path, []byte(lock), 0o600))

	parsed, err := composer.NewFiles().ReadLockfile(path)
	require.NoError(t, err)
	require.Len(t, parsed.Packages, 1)
	assert.Equal(t, "a/b", parsed.Packages[0].Name)
	assert.Equal(t, []string{"bin/tool"}, parsed.Packages[0].Bin)
}

func TestFiles_ReadLockfile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := composer.NewFiles().ReadLockfile(filepath.Join(dir, "missing.lock"))
	require.ErrorIs(t, err, domain.ErrLockfileRead)

	bad := filepath.Join(dir, domain.LockFile)
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0o600))
	_, err = composer.NewFiles().ReadLockfile(bad)
	require.ErrorIs(t, err, domain.ErrLockfileParse)
}
