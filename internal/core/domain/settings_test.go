package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pharbuild/internal/core/domain"
)

func testSettings() *domain.Settings {
	return &domain.Settings{
		OutputDir:        "/tmp/out",
		ArchiveName:      "phpstan-{version}.phar",
		ExemptNamespaces: []string{"PHPStan\\"},
		Extensions: []domain.Extension{
			{Name: "phpstan/phpstan-phpunit", Exemptions: []string{"PHPUnit\\"}},
			{Name: "phpstan/phpstan-doctrine", Exemptions: []string{"Doctrine\\"}},
		},
	}
}

func TestSettings_ExtensionNames(t *testing.T) {
	assert.Equal(t, []string{"phpstan/phpstan-phpunit", "phpstan/phpstan-doctrine"}, testSettings().ExtensionNames())
}

func TestSettings_ExtensionExemptions(t *testing.T) {
	s := testSettings()

	assert.Empty(t, s.ExtensionExemptions(false))
	assert.Equal(t, map[string][]string{
		"phpstan/phpstan-phpunit":  {"PHPUnit\\"},
		"phpstan/phpstan-doctrine": {"Doctrine\\"},
	}, s.ExtensionExemptions(true))
}

func TestSettings_ArchivePath(t *testing.T) {
	assert.Equal(t, filepath.Join("/tmp/out", "phpstan-1.10.0.phar"), testSettings().ArchivePath("1.10.0"))
}

func TestRequirement_String(t *testing.T) {
	assert.Equal(t, "dg/composer-cleaner:^2.2", domain.Requirement{Name: "dg/composer-cleaner", Constraint: "^2.2"}.String())
	assert.Equal(t, "a/b", domain.Requirement{Name: "a/b"}.String())
}

func TestExtension_RepositoryKey(t *testing.T) {
	assert.Equal(t, "phpstan-phpstan-phpunit", domain.Extension{Name: "phpstan/phpstan-phpunit"}.RepositoryKey())
}

func TestRevision_ShortHash(t *testing.T) {
	assert.Equal(t, "0123456789ab", domain.Revision{CommitHash: "0123456789abcdef"}.ShortHash())
	assert.Equal(t, "abc", domain.Revision{CommitHash: "abc"}.ShortHash())
}
