package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pharbuild/internal/core/domain"
)

func TestPlanPrune_Scenario(t *testing.T) {
	keep := domain.NewKeepSet(domain.NewDependencySet("a/b", "c/d"), []string{"e/f"})

	doomed := domain.PlanPrune([]string{"a/b", "c/d", "e/f", "g/h", "bin", "composer"}, keep)

	assert.Equal(t, []string{"g/h"}, doomed)
}

func TestPlanPrune_PackageDirectories(t *testing.T) {
	keep := domain.NewKeepSet(domain.NewDependencySet("nikic/php-parser", "composer/pcre"), nil)

	doomed := domain.PlanPrune([]string{
		"nikic/php-parser", "nikic/fast-route",
		"composer", "composer/pcre", "composer/semver",
		"dg/composer-cleaner",
		"bin",
	}, keep)

	assert.Equal(t, []string{"composer/semver", "dg/composer-cleaner", "nikic/fast-route"}, doomed)
}

func TestPlanPrune_NeverDeletesKeptPaths(t *testing.T) {
	resolved := domain.NewDependencySet("a/b", "x/y", "composer/pcre")
	extensions := []string{"phpstan/phpstan-phpunit"}
	keep := domain.NewKeepSet(resolved, extensions)

	candidates := []string{
		"a/b", "a/c", "x/y", "x/z", "composer", "composer/pcre", "bin",
		"phpstan/phpstan-phpunit", "phpstan/phpstan-doctrine", "q/r",
	}
	doomed := domain.PlanPrune(candidates, keep)

	protected := append(resolved.Names(), extensions...)
	protected = append(protected, domain.ComposerInternalDir, domain.BinDir)
	for _, d := range doomed {
		assert.NotContains(t, protected, d)
		for _, p := range protected {
			assert.NotContains(t, p, d+"/", "deleting %s would remove kept %s", d, p)
		}
	}
	assert.Equal(t, []string{"a/c", "phpstan/phpstan-doctrine", "q/r", "x/z"}, doomed)
}

func TestPlanPrune_Deduplicates(t *testing.T) {
	keep := domain.NewKeepSet(domain.DependencySet{}, nil)
	assert.Equal(t, []string{"g"}, domain.PlanPrune([]string{"g/h", "g", "g/h", "g/i"}, keep))
	assert.Empty(t, domain.PlanPrune(nil, keep))
}
