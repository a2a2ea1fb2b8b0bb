package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pharbuild/internal/core/domain"
)

func TestParsePackageList(t *testing.T) {
	set := domain.ParsePackageList("nikic/php-parser\nsymfony/console  \n\n  ondram/ci-detector\r\nnikic/php-parser\n")

	assert.Equal(t, []string{"nikic/php-parser", "symfony/console", "ondram/ci-detector"}, set.Names())
	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains("symfony/console"))
	assert.False(t, set.Contains("symfony/finder"))
}

func TestDependencySet_ZeroValue(t *testing.T) {
	var set domain.DependencySet
	assert.False(t, set.Contains("a/b"))
	assert.Empty(t, set.Names())

	set.Add("a/b")
	set.Add("")
	assert.Equal(t, []string{"a/b"}, set.Names())
}

func TestDependencySet_NamesIsACopy(t *testing.T) {
	set := domain.NewDependencySet("a/b")
	names := set.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"a/b"}, set.Names())
}
