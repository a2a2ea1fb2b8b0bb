package shell

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTailBuffer_KeepsLastLines(t *testing.T) {
	tail := &tailBuffer{max: 3}
	for i := range 5 {
		_, _ = tail.Write([]byte("line " + strconv.Itoa(i) + "\n"))
	}
	_, _ = tail.Write([]byte("partial"))

	assert.Equal(t, "line 2\nline 3\nline 4\npartial", tail.String())
}

func TestResolveEnvironment_OverridesAndSorts(t *testing.T) {
	env := resolveEnvironment(
		[]string{"PATH=/usr/bin", "HOME=/root", "broken"},
		map[string]string{"COMPOSER_NO_INTERACTION": "1", "HOME": "/tmp/home"},
	)

	assert.Equal(t, []string{"COMPOSER_NO_INTERACTION=1", "HOME=/tmp/home", "PATH=/usr/bin"}, env)
}

func TestLookPath_NoPath(t *testing.T) {
	_, err := lookPath("git", []string{"HOME=/root"})
	assert.Error(t, err)
}
