package domain

import (
	"os"
	"path/filepath"
	"time"
)

// BuildRecord is the provenance of a produced archive.
type BuildRecord struct {
	Version      string    `json:"version,omitzero"`
	Ref          string    `json:"ref,omitzero"`
	CommitHash   string    `json:"commit_hash,omitzero"`
	CommitDate   time.Time `json:"commit_date,omitzero"`
	Repository   string    `json:"repository,omitzero"`
	Extensions   bool      `json:"extensions,omitzero"`
	Archive      string    `json:"archive,omitzero"`
	ArchiveHash  string    `json:"archive_hash,omitzero"`
	TreeHash     string    `json:"tree_hash,omitzero"`
	Dependencies []string  `json:"dependencies,omitzero"`
}

// DefaultStorePath returns the location of the build record store in the user cache
// directory, falling back to the OS temp directory.
func DefaultStorePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "pharbuild", "builds.json")
}
