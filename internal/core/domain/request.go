package domain

import "time"

// BuildRequest describes a single compile invocation. It is built once by the CLI and
// never mutated afterwards.
type BuildRequest struct {
	// Version is the tag or ref to build. Empty means the latest tag.
	Version string
	// IncludeExtensions bundles the registered extension packages into the archive.
	IncludeExtensions bool
	// RepositoryURL overrides the configured source repository when non-empty.
	RepositoryURL string
	// ConfigPath points to an optional pharbuild.yaml. Empty means embedded defaults only.
	ConfigPath string
}

// Revision is the checked out state of the fetched source.
type Revision struct {
	Ref        string
	CommitHash string
	// CommitDate is always normalised to UTC.
	CommitDate time.Time
}

// ShortHash returns the abbreviated commit hash used in log lines.
func (r Revision) ShortHash() string {
	if len(r.CommitHash) > 12 {
		return r.CommitHash[:12]
	}
	return r.CommitHash
}
