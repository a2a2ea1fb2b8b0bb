package ports

import (
	"context"
	"time"
)

// VersionControl fetches and introspects the source repository.
//
//go:generate go run go.uber.org/mock/mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type VersionControl interface {
	// Clone clones url into dest. dest must not exist or be empty.
	Clone(ctx context.Context, url, dest string) error
	// LatestTag returns the most recent tag reachable from the checked out branch.
	LatestTag(ctx context.Context, dir string) (string, error)
	// Checkout force-checks out ref.
	Checkout(ctx context.Context, dir, ref string) error
	// CommitHash returns the full hash of HEAD.
	CommitHash(ctx context.Context, dir string) (string, error)
	// CommitDate returns the committer date of HEAD in UTC.
	CommitDate(ctx context.Context, dir string) (time.Time, error)
}
