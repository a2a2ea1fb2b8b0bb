// Package git implements ports.VersionControl by driving the git CLI.
package git

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.trai.ch/pharbuild/internal/core/domain"
	"go.trai.ch/pharbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

const binary = "git"

// Client runs git through an executor.
type Client struct {
	exec ports.Executor
}

// NewClient creates a new git Client.
func NewClient(exec ports.Executor) *Client {
	return &Client{exec: exec}
}

// Clone clones url into dest.
func (c *Client) Clone(ctx context.Context, url, dest string) error {
	_, err := c.run(ctx, "", "clone", url, dest)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clone repository"), "url", url)
	}
	return nil
}

// LatestTag returns the nearest tag reachable from HEAD.
func (c *Client) LatestTag(ctx context.Context, dir string) (string, error) {
	out, err := c.run(ctx, dir, "describe", "--tags", "--abbrev=0")
	if err != nil {
		return "", errors.Join(domain.ErrNoTags, err)
	}
	tag := strings.TrimSpace(out)
	if tag == "" {
		return "", domain.ErrNoTags
	}
	return tag, nil
}

// Checkout force-checks out ref.
func (c *Client) Checkout(ctx context.Context, dir, ref string) error {
	if _, err := c.run(ctx, dir, "checkout", "--force", ref); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to check out"), "ref", ref)
	}
	return nil
}

// CommitHash returns the full hash of HEAD.
func (c *Client) CommitHash(ctx context.Context, dir string) (string, error) {
	out, err := c.run(ctx, dir, "log", "--pretty=%H", "-n1", "HEAD")
	if err != nil {
		return "", zerr.Wrap(err, "failed to read commit hash")
	}
	return strings.TrimSpace(out), nil
}

// CommitDate returns the committer date of HEAD in UTC.
func (c *Client) CommitDate(ctx context.Context, dir string) (time.Time, error) {
	out, err := c.run(ctx, dir, "log", "-n1", "--pretty=%cI", "HEAD")
	if err != nil {
		return time.Time{}, zerr.Wrap(err, "failed to read commit date")
	}
	raw := strings.TrimSpace(out)
	date, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.Join(domain.ErrInvalidCommitDate, zerr.With(zerr.Wrap(err, "unparseable date"), "value", raw))
	}
	return date.UTC(), nil
}

func (c *Client) run(ctx context.Context, dir string, args ...string) (string, error) {
	res, err := c.exec.Run(ctx, domain.Command{
		Name: binary,
		Args: args,
		Dir:  dir,
		Env:  map[string]string{"GIT_TERMINAL_PROMPT": "0"},
	})
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}
