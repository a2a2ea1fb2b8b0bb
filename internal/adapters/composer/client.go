// Package composer drives the Composer CLI and reads and writes its files.
package composer

import (
	"context"

	"go.trai.ch/pharbuild/internal/core/domain"
	"go.trai.ch/pharbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

const binary = "composer"

// Client implements ports.PackageManager on top of an executor.
type Client struct {
	exec ports.Executor
}

// NewClient creates a new Composer Client.
func NewClient(exec ports.Executor) *Client {
	return &Client{exec: exec}
}

// Update resolves and installs dependencies.
func (c *Client) Update(ctx context.Context, dir string, mode ports.UpdateMode) error {
	args := []string{"update", "--no-dev", "--no-interaction"}
	if mode == ports.UpdateFinal {
		args = []string{"update", "--no-interaction", "--no-suggest", "--optimize-autoloader", "--classmap-authoritative"}
	}
	if _, err := c.run(ctx, dir, args...); err != nil {
		return zerr.Wrap(err, "composer update failed")
	}
	return nil
}

// InstalledPackages lists the installed package names.
func (c *Client) InstalledPackages(ctx context.Context, dir string) (domain.DependencySet, error) {
	out, err := c.run(ctx, dir, "show", "--name-only")
	if err != nil {
		return domain.DependencySet{}, zerr.Wrap(err, "failed to list installed packages")
	}
	return domain.ParsePackageList(out), nil
}

// Require declares requirements without updating the lock file.
func (c *Client) Require(ctx context.Context, dir string, reqs []domain.Requirement) error {
	if len(reqs) == 0 {
		return nil
	}
	args := make([]string, 0, len(reqs)+2)
	args = append(args, "require", "--no-update")
	for _, r := range reqs {
		args = append(args, r.String())
	}
	if _, err := c.run(ctx, dir, args...); err != nil {
		return zerr.Wrap(err, "composer require failed")
	}
	return nil
}

// AddRepository registers repositories.<key> in the project configuration.
func (c *Client) AddRepository(ctx context.Context, dir, key, repoType, url string) error {
	if _, err := c.run(ctx, dir, "config", "repositories."+key, repoType, url); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to register repository"), "repository", key)
	}
	return nil
}

// DumpAutoload regenerates the authoritative classmap autoloader.
func (c *Client) DumpAutoload(ctx context.Context, dir string) error {
	_, err := c.run(ctx, dir, "dump-autoload", "--no-interaction", "--optimize", "--classmap-authoritative")
	if err != nil {
		return zerr.Wrap(err, "composer dump-autoload failed")
	}
	return nil
}

func (c *Client) run(ctx context.Context, dir string, args ...string) (string, error) {
	res, err := c.exec.Run(ctx, domain.Command{
		Name: binary,
		Args: args,
		Dir:  dir,
		Env:  map[string]string{"COMPOSER_NO_INTERACTION": "1"},
	})
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}
