// Package external runs the symbol prefixer and the archive packager, two external
// collaborators configured as argv templates.
package external

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"

	"go.trai.ch/pharbuild/internal/core/domain"
	"go.trai.ch/pharbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Template placeholders substituted in tool argv entries.
const (
	placeholderBuildDir = "{buildDir}"
	placeholderOutput   = "{output}"
	placeholderRequest  = "{request}"
)

// Tools implements ports.Prefixer and ports.Packager.
type Tools struct {
	exec ports.Executor
}

// NewTools creates a new Tools writing request files to the OS temp directory.
func NewTools(exec ports.Executor) *Tools {
	return &Tools{exec: exec}
}

// Prefix runs the configured prefixer against the build directory.
func (t *Tools) Prefix(ctx context.Context, req ports.PrefixRequest) error {
	return t.invoke(ctx, "prefixer", req.Command, req, map[string]string{
		placeholderBuildDir: req.BuildDir,
	}, req.BuildDir)
}

// Package runs the configured packager. An existing archive at req.Output is removed first.
func (t *Tools) Package(ctx context.Context, req ports.PackageRequest) error {
	if err := os.Remove(req.Output); err != nil && !errors.Is(err, os.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove previous archive"), "path", req.Output)
	}
	return t.invoke(ctx, "packager", req.Command, req, map[string]string{
		placeholderBuildDir: req.BuildDir,
		placeholderOutput:   req.Output,
	}, req.BuildDir)
}

func (t *Tools) invoke(
	ctx context.Context,
	tool string,
	command domain.ToolCommand,
	request any,
	values map[string]string,
	dir string,
) error {
	if len(command.Command) == 0 {
		return errors.Join(domain.ErrToolNotConfigured, zerr.With(zerr.New(tool+" command is empty"), "tool", tool))
	}

	requestPath, cleanup, err := t.writeRequest(tool, request)
	if err != nil {
		return err
	}
	defer cleanup()
	values[placeholderRequest] = requestPath

	argv := expand(command.Command, values)
	cmd := domain.Command{Name: argv[0], Args: argv[1:], Dir: dir}
	if _, err := t.exec.Run(ctx, cmd); err != nil {
		return zerr.With(zerr.Wrap(err, tool+" failed"), "tool", tool)
	}
	return nil
}

// writeRequest stores the request as JSON in a temporary file.
func (t *Tools) writeRequest(tool string, request any) (string, func(), error) {
	data, err := json.MarshalIndent(request, "", "  ")
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to encode "+tool+" request")
	}

	f, err := os.CreateTemp("", "pharbuild-"+tool+"-*.json")
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to create "+tool+" request file")
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, zerr.With(zerr.Wrap(err, "failed to write request file"), "path", path)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, zerr.With(zerr.Wrap(err, "failed to close request file"), "path", path)
	}
	return path, cleanup, nil
}

// expand substitutes placeholders in every argv entry. Unknown braces are left as is.
func expand(argv []string, values map[string]string) []string {
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, k, v)
	}
	r := strings.NewReplacer(pairs...)

	out := make([]string, len(argv))
	for i, arg := range argv {
		out[i] = r.Replace(arg)
	}
	return out
}
