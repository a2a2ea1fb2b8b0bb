package compiler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pharbuild/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pharbuild/internal/adapters/composer"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pharbuild/internal/adapters/external"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pharbuild/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pharbuild/internal/adapters/git"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pharbuild/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pharbuild/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pharbuild/internal/core/ports"
)

// NodeID is the unique identifier for the compiler Graft node.
const NodeID graft.ID = "engine.compiler"

func init() {
	graft.Register(graft.Node[*Compiler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			git.NodeID,
			composer.ClientNodeID,
			composer.ManifestNodeID,
			composer.LockfileNodeID,
			fs.WorkspaceNodeID,
			fs.HasherNodeID,
			external.PrefixerNodeID,
			external.PackagerNodeID,
			cas.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runNode,
	})
}

//nolint:cyclop // one lookup per collaborator
func runNode(ctx context.Context) (*Compiler, error) {
	var (
		deps Deps
		err  error
	)

	if deps.VCS, err = graft.Dep[ports.VersionControl](ctx); err != nil {
		return nil, err
	}
	if deps.Packages, err = graft.Dep[ports.PackageManager](ctx); err != nil {
		return nil, err
	}
	if deps.Manifests, err = graft.Dep[ports.ManifestStore](ctx); err != nil {
		return nil, err
	}
	if deps.Lockfiles, err = graft.Dep[ports.LockfileReader](ctx); err != nil {
		return nil, err
	}
	if deps.Workspace, err = graft.Dep[ports.Workspace](ctx); err != nil {
		return nil, err
	}
	if deps.Hasher, err = graft.Dep[ports.Hasher](ctx); err != nil {
		return nil, err
	}
	if deps.Prefixer, err = graft.Dep[ports.Prefixer](ctx); err != nil {
		return nil, err
	}
	if deps.Packager, err = graft.Dep[ports.Packager](ctx); err != nil {
		return nil, err
	}
	if deps.Store, err = graft.Dep[ports.BuildRecordStore](ctx); err != nil {
		return nil, err
	}
	if deps.Telemetry, err = graft.Dep[ports.Telemetry](ctx); err != nil {
		return nil, err
	}
	if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}

	return NewCompiler(deps), nil
}
