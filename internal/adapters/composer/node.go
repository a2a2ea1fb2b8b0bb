package composer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pharbuild/internal/adapters/shell"
	"go.trai.ch/pharbuild/internal/core/ports"
)

const (
	// ClientNodeID is the unique identifier for the package manager Graft node.
	ClientNodeID graft.ID = "adapter.composer"
	// ManifestNodeID is the unique identifier for the manifest store Graft node.
	ManifestNodeID graft.ID = "adapter.composer.manifest"
	// LockfileNodeID is the unique identifier for the lock file reader Graft node.
	LockfileNodeID graft.ID = "adapter.composer.lockfile"
)

func init() {
	graft.Register(graft.Node[ports.PackageManager]{
		ID:        ClientNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.PackageManager, error) {
			exec, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(exec), nil
		},
	})

	graft.Register(graft.Node[ports.ManifestStore]{
		ID:        ManifestNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestStore, error) {
			return NewFiles(), nil
		},
	})

	graft.Register(graft.Node[ports.LockfileReader]{
		ID:        LockfileNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockfileReader, error) {
			return NewFiles(), nil
		},
	})
}
