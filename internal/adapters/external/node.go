package external

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pharbuild/internal/adapters/shell"
	"go.trai.ch/pharbuild/internal/core/ports"
)

const (
	// PrefixerNodeID is the unique identifier for the prefixer Graft node.
	PrefixerNodeID graft.ID = "adapter.external.prefixer"
	// PackagerNodeID is the unique identifier for the packager Graft node.
	PackagerNodeID graft.ID = "adapter.external.packager"
)

func init() {
	graft.Register(graft.Node[ports.Prefixer]{
		ID:        PrefixerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Prefixer, error) {
			exec, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewTools(exec), nil
		},
	})

	graft.Register(graft.Node[ports.Packager]{
		ID:        PackagerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Packager, error) {
			exec, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewTools(exec), nil
		},
	})
}
