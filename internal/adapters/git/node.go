package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pharbuild/internal/adapters/shell"
	"go.trai.ch/pharbuild/internal/core/ports"
)

// NodeID is the unique identifier for the version control Graft node.
const NodeID graft.ID = "adapter.git"

func init() {
	graft.Register(graft.Node[ports.VersionControl]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.VersionControl, error) {
			exec, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(exec), nil
		},
	})
}
