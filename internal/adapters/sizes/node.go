package sizes

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskrun/internal/adapters/fs"
	"go.trai.ch/taskrun/internal/adapters/sizecache"
	"go.trai.ch/taskrun/internal/core/ports"
)

// NodeID is the unique identifier for the size report handler node.
const NodeID graft.ID = "adapter.plugin.sizes"

func init() {
	graft.Register(graft.Node[*Reporter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID, fs.HasherNodeID, sizecache.NodeID},
		Run: func(ctx context.Context) (*Reporter, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			open, err := graft.Dep[sizecache.Opener](ctx)
			if err != nil {
				return nil, err
			}
			return NewReporter(walker, hasher, open), nil
		},
	})
}
