package authors

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskrun/internal/adapters/shell"
	"go.trai.ch/taskrun/internal/core/ports"
)

// NodeID is the unique identifier for the authors handler node.
const NodeID graft.ID = "adapter.plugin.authors"

func init() {
	graft.Register(graft.Node[*Writer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (*Writer, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(executor), nil
		},
	})
}
