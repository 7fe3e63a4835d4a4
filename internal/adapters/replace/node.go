package replace

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskrun/internal/adapters/fs"
	"go.trai.ch/taskrun/internal/core/ports"
)

// NodeID is the unique identifier for the replace handler node.
const NodeID graft.ID = "adapter.plugin.replace"

func init() {
	graft.Register(graft.Node[*Replacer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.GlobberNodeID},
		Run: func(ctx context.Context) (*Replacer, error) {
			globber, err := graft.Dep[ports.Globber](ctx)
			if err != nil {
				return nil, err
			}
			return NewReplacer(globber), nil
		},
	})
}
