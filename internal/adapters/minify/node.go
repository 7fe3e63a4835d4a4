package minify

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskrun/internal/adapters/fs"
	"go.trai.ch/taskrun/internal/core/ports"
)

// NodeID is the unique identifier for the minify handler node.
const NodeID graft.ID = "adapter.plugin.minify"

func init() {
	graft.Register(graft.Node[*Minifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.GlobberNodeID},
		Run: func(ctx context.Context) (*Minifier, error) {
			globber, err := graft.Dep[ports.Globber](ctx)
			if err != nil {
				return nil, err
			}
			return NewMinifier(globber), nil
		},
	})
}
