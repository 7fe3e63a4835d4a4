package lint

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskrun/internal/adapters/fs"
	"go.trai.ch/taskrun/internal/core/ports"
)

// NodeID is the unique identifier for the lint handler node.
const NodeID graft.ID = "adapter.plugin.lint"

func init() {
	graft.Register(graft.Node[*Linter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.GlobberNodeID},
		Run: func(ctx context.Context) (*Linter, error) {
			globber, err := graft.Dep[ports.Globber](ctx)
			if err != nil {
				return nil, err
			}
			return NewLinter(globber), nil
		},
	})
}
