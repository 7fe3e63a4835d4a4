package qunit

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskrun/internal/adapters/logger"
	"go.trai.ch/taskrun/internal/core/ports"
)

// NodeID is the unique identifier for the QUnit handler node.
const NodeID graft.ID = "adapter.plugin.qunit"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Runner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
