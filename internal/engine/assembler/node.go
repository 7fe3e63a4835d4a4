package assembler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskrun/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/taskrun/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/taskrun/internal/core/ports"
)

// NodeID is the unique identifier for the assembler Graft node.
const NodeID graft.ID = "engine.assembler"

func init() {
	graft.Register(graft.Node[*Assembler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.DiscovererNodeID, config.NodeID},
		Run: func(ctx context.Context) (*Assembler, error) {
			discoverer, err := graft.Dep[ports.FileDiscoverer](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			return New(discoverer, loader), nil
		},
	})
}
