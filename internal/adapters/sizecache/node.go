package sizecache

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the size store opener node.
const NodeID graft.ID = "adapter.size_store"

func init() {
	// The cache file is named by settings loaded at run time, so the node
	// provides the opener rather than an open store.
	graft.Register(graft.Node[Opener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Opener, error) {
			return Open, nil
		},
	})
}
