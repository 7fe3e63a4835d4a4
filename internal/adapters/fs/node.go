package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskrun/internal/core/ports"
)

const (
	// DiscovererNodeID is the unique identifier for the app file discoverer node.
	DiscovererNodeID graft.ID = "adapter.fs.discoverer"
	// GlobberNodeID is the unique identifier for the pattern expansion node.
	GlobberNodeID graft.ID = "adapter.fs.globber"
	// WalkerNodeID is the unique identifier for the directory walker node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// HasherNodeID is the unique identifier for the content hasher node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.FileDiscoverer]{
		ID:        DiscovererNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileDiscoverer, error) {
			return NewDiscoverer(), nil
		},
	})

	graft.Register(graft.Node[ports.Globber]{
		ID:        GlobberNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Globber, error) {
			return NewGlobber(), nil
		},
	})

	// Walker is concrete; only the size report needs it.
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
