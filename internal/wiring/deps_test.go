package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskrun/internal/app"
	_ "go.trai.ch/taskrun/internal/wiring"
)

// TestGraftDependencies resolves the full node graph the CLI starts from.
func TestGraftDependencies(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](
		context.Background(),
		graft.WithCache(graft.NewMemoryCache()),
	)
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
