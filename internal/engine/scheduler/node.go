package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskrun/internal/adapters/authors"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/taskrun/internal/adapters/lint"               //nolint:depguard // Wired in engine wiring
	"go.trai.ch/taskrun/internal/adapters/minify"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/taskrun/internal/adapters/qunit"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/taskrun/internal/adapters/replace"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/taskrun/internal/adapters/server"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/taskrun/internal/adapters/sizes"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/taskrun/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/taskrun/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			progrock.NodeID,
			lint.NodeID,
			server.NodeID,
			qunit.NodeID,
			replace.NodeID,
			minify.NodeID,
			sizes.NodeID,
			authors.NodeID,
		},
		Run: runSchedulerNode,
	})
}

func runSchedulerNode(ctx context.Context) (*Scheduler, error) {
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	linter, err := graft.Dep[*lint.Linter](ctx)
	if err != nil {
		return nil, err
	}

	srv, err := graft.Dep[*server.Server](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[*qunit.Runner](ctx)
	if err != nil {
		return nil, err
	}

	replacer, err := graft.Dep[*replace.Replacer](ctx)
	if err != nil {
		return nil, err
	}

	minifier, err := graft.Dep[*minify.Minifier](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[*sizes.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[*authors.Writer](ctx)
	if err != nil {
		return nil, err
	}

	return NewScheduler(telemetry, linter, srv, runner, replacer, minifier, reporter, writer), nil
}
