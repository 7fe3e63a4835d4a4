package ports

import (
	"context"
	"io"

	"go.trai.ch/taskrun/internal/core/domain"
)

// TaskHandler performs the work of every task registered for one plugin kind.
//
// Handlers that hold resources across tasks (a listening server) also
// implement io.Closer; the runner closes them when the run ends.
//
//go:generate mockgen -source=task_handler.go -destination=mocks/mock_task_handler.go -package=mocks
type TaskHandler interface {
	// Plugin returns the kind of task this handler accepts.
	Plugin() domain.PluginKind

	// Run executes task, writing human readable progress to out.
	Run(ctx context.Context, task domain.TaskDefinition, out io.Writer) error
}
