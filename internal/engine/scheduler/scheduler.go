// Package scheduler runs expanded pipelines one task at a time.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"go.trai.ch/taskrun/internal/core/domain"
	"go.trai.ch/taskrun/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPipeline runs when Run is called without names.
const DefaultPipeline = "default"

// Scheduler dispatches tasks to the handler registered for their plugin kind.
type Scheduler struct {
	handlers  map[domain.PluginKind]ports.TaskHandler
	telemetry ports.Telemetry

	outMu sync.RWMutex
	out   io.Writer

	mu         sync.RWMutex
	taskStatus map[string]domain.TaskStatus
}

// NewScheduler creates a new Scheduler. A handler registered later replaces
// an earlier one for the same plugin kind.
func NewScheduler(telemetry ports.Telemetry, handlers ...ports.TaskHandler) *Scheduler {
	s := &Scheduler{
		handlers:   make(map[domain.PluginKind]ports.TaskHandler, len(handlers)),
		telemetry:  telemetry,
		out:        os.Stdout,
		taskStatus: make(map[string]domain.TaskStatus),
	}
	for _, h := range handlers {
		s.handlers[h.Plugin()] = h
	}
	return s
}

// SetOutput sets the writer task output is printed to. A nil writer restores stdout.
func (s *Scheduler) SetOutput(w io.Writer) {
	s.outMu.Lock()
	defer s.outMu.Unlock()
	if w == nil {
		w = os.Stdout
	}
	s.out = w
}

func (s *Scheduler) output() io.Writer {
	s.outMu.RLock()
	defer s.outMu.RUnlock()
	return s.out
}

// Status returns the status of the named task in the latest run.
// Tasks that were not planned report an empty status.
func (s *Scheduler) Status(name string) domain.TaskStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.taskStatus[name]
}

func (s *Scheduler) resetStatus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.taskStatus)
}

func (s *Scheduler) updateStatus(name string, status domain.TaskStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taskStatus[name] = status
}

// Run expands names against the registry of cfg and executes the resulting
// tasks in order. Every name is resolved before the first task starts. The
// run stops at the first failing task and ends with a timing summary.
func (s *Scheduler) Run(ctx context.Context, cfg *domain.Config, names []string) (err error) {
	plan, err := s.plan(cfg, names)
	if err != nil {
		return err
	}

	out := s.output()
	defer func() {
		if closeErr := s.closeHandlers(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()
	defer func() {
		_ = s.telemetry.Summarize(out)
	}()

	for i, task := range plan {
		if ctxErr := ctx.Err(); ctxErr != nil {
			s.skip(plan[i:])
			return ctxErr
		}

		if runErr := s.runTask(ctx, task, out); runErr != nil {
			s.skip(plan[i+1:])
			_, _ = fmt.Fprintf(out, "\nAborted due to errors.\n")
			return zerr.With(zerr.Wrap(runErr, domain.ErrTaskExecutionFailed.Error()), "task", task.Name)
		}
	}

	_, _ = fmt.Fprintf(out, "\nDone, without errors.\n")
	return nil
}

// plan expands names and checks that every task has a handler. Statuses
// from an earlier run are cleared first.
func (s *Scheduler) plan(cfg *domain.Config, names []string) ([]domain.TaskDefinition, error) {
	s.resetStatus()

	reg := cfg.Registry()
	if reg == nil {
		return nil, domain.ErrRegistryMissing
	}

	if len(names) == 0 {
		names = []string{DefaultPipeline}
	}

	var plan []domain.TaskDefinition
	for _, name := range names {
		tasks, err := reg.Expand(name)
		if err != nil {
			return nil, err
		}
		plan = append(plan, tasks...)
	}

	for _, task := range plan {
		if _, ok := s.handlers[task.Plugin]; !ok {
			err := zerr.With(domain.ErrPluginNotFound, "plugin", string(task.Plugin))
			return nil, zerr.With(err, "task", task.Name)
		}
		s.updateStatus(task.Name, domain.TaskStatusPending)
	}

	return plan, nil
}

func (s *Scheduler) runTask(ctx context.Context, task domain.TaskDefinition, out io.Writer) error {
	s.updateStatus(task.Name, domain.TaskStatusRunning)

	ctx, vertex := s.telemetry.Record(ctx, task.Name)

	_, _ = fmt.Fprintf(out, "\nRunning %q task\n", task.Name)
	err := s.handlers[task.Plugin].Run(ctx, task, out)
	if err != nil {
		vertex.Log(domain.LogLevelError, err.Error())
		s.updateStatus(task.Name, domain.TaskStatusFailed)
	} else {
		s.updateStatus(task.Name, domain.TaskStatusCompleted)
	}

	vertex.Complete(err)
	return err
}

func (s *Scheduler) skip(tasks []domain.TaskDefinition) {
	for _, task := range tasks {
		if !s.Status(task.Name).IsTerminal() {
			s.updateStatus(task.Name, domain.TaskStatusSkipped)
		}
	}
}

// closeHandlers releases handlers that hold resources across tasks.
func (s *Scheduler) closeHandlers() error {
	var errs error
	for _, h := range s.handlers {
		if c, ok := h.(io.Closer); ok {
			errs = errors.Join(errs, c.Close())
		}
	}
	return errs
}
