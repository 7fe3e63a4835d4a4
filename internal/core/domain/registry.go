// Package domain contains the core domain models and the task registry.
package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Pipeline is a named, ordered list of steps. A step names either a task or
// another pipeline.
type Pipeline struct {
	Name  string
	Steps []string
}

// Registry holds task definitions and the pipelines that reference them.
// It is populated once at startup and only read afterwards.
type Registry struct {
	tasks         map[string]TaskDefinition
	pipelines     map[string]Pipeline
	taskOrder     []string
	pipelineOrder []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		tasks:     make(map[string]TaskDefinition),
		pipelines: make(map[string]Pipeline),
	}
}

// AddTask registers a task definition.
// It returns an error if the name is already taken by a task or pipeline.
func (r *Registry) AddTask(t TaskDefinition) error {
	if r.has(t.Name) {
		return zerr.With(ErrTaskAlreadyExists, "task_name", t.Name)
	}
	r.tasks[t.Name] = t
	r.taskOrder = append(r.taskOrder, t.Name)
	return nil
}

// AddPipeline registers a pipeline. Steps may reference names registered later;
// they are resolved by Expand.
func (r *Registry) AddPipeline(p Pipeline) error {
	if r.has(p.Name) {
		return zerr.With(ErrPipelineAlreadyExists, "pipeline", p.Name)
	}
	if len(p.Steps) == 0 {
		return zerr.With(ErrEmptyPipeline, "pipeline", p.Name)
	}
	p.Steps = slices.Clone(p.Steps)
	r.pipelines[p.Name] = p
	r.pipelineOrder = append(r.pipelineOrder, p.Name)
	return nil
}

func (r *Registry) has(name string) bool {
	_, isTask := r.tasks[name]
	_, isPipeline := r.pipelines[name]
	return isTask || isPipeline
}

// Task returns the task definition registered under name.
func (r *Registry) Task(name string) (TaskDefinition, bool) {
	t, ok := r.tasks[name]
	return t, ok
}

// Pipeline returns the pipeline registered under name.
func (r *Registry) Pipeline(name string) (Pipeline, bool) {
	p, ok := r.pipelines[name]
	if !ok {
		return Pipeline{}, false
	}
	p.Steps = slices.Clone(p.Steps)
	return p, true
}

// Tasks yields task definitions in registration order.
func (r *Registry) Tasks() iter.Seq[TaskDefinition] {
	return func(yield func(TaskDefinition) bool) {
		for _, name := range r.taskOrder {
			if !yield(r.tasks[name]) {
				return
			}
		}
	}
}

// Pipelines yields pipelines in registration order.
func (r *Registry) Pipelines() iter.Seq[Pipeline] {
	return func(yield func(Pipeline) bool) {
		for _, name := range r.pipelineOrder {
			p := r.pipelines[name]
			p.Steps = slices.Clone(p.Steps)
			if !yield(p) {
				return
			}
		}
	}
}

// Expand resolves name into the ordered list of tasks it runs.
// A task name expands to itself; pipelines are flattened depth first.
func (r *Registry) Expand(name string) ([]TaskDefinition, error) {
	var (
		plan []TaskDefinition
		path []string
	)
	visiting := make(map[string]bool)

	var visit func(n string) error
	visit = func(n string) error {
		if t, ok := r.tasks[n]; ok {
			plan = append(plan, t)
			return nil
		}

		p, ok := r.pipelines[n]
		if !ok {
			err := zerr.With(ErrTaskNotFound, "name", n)
			if len(path) > 0 {
				err = zerr.With(err, "referenced_by", path[len(path)-1])
			}
			return err
		}

		if visiting[n] {
			return buildCycleError(path, n)
		}
		visiting[n] = true
		path = append(path, n)

		for _, step := range p.Steps {
			if err := visit(step); err != nil {
				return err
			}
		}

		visiting[n] = false
		path = path[:len(path)-1]
		return nil
	}

	if err := visit(name); err != nil {
		return nil, err
	}
	return plan, nil
}

// Validate expands every pipeline once, surfacing dangling references and cycles.
func (r *Registry) Validate() error {
	for _, name := range r.pipelineOrder {
		if _, err := r.Expand(name); err != nil {
			return err
		}
	}
	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func buildCycleError(path []string, repeated string) error {
	start := slices.Index(path, repeated)
	cycle := append(slices.Clone(path[start:]), repeated)
	return zerr.With(ErrCycleDetected, "cycle", strings.Join(cycle, " -> "))
}
