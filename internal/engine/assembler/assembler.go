// Package assembler builds the run configuration and the task registry from the path conventions.
package assembler

import (
	"fmt"
	"path"

	"go.trai.ch/taskrun/internal/core/domain"
	"go.trai.ch/taskrun/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultPipeline runs when no names are given on the command line.
	DefaultPipeline = "default"
	// AuthorsFile receives the contributor list written by the authors task.
	AuthorsFile = "AUTHORS.txt"
)

// Assembler assembles the immutable run configuration.
type Assembler struct {
	discoverer ports.FileDiscoverer
	loader     ports.ConfigLoader
}

// New creates a new Assembler.
func New(discoverer ports.FileDiscoverer, loader ports.ConfigLoader) *Assembler {
	return &Assembler{
		discoverer: discoverer,
		loader:     loader,
	}
}

// Assemble discovers the app files, loads the project metadata and returns
// a configuration bound to a validated registry.
func (a *Assembler) Assemble(settings domain.Settings) (*domain.Config, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	appFiles := a.discoverer.DiscoverAppFiles(settings.SourceDir)

	project, err := a.loader.LoadProject(settings.MetadataFile)
	if err != nil {
		return nil, err
	}

	cfg := domain.NewConfig(settings, appFiles, project)

	reg, err := Register(cfg)
	if err != nil {
		return nil, err
	}

	return cfg.WithRegistry(reg), nil
}

// Register creates the task definitions and pipelines for cfg.
func Register(cfg *domain.Config) (*domain.Registry, error) {
	s := cfg.Settings()
	name := cfg.OutputName()
	project := cfg.Project()

	tasks := []domain.TaskDefinition{
		{
			Name:    "jshint",
			Plugin:  domain.PluginLint,
			Options: domain.LintOptions{Files: cfg.Scripts()},
		},
		{
			Name:    "connect",
			Plugin:  domain.PluginServer,
			Options: domain.ServerOptions{Port: s.Port, Base: s.ServerBase},
		},
		{
			Name:   "qunit",
			Plugin: domain.PluginQUnit,
			Options: domain.QUnitOptions{
				URLs:    []string{fmt.Sprintf("http://localhost:%d/%s/%s", s.Port, s.TestDir, s.TestPage)},
				Timeout: s.TestTimeout,
			},
		},
		{
			Name:   "replace",
			Plugin: domain.PluginReplace,
			Options: domain.ReplaceOptions{
				Prefix:  "@@",
				Project: project,
				Files: []domain.FileMapping{
					{Src: []string{path.Join(s.SourceDir, "*.js")}, Dest: path.Join(s.BuildDir, name+".js")},
					{Src: []string{path.Join(s.SourceDir, "*.css")}, Dest: path.Join(s.BuildDir, name+".css")},
				},
			},
		},
		{
			Name:   "uglify",
			Plugin: domain.PluginMinify,
			Options: domain.MinifyOptions{
				Project: project,
				Files: []domain.FileMapping{
					{Src: []string{path.Join(s.BuildDir, "*.js")}, Dest: path.Join(s.BuildDir, name+".min.js")},
				},
			},
		},
		{
			Name:    "compare_size",
			Plugin:  domain.PluginSizes,
			Options: domain.SizeOptions{Dir: s.BuildDir, Cache: s.SizeCacheFile},
		},
		{
			Name:    "authors",
			Plugin:  domain.PluginAuthors,
			Options: domain.AuthorsOptions{Dest: AuthorsFile},
		},
	}

	pipelines := []domain.Pipeline{
		{Name: DefaultPipeline, Steps: []string{"jshint", "test", "build", "compare_size"}},
		{Name: "lint", Steps: []string{"jshint"}},
		{Name: "test", Steps: []string{"connect", "qunit"}},
		{Name: "build", Steps: []string{"replace", "uglify"}},
	}

	reg := domain.NewRegistry()
	for _, t := range tasks {
		if err := reg.AddTask(t); err != nil {
			return nil, err
		}
	}
	for _, p := range pipelines {
		if err := reg.AddPipeline(p); err != nil {
			return nil, err
		}
	}

	if err := reg.Validate(); err != nil {
		return nil, zerr.Wrap(err, "invalid task registry")
	}
	return reg, nil
}
