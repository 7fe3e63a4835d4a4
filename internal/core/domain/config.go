package domain

import "slices"

// Config is assembled once at program entry and handed to task registration
// and the runner. Accessors return copies so callers cannot mutate it.
type Config struct {
	settings   Settings
	appFiles   []string
	files      []string
	scripts    []string
	outputName string
	project    Project
	registry   *Registry
}

// NewConfig derives the file sets and output name from settings and the
// discovered app files.
func NewConfig(settings Settings, appFiles []string, project Project) *Config {
	app := slices.Clone(appFiles)
	files := CombineFiles(settings.UtilFiles, app)
	return &Config{
		settings:   settings,
		appFiles:   app,
		files:      files,
		scripts:    FilterScripts(files),
		outputName: DeriveOutputName(app, settings.SourceDir),
		project:    project,
	}
}

// WithRegistry returns a copy of c bound to reg.
func (c *Config) WithRegistry(reg *Registry) *Config {
	cp := *c
	cp.registry = reg
	return &cp
}

// Settings returns the path conventions.
func (c *Config) Settings() Settings {
	s := c.settings
	s.UtilFiles = slices.Clone(s.UtilFiles)
	return s
}

// AppFiles returns the files discovered in the source directory.
func (c *Config) AppFiles() []string { return slices.Clone(c.appFiles) }

// Files returns utility files followed by app files.
func (c *Config) Files() []string { return slices.Clone(c.files) }

// Scripts returns the subset of Files ending in ".js".
func (c *Config) Scripts() []string { return slices.Clone(c.scripts) }

// OutputName returns the artifact base name.
func (c *Config) OutputName() string { return c.outputName }

// Project returns the project metadata.
func (c *Config) Project() Project { return c.project }

// Registry returns the task registry, nil before registration.
func (c *Config) Registry() *Registry { return c.registry }
