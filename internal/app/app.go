// Package app implements the application layer for taskrun.
package app

import (
	"context"
	"io"

	"go.trai.ch/taskrun/internal/core/domain"
	"go.trai.ch/taskrun/internal/core/ports"
	"go.trai.ch/taskrun/internal/engine/assembler"
	"go.trai.ch/taskrun/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	assembler    *assembler.Assembler
	scheduler    *scheduler.Scheduler
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// RunOptions configures a single invocation.
type RunOptions struct {
	// ConfigPath is the settings file. A missing file means the defaults.
	ConfigPath string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	asm *assembler.Assembler,
	sched *scheduler.Scheduler,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		assembler:    asm,
		scheduler:    sched,
		telemetry:    telemetry,
		logger:       logger,
	}
}

// WithOutput redirects task output, mainly for tests.
func (a *App) WithOutput(w io.Writer) *App {
	a.scheduler.SetOutput(w)
	return a
}

// Run assembles the configuration and runs the named pipelines or tasks in
// order. No names means the default pipeline.
func (a *App) Run(ctx context.Context, names []string, opts RunOptions) error {
	cfg, err := a.Configure(opts)
	if err != nil {
		return err
	}

	defer func() {
		if err := a.telemetry.Close(); err != nil {
			a.logger.Error(zerr.Wrap(err, "failed to close telemetry"))
		}
	}()

	return a.scheduler.Run(ctx, cfg, names)
}

// Configure loads the settings and assembles the configuration without running anything.
func (a *App) Configure(opts RunOptions) (*domain.Config, error) {
	settings, err := a.configLoader.LoadSettings(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	cfg, err := a.assembler.Assemble(settings)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to assemble configuration")
	}

	if len(cfg.AppFiles()) == 0 {
		a.logger.Warn("no application files found in " + settings.SourceDir)
	}

	return cfg, nil
}
