package ports

import "go.trai.ch/taskrun/internal/core/domain"

// ConfigLoader defines the interface for loading settings and project metadata.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// LoadSettings reads the settings file at path layered over the defaults.
	// A missing file yields the defaults.
	LoadSettings(path string) (domain.Settings, error)

	// LoadProject reads the project metadata file at path.
	LoadProject(path string) (domain.Project, error)
}
