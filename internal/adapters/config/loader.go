// Package config provides the settings and project metadata loader for taskrun.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"slices"
	"time"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/taskrun/internal/core/domain"
	"go.trai.ch/taskrun/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the settings file looked up in the working directory.
const DefaultFilename = "taskrun.yaml"

// Loader implements ports.ConfigLoader using a YAML settings file and a
// JSON metadata file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// LoadSettings reads the settings file at path layered over the defaults.
func (l *Loader) LoadSettings(path string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var taskfile Taskfile
	if err := yaml.Unmarshal(data, &taskfile); err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if err := l.apply(&settings, &taskfile); err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}

	if err := settings.Validate(); err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}

	return settings, nil
}

func (l *Loader) apply(s *domain.Settings, tf *Taskfile) error {
	setString(&s.SourceDir, tf.Paths.Source)
	setString(&s.BuildDir, tf.Paths.Build)
	setString(&s.TestDir, tf.Paths.Test)
	setString(&s.TestPage, tf.Test.Page)
	setString(&s.ServerBase, tf.Server.Base)
	setString(&s.MetadataFile, tf.Metadata)
	setString(&s.SizeCacheFile, tf.Sizes.Cache)

	if tf.Paths.UtilFiles != nil {
		s.UtilFiles = slices.Clone(tf.Paths.UtilFiles)
	}
	if tf.Server.Port != 0 {
		s.Port = tf.Server.Port
	}
	if tf.Test.Timeout != "" {
		timeout, err := time.ParseDuration(tf.Test.Timeout)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "field", "test.timeout")
		}
		s.TestTimeout = timeout
	}

	if tf.Version != "" && tf.Version != "1" {
		l.Logger.Warn("unknown taskrun.yaml version " + tf.Version + ", reading it as version 1")
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// LoadProject reads the project metadata file at path. Fields may be empty;
// the tasks that need them report what is missing. A version, when present,
// must be a semantic version.
func (l *Loader) LoadProject(path string) (domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.Project{}, zerr.With(zerr.Wrap(err, domain.ErrMetadataReadFailed.Error()), "path", path)
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return domain.Project{}, zerr.With(zerr.Wrap(err, domain.ErrMetadataParseFailed.Error()), "path", path)
	}

	if pkg.Version != "" {
		if _, err := semver.StrictNewVersion(pkg.Version); err != nil {
			err = zerr.Wrap(err, domain.ErrInvalidVersion.Error())
			return domain.Project{}, zerr.With(zerr.With(err, "version", pkg.Version), "path", path)
		}
	}

	return domain.Project{
		Title:       pkg.Title,
		Description: pkg.Description,
		Version:     pkg.Version,
		Author:      domain.Author{Name: pkg.Author.Name, Email: pkg.Author.Email},
		License:     pkg.License,
		Homepage:    pkg.Homepage,
	}, nil
}
