package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskrun/internal/adapters/config"
	"go.trai.ch/taskrun/internal/core/domain"
	"go.trai.ch/taskrun/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return config.NewLoader(log), log
}

func TestLoadSettings_MissingFileYieldsDefaults(t *testing.T) {
	loader, _ := newLoader(t)

	settings, err := loader.LoadSettings(filepath.Join(t.TempDir(), config.DefaultFilename))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestLoadSettings_Overrides(t *testing.T) {
	content := `
version: "1"
paths:
  source: lib
  build: dist
  utilFiles: ["tools/*.js"]
server:
  port: 9001
test:
  page: suite.html
  timeout: 30s
sizes:
  cache: .sizes.json
`
	path := writeFile(t, t.TempDir(), config.DefaultFilename, content)
	loader, _ := newLoader(t)

	settings, err := loader.LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "lib", settings.SourceDir)
	assert.Equal(t, "dist", settings.BuildDir)
	assert.Equal(t, "test", settings.TestDir, "unset fields keep their default")
	assert.Equal(t, []string{"tools/*.js"}, settings.UtilFiles)
	assert.Equal(t, 9001, settings.Port)
	assert.Equal(t, "suite.html", settings.TestPage)
	assert.Equal(t, 30*time.Second, settings.TestTimeout)
	assert.Equal(t, ".sizes.json", settings.SizeCacheFile)
	assert.Equal(t, "package.json", settings.MetadataFile)
}

func TestLoadSettings_EmptyUtilFiles(t *testing.T) {
	path := writeFile(t, t.TempDir(), config.DefaultFilename, "paths:\n  utilFiles: []\n")
	loader, _ := newLoader(t)

	settings, err := loader.LoadSettings(path)
	require.NoError(t, err)
	assert.Empty(t, settings.UtilFiles)
}

func TestLoadSettings_UnknownVersionWarns(t *testing.T) {
	path := writeFile(t, t.TempDir(), config.DefaultFilename, "version: \"2\"\n")
	loader, log := newLoader(t)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	_, err := loader.LoadSettings(path)
	require.NoError(t, err)
}

func TestLoadSettings_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected error
	}{
		{"Malformed YAML", "paths: [", domain.ErrConfigParseFailed},
		{"Bad timeout", "test:\n  timeout: soon\n", domain.ErrConfigParseFailed},
		{"Port out of range", "server:\n  port: 70000\n", domain.ErrInvalidSettings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), config.DefaultFilename, tt.content)
			loader, _ := newLoader(t)

			_, err := loader.LoadSettings(path)
			require.ErrorContains(t, err, tt.expected.Error())

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			assert.Equal(t, path, zErr.Metadata()["path"])
		})
	}
}

func TestLoadSettings_ReadError(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.LoadSettings(t.TempDir())
	require.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}

func TestLoadProject(t *testing.T) {
	content := `{
  "name": "widget",
  "title": "Widget",
  "description": "A tiny widget",
  "version": "1.2.3",
  "author": {"name": "Jane Doe", "email": "jane@example.com"},
  "license": "MIT",
  "homepage": "https://example.com/widget",
  "devDependencies": {"grunt": "~0.4.5"}
}`
	path := writeFile(t, t.TempDir(), "package.json", content)
	loader, _ := newLoader(t)

	project, err := loader.LoadProject(path)
	require.NoError(t, err)
	assert.Equal(t, domain.Project{
		Title:       "Widget",
		Description: "A tiny widget",
		Version:     "1.2.3",
		Author:      domain.Author{Name: "Jane Doe", Email: "jane@example.com"},
		License:     "MIT",
		Homepage:    "https://example.com/widget",
	}, project)
}

func TestLoadProject_PartialMetadata(t *testing.T) {
	path := writeFile(t, t.TempDir(), "package.json", `{"title": "Widget"}`)
	loader, _ := newLoader(t)

	project, err := loader.LoadProject(path)
	require.NoError(t, err)
	assert.Equal(t, "Widget", project.Title)
	assert.Empty(t, project.Version)
}

func TestLoadProject_Errors(t *testing.T) {
	dir := t.TempDir()
	loader, _ := newLoader(t)

	_, err := loader.LoadProject(filepath.Join(dir, "missing.json"))
	require.ErrorContains(t, err, domain.ErrMetadataReadFailed.Error())

	_, err = loader.LoadProject(writeFile(t, dir, "broken.json", `{"title": `))
	require.ErrorContains(t, err, domain.ErrMetadataParseFailed.Error())

	_, err = loader.LoadProject(writeFile(t, dir, "version.json", `{"version": "one"}`))
	require.ErrorContains(t, err, domain.ErrInvalidVersion.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, "one", zErr.Metadata()["version"])
}
