package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskrun/internal/app"
)

const packageJSON = `{
  "title": "Widget",
  "description": "A tiny widget",
  "version": "1.2.3",
  "author": {"name": "Jane Doe", "email": "jane@example.com"},
  "license": "MIT",
  "homepage": "https://example.com/widget"
}`

func quiet(a *app.App) {
	a.WithOutput(io.Discard)
}

func writeProject(t *testing.T, dir string) {
	t.Helper()
	files := map[string]string{
		"package.json":    packageJSON,
		"src/widget.js":   "window.widget = function () { return '@@version'; };\n",
		"src/widget.css":  ".widget { color: red; }\n",
		"Gruntfile.js":    "module.exports = function () {};\n",
		"test/unit/a.js":  "window.ok = true;\n",
		"test/index.html": "<!doctype html>\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		expectedExit int
	}{
		{"Lint pipeline", []string{"lint"}, 0},
		{"Build pipeline", []string{"build"}, 0},
		{"Bare task name", []string{"replace"}, 0},
		{"Unknown name", []string{"deploy"}, 1},
		{"List tasks", []string{"tasks"}, 0},
		{"Version", []string{"version"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeProject(t, dir)
			t.Chdir(dir)

			assert.Equal(t, tt.expectedExit, run(tt.args, quiet))
		})
	}
}

func TestRun_BuildWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir)
	t.Chdir(dir)

	require.Equal(t, 0, run([]string{"build"}, quiet))

	data, err := os.ReadFile("build/widget.js")
	require.NoError(t, err)
	assert.Contains(t, string(data), "'1.2.3'")
	assert.FileExists(t, "build/widget.css")
	assert.FileExists(t, "build/widget.min.js")
}

func TestRun_PrintsTimings(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir)
	t.Chdir(dir)

	var out bytes.Buffer
	require.Equal(t, 0, run([]string{"build"}, func(a *app.App) { a.WithOutput(&out) }))

	assert.Contains(t, out.String(), "Execution time:")
	assert.Regexp(t, `(?m)^  replace\s+\S+\s+ok$`, out.String())
	assert.Regexp(t, `(?m)^  uglify\s+\S+\s+ok$`, out.String())
}

func TestRun_ChangeDir(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir)
	t.Chdir(t.TempDir())

	require.Equal(t, 0, run([]string{"-C", dir, "lint"}, quiet))
}

func TestRun_MalformedConfig(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte("paths: [unclosed"), 0o600))
	t.Chdir(dir)

	assert.Equal(t, 1, run([]string{"-c", "custom.yaml", "lint"}, quiet))
}

func TestRun_MissingMetadata(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "package.json")))
	t.Chdir(dir)

	assert.Equal(t, 1, run([]string{"lint"}, quiet))
}
