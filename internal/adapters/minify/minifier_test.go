package minify_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskrun/internal/adapters/fs"
	"go.trai.ch/taskrun/internal/adapters/minify"
	"go.trai.ch/taskrun/internal/core/domain"
	"go.trai.ch/zerr"
)

const banner = "/* Widget v.1.2.3 https://example.com/widget | License: MIT */"

func project() domain.Project {
	return domain.Project{
		Title:    "Widget",
		Version:  "1.2.3",
		License:  "MIT",
		Homepage: "https://example.com/widget",
	}
}

func minifyTask(p domain.Project) domain.TaskDefinition {
	return domain.TaskDefinition{
		Name:   "uglify",
		Plugin: domain.PluginMinify,
		Options: domain.MinifyOptions{
			Project: p,
			Files:   []domain.FileMapping{{Src: []string{"build/*.js"}, Dest: "build/widget.min.js"}},
		},
	}
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestMinifier_Run(t *testing.T) {
	t.Chdir(t.TempDir())
	write(t, "build/widget.js", "function add(first, second) {\n  return first + second;\n}\nwindow.answer = add(40, 2);\n")

	var out bytes.Buffer
	require.NoError(t, minify.NewMinifier(fs.NewGlobber()).Run(context.Background(), minifyTask(project()), &out))

	data, err := os.ReadFile("build/widget.min.js")
	require.NoError(t, err)
	minified := string(data)

	assert.True(t, strings.HasPrefix(minified, banner+"\n"), "banner must head the bundle: %q", minified)
	assert.NotContains(t, minified, "first + second")
	assert.Contains(t, minified, "window.answer")
	assert.Contains(t, out.String(), "File build/widget.min.js created")
}

func TestMinifier_ExcludesDestination(t *testing.T) {
	t.Chdir(t.TempDir())
	write(t, "build/widget.js", "window.fresh = 1;\n")
	write(t, "build/widget.min.js", "window.stale = 1;\n")

	require.NoError(t, minify.NewMinifier(fs.NewGlobber()).Run(context.Background(), minifyTask(project()), &bytes.Buffer{}))

	data, err := os.ReadFile("build/widget.min.js")
	require.NoError(t, err)
	assert.Contains(t, string(data), "window.fresh")
	assert.NotContains(t, string(data), "window.stale")
}

func TestMinifier_NoSources(t *testing.T) {
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	require.NoError(t, minify.NewMinifier(fs.NewGlobber()).Run(context.Background(), minifyTask(project()), &out))

	assert.NoFileExists(t, "build/widget.min.js")
	assert.Contains(t, out.String(), "skipping")
}

func TestMinifier_SyntaxError(t *testing.T) {
	t.Chdir(t.TempDir())
	write(t, "build/widget.js", "var = ;\n")

	var out bytes.Buffer
	err := minify.NewMinifier(fs.NewGlobber()).Run(context.Background(), minifyTask(project()), &out)
	require.ErrorContains(t, err, domain.ErrMinifyFailed.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, "build/widget.min.js", zErr.Metadata()["dest"])
	assert.NoFileExists(t, "build/widget.min.js")
	assert.Contains(t, out.String(), "error:")
}

func TestMinifier_MissingBannerField(t *testing.T) {
	t.Chdir(t.TempDir())
	write(t, "build/widget.js", "window.a = 1;\n")
	p := project()
	p.Homepage = ""

	err := minify.NewMinifier(fs.NewGlobber()).Run(context.Background(), minifyTask(p), &bytes.Buffer{})
	require.ErrorContains(t, err, domain.ErrMetadataFieldMissing.Error())
	assert.NoFileExists(t, "build/widget.min.js")
}
