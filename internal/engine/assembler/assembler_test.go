package assembler_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskrun/internal/core/domain"
	"go.trai.ch/taskrun/internal/core/ports/mocks"
	"go.trai.ch/taskrun/internal/engine/assembler"
	"go.uber.org/mock/gomock"
)

func project() domain.Project {
	return domain.Project{
		Title:    "Widget",
		Version:  "1.2.3",
		License:  "MIT",
		Homepage: "https://example.com/widget",
	}
}

func assemble(t *testing.T, appFiles []string) *domain.Config {
	t.Helper()
	ctrl := gomock.NewController(t)

	discoverer := mocks.NewMockFileDiscoverer(ctrl)
	loader := mocks.NewMockConfigLoader(ctrl)

	discoverer.EXPECT().DiscoverAppFiles("src").Return(appFiles)
	loader.EXPECT().LoadProject("package.json").Return(project(), nil)

	cfg, err := assembler.New(discoverer, loader).Assemble(domain.DefaultSettings())
	require.NoError(t, err)
	require.NotNil(t, cfg.Registry())
	return cfg
}

func task(t *testing.T, cfg *domain.Config, name string) domain.TaskDefinition {
	t.Helper()
	def, ok := cfg.Registry().Task(name)
	require.True(t, ok, "task %s not registered", name)
	return def
}

func TestAssemble_FileSets(t *testing.T) {
	cfg := assemble(t, []string{"src/widget.js", "src/widget.css"})

	assert.Equal(t, "widget", cfg.OutputName())
	assert.Equal(t, []string{
		"Gruntfile.js", "test/*.js", "test/unit/*.js", "src/widget.js", "src/widget.css",
	}, cfg.Files())
	assert.Equal(t, []string{
		"Gruntfile.js", "test/*.js", "test/unit/*.js", "src/widget.js",
	}, cfg.Scripts())
	assert.Equal(t, project(), cfg.Project())
}

func TestAssemble_Tasks(t *testing.T) {
	cfg := assemble(t, []string{"src/widget.js", "src/widget.css"})

	jshint := task(t, cfg, "jshint")
	assert.Equal(t, domain.PluginLint, jshint.Plugin)
	assert.Equal(t, domain.LintOptions{Files: cfg.Scripts()}, jshint.Options)

	connect := task(t, cfg, "connect")
	assert.Equal(t, domain.PluginServer, connect.Plugin)
	assert.Equal(t, domain.ServerOptions{Port: 8000, Base: "."}, connect.Options)

	qunit := task(t, cfg, "qunit")
	assert.Equal(t, domain.PluginQUnit, qunit.Plugin)
	assert.Equal(t, domain.QUnitOptions{
		URLs:    []string{"http://localhost:8000/test/index.html"},
		Timeout: 5 * time.Second,
	}, qunit.Options)

	replace := task(t, cfg, "replace")
	assert.Equal(t, domain.PluginReplace, replace.Plugin)
	assert.Equal(t, domain.ReplaceOptions{
		Prefix:  "@@",
		Project: project(),
		Files: []domain.FileMapping{
			{Src: []string{"src/*.js"}, Dest: "build/widget.js"},
			{Src: []string{"src/*.css"}, Dest: "build/widget.css"},
		},
	}, replace.Options)

	uglify := task(t, cfg, "uglify")
	assert.Equal(t, domain.PluginMinify, uglify.Plugin)
	assert.Equal(t, domain.MinifyOptions{
		Project: project(),
		Files:   []domain.FileMapping{{Src: []string{"build/*.js"}, Dest: "build/widget.min.js"}},
	}, uglify.Options)

	sizes := task(t, cfg, "compare_size")
	assert.Equal(t, domain.PluginSizes, sizes.Plugin)
	assert.Equal(t, domain.SizeOptions{Dir: "build", Cache: ".sizecache.json"}, sizes.Options)

	authors := task(t, cfg, "authors")
	assert.Equal(t, domain.PluginAuthors, authors.Plugin)
	assert.Equal(t, domain.AuthorsOptions{Dest: "AUTHORS.txt"}, authors.Options)
}

func TestAssemble_Pipelines(t *testing.T) {
	cfg := assemble(t, []string{"src/widget.js"})
	reg := cfg.Registry()

	tests := []struct {
		name     string
		steps    []string
		expanded []string
	}{
		{"default", []string{"jshint", "test", "build", "compare_size"}, []string{"jshint", "connect", "qunit", "replace", "uglify", "compare_size"}},
		{"lint", []string{"jshint"}, []string{"jshint"}},
		{"test", []string{"connect", "qunit"}, []string{"connect", "qunit"}},
		{"build", []string{"replace", "uglify"}, []string{"replace", "uglify"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := reg.Pipeline(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.steps, p.Steps)

			plan, err := reg.Expand(tt.name)
			require.NoError(t, err)
			var names []string
			for _, def := range plan {
				names = append(names, def.Name)
			}
			assert.Equal(t, tt.expanded, names)
		})
	}

	var count int
	for range reg.Pipelines() {
		count++
	}
	assert.Equal(t, 4, count)
}

func TestAssemble_AuthorsInNoPipeline(t *testing.T) {
	cfg := assemble(t, []string{"src/widget.js"})

	for p := range cfg.Registry().Pipelines() {
		plan, err := cfg.Registry().Expand(p.Name)
		require.NoError(t, err)
		for _, def := range plan {
			assert.NotEqual(t, "authors", def.Name, "pipeline %s", p.Name)
		}
	}
}

func TestAssemble_EmptySourceDir(t *testing.T) {
	cfg := assemble(t, []string{})

	assert.Equal(t, "app", cfg.OutputName())
	assert.Equal(t, []string{"Gruntfile.js", "test/*.js", "test/unit/*.js"}, cfg.Files())

	replace := task(t, cfg, "replace")
	opts, err := domain.OptionsFor[domain.ReplaceOptions](replace)
	require.NoError(t, err)
	assert.Equal(t, "build/app.js", opts.Files[0].Dest)
	assert.Equal(t, "build/app.css", opts.Files[1].Dest)
}

func TestAssemble_CustomSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	discoverer := mocks.NewMockFileDiscoverer(ctrl)
	loader := mocks.NewMockConfigLoader(ctrl)

	settings := domain.DefaultSettings()
	settings.SourceDir = "lib"
	settings.BuildDir = "dist"
	settings.Port = 9000

	discoverer.EXPECT().DiscoverAppFiles("lib").Return([]string{"lib/gadget.css"})
	loader.EXPECT().LoadProject("package.json").Return(project(), nil)

	cfg, err := assembler.New(discoverer, loader).Assemble(settings)
	require.NoError(t, err)

	assert.Equal(t, "gadget", cfg.OutputName())

	uglify, ok := cfg.Registry().Task("uglify")
	require.True(t, ok)
	opts, err := domain.OptionsFor[domain.MinifyOptions](uglify)
	require.NoError(t, err)
	assert.Equal(t, []domain.FileMapping{{Src: []string{"dist/*.js"}, Dest: "dist/gadget.min.js"}}, opts.Files)

	qunit, ok := cfg.Registry().Task("qunit")
	require.True(t, ok)
	qopts, err := domain.OptionsFor[domain.QUnitOptions](qunit)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:9000/test/index.html"}, qopts.URLs)
}

func TestAssemble_MetadataFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	discoverer := mocks.NewMockFileDiscoverer(ctrl)
	loader := mocks.NewMockConfigLoader(ctrl)

	discoverer.EXPECT().DiscoverAppFiles("src").Return(nil)
	loader.EXPECT().LoadProject("package.json").Return(domain.Project{}, errors.New("boom"))

	_, err := assembler.New(discoverer, loader).Assemble(domain.DefaultSettings())
	require.ErrorContains(t, err, "boom")
}

func TestAssemble_InvalidSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	discoverer := mocks.NewMockFileDiscoverer(ctrl)
	loader := mocks.NewMockConfigLoader(ctrl)

	settings := domain.DefaultSettings()
	settings.Port = 0

	_, err := assembler.New(discoverer, loader).Assemble(settings)
	require.ErrorContains(t, err, domain.ErrInvalidSettings.Error())
}

func TestRegister_IsDeterministic(t *testing.T) {
	cfg := domain.NewConfig(domain.DefaultSettings(), []string{"src/widget.js"}, project())

	first, err := assembler.Register(cfg)
	require.NoError(t, err)
	second, err := assembler.Register(cfg)
	require.NoError(t, err)

	var a, b []domain.TaskDefinition
	for def := range first.Tasks() {
		a = append(a, def)
	}
	for def := range second.Tasks() {
		b = append(b, def)
	}
	assert.Equal(t, a, b)
	assert.Len(t, a, 7)
}
