// Package minify implements the minification task handler on top of esbuild.
package minify

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/taskrun/internal/adapters/fs"
	"go.trai.ch/taskrun/internal/core/domain"
	"go.trai.ch/taskrun/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TaskHandler = (*Minifier)(nil)

// Minifier concatenates scripts and writes a minified bundle headed by the project banner.
type Minifier struct {
	globber ports.Globber
}

// NewMinifier creates a new Minifier.
func NewMinifier(globber ports.Globber) *Minifier {
	return &Minifier{globber: globber}
}

// Plugin returns domain.PluginMinify.
func (m *Minifier) Plugin() domain.PluginKind {
	return domain.PluginMinify
}

// Run writes one minified file per mapping.
func (m *Minifier) Run(ctx context.Context, task domain.TaskDefinition, out io.Writer) error {
	opts, err := domain.OptionsFor[domain.MinifyOptions](task)
	if err != nil {
		return err
	}

	banner, err := opts.Project.Banner()
	if err != nil {
		return err
	}

	for _, mapping := range opts.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.minify(mapping, banner, out); err != nil {
			return err
		}
	}
	return nil
}

func (m *Minifier) minify(mapping domain.FileMapping, banner string, out io.Writer) error {
	sources, err := m.globber.Glob(mapping.Src)
	if err != nil {
		return err
	}

	// A previous bundle matches build/*.js as well.
	dest := filepath.ToSlash(filepath.Clean(mapping.Dest))
	sources = slices.DeleteFunc(sources, func(src string) bool {
		return filepath.ToSlash(filepath.Clean(src)) == dest
	})
	if len(sources) == 0 {
		_, _ = fmt.Fprintf(out, "No source files for %s, skipping.\n", mapping.Dest)
		return nil
	}

	code, err := fs.Concat(sources, ";\n")
	if err != nil {
		return err
	}

	result := api.Transform(code, api.TransformOptions{
		Loader:            api.LoaderJS,
		Sourcefile:        mapping.Dest,
		LogLevel:          api.LogLevelSilent,
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		Banner:            banner,
	})
	if len(result.Errors) > 0 {
		for _, msg := range result.Errors {
			_, _ = fmt.Fprintf(out, "%s: error: %s\n", mapping.Dest, msg.Text)
		}
		err := zerr.With(domain.ErrMinifyFailed, "dest", mapping.Dest)
		return zerr.With(err, "errors", len(result.Errors))
	}

	if err := fs.WriteFile(mapping.Dest, result.Code); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "File %s created: %d bytes -> %d bytes\n", mapping.Dest, len(code), len(result.Code))
	return nil
}
