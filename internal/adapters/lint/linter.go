// Package lint implements the static analysis task handler on top of esbuild's parser.
package lint

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/taskrun/internal/core/domain"
	"go.trai.ch/taskrun/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TaskHandler = (*Linter)(nil)

// Linter parses every script file and reports syntax errors and suspicious code.
type Linter struct {
	globber ports.Globber
}

// NewLinter creates a new Linter.
func NewLinter(globber ports.Globber) *Linter {
	return &Linter{globber: globber}
}

// Plugin returns domain.PluginLint.
func (l *Linter) Plugin() domain.PluginKind {
	return domain.PluginLint
}

// Run lints the files matched by the task's patterns. Warnings are printed;
// any error fails the task once every file has been checked.
func (l *Linter) Run(ctx context.Context, task domain.TaskDefinition, out io.Writer) error {
	opts, err := domain.OptionsFor[domain.LintOptions](task)
	if err != nil {
		return err
	}

	files, err := l.globber.Glob(opts.Files)
	if err != nil {
		return err
	}

	var failed int
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		errs, err := lintFile(file, out)
		if err != nil {
			return err
		}
		if errs > 0 {
			failed++
		}
	}

	if failed > 0 {
		err := zerr.With(domain.ErrLintFailed, "files", failed)
		return zerr.With(err, "checked", len(files))
	}

	_, _ = fmt.Fprintf(out, ">> %d %s lint free.\n", len(files), plural(len(files), "file"))
	return nil
}

// lintFile reports the problems in file and returns how many were errors.
func lintFile(file string, out io.Writer) (int, error) {
	code, err := os.ReadFile(file) //nolint:gosec // file comes from the task's patterns
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", file)
	}

	result := api.Transform(string(code), api.TransformOptions{
		Loader:     api.LoaderJS,
		Sourcefile: file,
		LogLevel:   api.LogLevelSilent,
	})

	for _, msg := range result.Errors {
		_, _ = fmt.Fprintf(out, "%s: error: %s\n", location(file, msg), msg.Text)
	}
	for _, msg := range result.Warnings {
		_, _ = fmt.Fprintf(out, "%s: warning: %s\n", location(file, msg), msg.Text)
	}

	return len(result.Errors), nil
}

func location(file string, msg api.Message) string {
	if msg.Location == nil {
		return file
	}
	// esbuild columns are zero based.
	return fmt.Sprintf("%s:%d:%d", file, msg.Location.Line, msg.Location.Column+1)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
