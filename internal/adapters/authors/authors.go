// Package authors implements the contributor list task handler.
package authors

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/taskrun/internal/adapters/fs"
	"go.trai.ch/taskrun/internal/core/domain"
	"go.trai.ch/taskrun/internal/core/ports"
)

// logArgs lists every commit author, oldest commit first.
var logArgs = []string{"git", "log", "--reverse", "--format=%aN <%aE>"}

var _ ports.TaskHandler = (*Writer)(nil)

// Writer collects commit authors from git history.
type Writer struct {
	executor ports.Executor
}

// NewWriter creates a new Writer.
func NewWriter(executor ports.Executor) *Writer {
	return &Writer{executor: executor}
}

// Plugin returns domain.PluginAuthors.
func (w *Writer) Plugin() domain.PluginKind {
	return domain.PluginAuthors
}

// Run writes one author per line in order of first contribution.
func (w *Writer) Run(ctx context.Context, task domain.TaskDefinition, out io.Writer) error {
	opts, err := domain.OptionsFor[domain.AuthorsOptions](task)
	if err != nil {
		return err
	}

	var history bytes.Buffer
	if err := w.executor.Execute(ctx, ports.Command{Args: logArgs}, &history); err != nil {
		return err
	}

	authors := unique(&history)

	var b strings.Builder
	for _, a := range authors {
		b.WriteString(a)
		b.WriteByte('\n')
	}
	if err := fs.WriteFile(opts.Dest, []byte(b.String())); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "File %s created with %d authors.\n", opts.Dest, len(authors))
	return nil
}

func unique(r io.Reader) []string {
	seen := make(map[string]struct{})
	var authors []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		authors = append(authors, line)
	}
	return authors
}
