// Package replace implements the token substitution task handler.
package replace

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/taskrun/internal/adapters/fs"
	"go.trai.ch/taskrun/internal/core/domain"
	"go.trai.ch/taskrun/internal/core/ports"
)

// DefaultPrefix marks a token in source files, as in "@@version".
const DefaultPrefix = "@@"

var _ ports.TaskHandler = (*Replacer)(nil)

// Replacer concatenates source files and substitutes project metadata tokens.
type Replacer struct {
	globber ports.Globber
}

// NewReplacer creates a new Replacer.
func NewReplacer(globber ports.Globber) *Replacer {
	return &Replacer{globber: globber}
}

// Plugin returns domain.PluginReplace.
func (r *Replacer) Plugin() domain.PluginKind {
	return domain.PluginReplace
}

// Run writes one destination per file mapping. Mappings whose patterns
// match nothing are skipped.
func (r *Replacer) Run(ctx context.Context, task domain.TaskDefinition, out io.Writer) error {
	opts, err := domain.OptionsFor[domain.ReplaceOptions](task)
	if err != nil {
		return err
	}

	patterns, err := opts.Project.Tokens()
	if err != nil {
		return err
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	replacer := newTokenReplacer(prefix, patterns)

	for _, mapping := range opts.Files {
		if err := ctx.Err(); err != nil {
			return err
		}

		sources, err := r.globber.Glob(mapping.Src)
		if err != nil {
			return err
		}
		if len(sources) == 0 {
			_, _ = fmt.Fprintf(out, "No source files for %s, skipping.\n", mapping.Dest)
			continue
		}

		content, err := fs.Concat(sources, "\n")
		if err != nil {
			return err
		}

		if err := fs.WriteFile(mapping.Dest, []byte(replacer.Replace(content))); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "File %s created.\n", mapping.Dest)
	}

	return nil
}

func newTokenReplacer(prefix string, patterns []domain.ReplacePattern) *strings.Replacer {
	oldnew := make([]string, 0, 2*len(patterns))
	for _, p := range patterns {
		oldnew = append(oldnew, prefix+p.Match, p.Replacement)
	}
	return strings.NewReplacer(oldnew...)
}
