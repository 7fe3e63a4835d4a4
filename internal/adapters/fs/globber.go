package fs

import (
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/taskrun/internal/core/domain"
	"go.trai.ch/taskrun/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Globber = (*Globber)(nil)

// Globber expands file patterns with doublestar, so "**" crosses directories.
type Globber struct{}

// NewGlobber creates a new Globber.
func NewGlobber() *Globber {
	return &Globber{}
}

// Glob expands patterns in order and returns the matching regular files
// with forward slashes, each pattern's matches in lexical order. A file
// matched by several patterns is listed once, at its first position.
func (g *Globber) Glob(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	files := make([]string, 0, len(patterns))

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrGlobFailed.Error()), "pattern", pattern)
		}
		slices.Sort(matches)

		for _, match := range matches {
			match = filepath.ToSlash(match)
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			files = append(files, match)
		}
	}

	return files, nil
}
