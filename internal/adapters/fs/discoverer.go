package fs

import (
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/taskrun/internal/core/ports"
)

var _ ports.FileDiscoverer = (*Discoverer)(nil)

// Discoverer lists the top level entries of a source directory.
type Discoverer struct{}

// NewDiscoverer creates a new Discoverer.
func NewDiscoverer() *Discoverer {
	return &Discoverer{}
}

// DiscoverAppFiles returns the entries matching dir/* as "dir/<name>", in
// lexical order. Files and directories are both listed; hidden entries are
// not. A missing or unreadable directory yields an empty list.
func (d *Discoverer) DiscoverAppFiles(dir string) []string {
	names, err := doublestar.Glob(os.DirFS(dir), "*")
	if err != nil {
		return []string{}
	}

	files := make([]string, 0, len(names))
	for _, name := range names {
		if name[0] == '.' {
			continue
		}
		files = append(files, dir+"/"+name)
	}
	return files
}
