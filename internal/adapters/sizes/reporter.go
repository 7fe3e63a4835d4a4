// Package sizes implements the artifact size comparison task handler.
package sizes

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"runtime"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"go.trai.ch/taskrun/internal/adapters/sizecache"
	"go.trai.ch/taskrun/internal/core/domain"
	"go.trai.ch/taskrun/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.TaskHandler = (*Reporter)(nil)

// FileWalker lists the regular files below a directory.
type FileWalker interface {
	WalkFiles(root string, ignores []string) iter.Seq[string]
}

// Reporter measures build artifacts and compares them with the previous run.
type Reporter struct {
	walker FileWalker
	hasher ports.Hasher
	open   sizecache.Opener
}

// NewReporter creates a new Reporter.
func NewReporter(walker FileWalker, hasher ports.Hasher, open sizecache.Opener) *Reporter {
	return &Reporter{walker: walker, hasher: hasher, open: open}
}

// Plugin returns domain.PluginSizes.
func (r *Reporter) Plugin() domain.PluginKind {
	return domain.PluginSizes
}

// Run prints the size table and replaces the cached sizes with the new ones.
func (r *Reporter) Run(ctx context.Context, task domain.TaskDefinition, out io.Writer) error {
	opts, err := domain.OptionsFor[domain.SizeOptions](task)
	if err != nil {
		return err
	}

	var files []string
	for path := range r.walker.WalkFiles(opts.Dir, nil) {
		files = append(files, filepath.ToSlash(path))
	}
	if len(files) == 0 {
		_, _ = fmt.Fprintf(out, "No files in %s, nothing to compare.\n", opts.Dir)
		return nil
	}

	entries, err := r.measureAll(ctx, files)
	if err != nil {
		return err
	}

	store, err := r.open(opts.Cache)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "%8s %8s %8s  %s\n", "raw", "gz", "br", "Compared to last run")
	for _, entry := range entries {
		prev, err := store.Get(entry.Path)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "%8d %8d %8d  %s%s\n", entry.Raw, entry.Gzip, entry.Brotli, entry.Path, describe(entry, prev))
	}

	return store.Replace(entries)
}

func (r *Reporter) measureAll(ctx context.Context, files []string) ([]domain.SizeEntry, error) {
	entries := make([]domain.SizeEntry, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry, err := r.measure(file)
			if err != nil {
				return err
			}
			entries[i] = entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *Reporter) measure(path string) (domain.SizeEntry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from walking the build dir
	if err != nil {
		return domain.SizeEntry{}, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}

	sum, err := r.hasher.ComputeFileHash(path)
	if err != nil {
		return domain.SizeEntry{}, err
	}

	gz, err := gzipSize(data)
	if err != nil {
		return domain.SizeEntry{}, zerr.With(err, "path", path)
	}
	br, err := brotliSize(data)
	if err != nil {
		return domain.SizeEntry{}, zerr.With(err, "path", path)
	}

	return domain.SizeEntry{
		Path:   path,
		Raw:    int64(len(data)),
		Gzip:   gz,
		Brotli: br,
		Digest: fmt.Sprintf("%016x", sum),
	}, nil
}

func describe(entry domain.SizeEntry, prev *domain.SizeEntry) string {
	delta, ok := entry.Compare(prev)
	switch {
	case !ok:
		return " (new)"
	case entry.Unchanged(prev):
		return " (unchanged)"
	default:
		return fmt.Sprintf(" (raw %+d, gz %+d, br %+d)", delta.Raw, delta.Gzip, delta.Brotli)
	}
}

// counter discards what it is given and counts the bytes.
type counter int64

func (c *counter) Write(p []byte) (int, error) {
	*c += counter(len(p))
	return len(p), nil
}

func gzipSize(data []byte) (int64, error) {
	var n counter
	w, err := gzip.NewWriterLevel(&n, gzip.BestCompression)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(data); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return int64(n), nil
}

func brotliSize(data []byte) (int64, error) {
	var n counter
	w := brotli.NewWriterLevel(&n, brotli.BestCompression)
	if _, err := w.Write(data); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return int64(n), nil
}
