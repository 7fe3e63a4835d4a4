package fs

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/taskrun/internal/core/domain"
	"go.trai.ch/zerr"
)

// Concat reads paths in order and joins their contents with sep.
func Concat(paths []string, sep string) (string, error) {
	var b strings.Builder
	for i, path := range paths {
		data, err := os.ReadFile(path) //nolint:gosec // paths come from task patterns
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
		}
		if i > 0 {
			b.WriteString(sep)
		}
		b.Write(data)
	}
	return b.String(), nil
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	//nolint:gosec // build artifacts are world readable
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	return nil
}
