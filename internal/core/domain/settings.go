package domain

import (
	"slices"
	"time"

	"go.trai.ch/zerr"
)

const (
	// DefaultSourceDir is where application sources live.
	DefaultSourceDir = "src"
	// DefaultBuildDir receives generated artifacts.
	DefaultBuildDir = "build"
	// DefaultTestDir holds the browser test suite.
	DefaultTestDir = "test"
	// DefaultTestPage is the suite entry point inside the test directory.
	DefaultTestPage = "index.html"
	// DefaultPort is the port the static server binds for the test pipeline.
	DefaultPort = 8000
	// DefaultServerBase is the directory served by the static server.
	DefaultServerBase = "."
	// DefaultMetadataFile is the project metadata file.
	DefaultMetadataFile = "package.json"
	// DefaultSizeCacheFile stores sizes from the previous compare_size run.
	DefaultSizeCacheFile = ".sizecache.json"
	// DefaultTestTimeout bounds how long a test page may take to report completion.
	DefaultTestTimeout = 5 * time.Second
)

// DefaultUtilFiles are processed (linted) but never shipped.
var DefaultUtilFiles = []string{
	"Gruntfile.js",
	"test/*.js",
	"test/unit/*.js",
}

// Settings is the fixed set of path conventions the configuration is assembled from.
type Settings struct {
	SourceDir     string
	BuildDir      string
	TestDir       string
	TestPage      string
	UtilFiles     []string
	Port          int
	ServerBase    string
	MetadataFile  string
	SizeCacheFile string
	TestTimeout   time.Duration
}

// DefaultSettings returns the built-in conventions.
func DefaultSettings() Settings {
	return Settings{
		SourceDir:     DefaultSourceDir,
		BuildDir:      DefaultBuildDir,
		TestDir:       DefaultTestDir,
		TestPage:      DefaultTestPage,
		UtilFiles:     slices.Clone(DefaultUtilFiles),
		Port:          DefaultPort,
		ServerBase:    DefaultServerBase,
		MetadataFile:  DefaultMetadataFile,
		SizeCacheFile: DefaultSizeCacheFile,
		TestTimeout:   DefaultTestTimeout,
	}
}

// Validate checks that every setting holds a usable value.
func (s Settings) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"source", s.SourceDir},
		{"build", s.BuildDir},
		{"test", s.TestDir},
		{"test_page", s.TestPage},
		{"metadata", s.MetadataFile},
		{"size_cache", s.SizeCacheFile},
	}
	for _, r := range required {
		if r.value == "" {
			return zerr.With(ErrInvalidSettings, "empty", r.key)
		}
	}

	if s.Port < 1 || s.Port > 65535 {
		return zerr.With(ErrInvalidSettings, "port", s.Port)
	}

	if s.TestTimeout <= 0 {
		return zerr.With(ErrInvalidSettings, "test_timeout", s.TestTimeout.String())
	}

	return nil
}
