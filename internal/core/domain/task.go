package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// PluginKind names the handler family a task is dispatched to.
type PluginKind string

const (
	// PluginLint runs static analysis over script files.
	PluginLint PluginKind = "lint"
	// PluginServer serves a directory over HTTP for the rest of the run.
	PluginServer PluginKind = "server"
	// PluginQUnit runs a QUnit page in a headless browser.
	PluginQUnit PluginKind = "qunit"
	// PluginReplace substitutes metadata tokens into source files.
	PluginReplace PluginKind = "replace"
	// PluginMinify minifies scripts into a single file with a banner.
	PluginMinify PluginKind = "minify"
	// PluginSizes reports artifact sizes against the previous run.
	PluginSizes PluginKind = "sizes"
	// PluginAuthors writes the contributor list from version control history.
	PluginAuthors PluginKind = "authors"
)

// TaskDefinition is a named unit of work. Options is plugin specific and
// opaque to everything but the handler registered for Plugin.
type TaskDefinition struct {
	Name    string
	Plugin  PluginKind
	Options any
}

// OptionsFor returns the options of task as T, failing with
// ErrInvalidTaskOptions when the task was registered with another type.
func OptionsFor[T any](task TaskDefinition) (T, error) {
	opts, ok := task.Options.(T)
	if !ok {
		var zero T
		err := zerr.With(ErrInvalidTaskOptions, "task", task.Name)
		return zero, zerr.With(err, "plugin", string(task.Plugin))
	}
	return opts, nil
}

// FileMapping concatenates the files matched by Src into Dest.
type FileMapping struct {
	Src  []string
	Dest string
}

// LintOptions configures PluginLint.
type LintOptions struct {
	Files []string
}

// ServerOptions configures PluginServer.
type ServerOptions struct {
	Hostname string
	Port     int
	Base     string
}

// QUnitOptions configures PluginQUnit.
type QUnitOptions struct {
	URLs    []string
	Timeout time.Duration
}

// ReplaceOptions configures PluginReplace.
type ReplaceOptions struct {
	Prefix  string
	Project Project
	Files   []FileMapping
}

// MinifyOptions configures PluginMinify.
type MinifyOptions struct {
	Project Project
	Files   []FileMapping
}

// SizeOptions configures PluginSizes.
type SizeOptions struct {
	Dir   string
	Cache string
}

// AuthorsOptions configures PluginAuthors.
type AuthorsOptions struct {
	Dest string
}
