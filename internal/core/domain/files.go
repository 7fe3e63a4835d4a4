package domain

import "strings"

const (
	// FallbackOutputName is used when the source directory holds no files.
	FallbackOutputName = "app"

	scriptSuffix     = ".js"
	stylesheetSuffix = ".css"
)

// DeriveOutputName returns the artifact base name for the build directory.
// The first app file loses its source directory prefix and a trailing .js or
// .css suffix; an empty file list yields FallbackOutputName.
func DeriveOutputName(appFiles []string, sourceDir string) string {
	if len(appFiles) == 0 {
		return FallbackOutputName
	}

	name := strings.TrimPrefix(appFiles[0], sourceDir+"/")
	name = strings.TrimSuffix(name, scriptSuffix)
	name = strings.TrimSuffix(name, stylesheetSuffix)

	if name == "" {
		return FallbackOutputName
	}
	return name
}

// CombineFiles concatenates utility and app files, utility files first.
// Entries present in both lists are kept twice.
func CombineFiles(utilFiles, appFiles []string) []string {
	combined := make([]string, 0, len(utilFiles)+len(appFiles))
	combined = append(combined, utilFiles...)
	return append(combined, appFiles...)
}

// FilterScripts keeps the entries ending in ".js", preserving their order.
func FilterScripts(files []string) []string {
	scripts := make([]string, 0, len(files))
	for _, f := range files {
		if len(f) < len(scriptSuffix) {
			continue
		}
		if f[len(f)-len(scriptSuffix):] == scriptSuffix {
			scripts = append(scripts, f)
		}
	}
	return scripts
}
