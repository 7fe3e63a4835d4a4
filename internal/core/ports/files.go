package ports

// FileDiscoverer lists the application files of a source directory.
//
//go:generate mockgen -source=files.go -destination=mocks/mock_files.go -package=mocks
type FileDiscoverer interface {
	// DiscoverAppFiles returns the immediate children of dir as "dir/<name>",
	// in lexical order. A missing directory yields an empty list.
	DiscoverAppFiles(dir string) []string
}

// Globber expands file patterns.
type Globber interface {
	// Glob expands patterns in order and returns the matching regular files.
	// Each file appears once, at the position of its first match.
	// Patterns without a match contribute nothing.
	Glob(patterns []string) ([]string, error)
}

// Hasher computes content digests.
type Hasher interface {
	// ComputeFileHash returns the digest of the file's content.
	ComputeFileHash(path string) (uint64, error)
}
