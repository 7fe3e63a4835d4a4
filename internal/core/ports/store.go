package ports

import "go.trai.ch/taskrun/internal/core/domain"

// SizeStore defines the interface for persisting artifact sizes between runs.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SizeStore interface {
	// Get retrieves the entry recorded for path by the previous run.
	// Returns nil, nil if not found.
	Get(path string) (*domain.SizeEntry, error)

	// Replace discards the stored entries and persists entries instead.
	Replace(entries []domain.SizeEntry) error
}
