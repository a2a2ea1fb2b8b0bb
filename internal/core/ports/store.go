package ports

import "go.trai.ch/pharbuild/internal/core/domain"

// BuildRecordStore persists the provenance of produced archives.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildRecordStore interface {
	// Get retrieves the record for a version.
	// Returns nil, nil if not found.
	Get(version string) (*domain.BuildRecord, error)

	// Put stores the record, replacing any previous record for the same version.
	Put(record domain.BuildRecord) error

	// List returns every record. Semantic versions come first in ascending order, other
	// refs follow sorted by name.
	List() ([]domain.BuildRecord, error)
}
