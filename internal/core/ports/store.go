package ports

import "go.trai.ch/chunkgraph/internal/core/domain"

// ReportStore defines the interface for persisting chunk reports between runs.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ReportStore interface {
	// Get retrieves the stored report for a chunk id.
	// Returns nil, nil if not found.
	Get(chunkID string) (*domain.ChunkReport, error)

	// Put stores the given reports, replacing reports with the same id.
	Put(reports []domain.ChunkReport) error
}
