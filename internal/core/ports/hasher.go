package ports

import "go.trai.ch/chunkgraph/internal/core/domain"

// Hasher defines the interface for computing content hashes of chunk reports.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// ComputeChunkHash computes a hash over the content-bearing fields of a report.
	ComputeChunkHash(report *domain.ChunkReport) (string, error)
}
