package ports

import "go.trai.ch/chunkgraph/internal/core/domain"

// ConfigLoader defines the interface for loading a bundle description.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the bundle description at path.
	Load(path string) (*domain.Bundle, error)
}
