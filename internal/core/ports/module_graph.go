package ports

import "go.trai.ch/chunkgraph/internal/core/domain"

// ModuleGraph is the read-only view of the module graph the chunk graph is built over.
//
//go:generate mockgen -source=module_graph.go -destination=mocks/mock_module_graph.go -package=mocks
type ModuleGraph interface {
	// HasModule reports whether id is a module of the graph.
	HasModule(id domain.ModuleIdentifier) bool
	// Modules returns every module identifier in sorted order.
	Modules() []domain.ModuleIdentifier
	// SourceTypes returns the source types the module produces.
	SourceTypes(id domain.ModuleIdentifier) []domain.SourceType
	// Size returns the size of the module for one source type.
	Size(id domain.ModuleIdentifier, sourceType domain.SourceType) float64
	// OutgoingConnections returns the dependency connections of the module.
	OutgoingConnections(id domain.ModuleIdentifier) []domain.Connection
	// RuntimeRequirements returns the runtime globals the module needs.
	RuntimeRequirements(id domain.ModuleIdentifier) domain.RuntimeGlobals
}
