package chunkgraph

import "go.trai.ch/chunkgraph/internal/core/domain"

// ModuleDependencies exposes the derived dependency set used for root module detection.
func (g *ChunkGraph) ModuleDependencies(m domain.ModuleIdentifier) []domain.ModuleIdentifier {
	return g.moduleDependencies(m).Sorted()
}
