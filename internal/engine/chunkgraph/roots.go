package chunkgraph

import (
	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/engine/graphroots"
)

// ChunkRootModules returns the modules of c that no other module of c depends on, sorted
// by identifier.
func (g *ChunkGraph) ChunkRootModules(c domain.ChunkKey) []domain.ModuleIdentifier {
	input := g.OrderedChunkModules(c)
	roots := graphroots.Find(input, func(m domain.ModuleIdentifier) []domain.ModuleIdentifier {
		return g.moduleDependencies(m).Sorted()
	})
	domain.SortModuleIdentifiers(roots)
	return roots
}

// moduleDependencies returns the modules m depends on. Inactive connections are skipped and
// transitive-only connections are replaced by the dependencies of their target.
func (g *ChunkGraph) moduleDependencies(m domain.ModuleIdentifier) domain.ModuleIdentifierSet {
	deps := make(domain.ModuleIdentifierSet)
	visited := domain.NewModuleIdentifierSet(m)

	var walk func(domain.ModuleIdentifier)
	walk = func(from domain.ModuleIdentifier) {
		for _, conn := range g.moduleGraph.OutgoingConnections(from) {
			switch conn.State {
			case domain.ConnectionInactive:
				continue
			case domain.ConnectionTransitiveOnly:
				if visited.Add(conn.Target) {
					walk(conn.Target)
				}
				continue
			}
			deps.Add(conn.Target)
		}
	}
	walk(m)
	return deps
}
