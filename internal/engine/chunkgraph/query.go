package chunkgraph

import (
	"maps"
	"slices"

	"go.trai.ch/chunkgraph/internal/core/domain"
)

// ChunkModules returns the module set of c. The set is owned by the graph and must not be modified.
func (g *ChunkGraph) ChunkModules(c domain.ChunkKey) domain.ModuleIdentifierSet {
	return g.expectChunkRecord(c).modules
}

// OrderedChunkModules returns the modules of c sorted by identifier text.
func (g *ChunkGraph) OrderedChunkModules(c domain.ChunkKey) []domain.ModuleIdentifier {
	return g.expectChunkRecord(c).modules.Sorted()
}

// NumberOfChunkModules returns how many modules c holds.
func (g *ChunkGraph) NumberOfChunkModules(c domain.ChunkKey) int {
	return len(g.expectChunkRecord(c).modules)
}

// NumberOfEntryModules returns how many entry modules c holds.
func (g *ChunkGraph) NumberOfEntryModules(c domain.ChunkKey) int {
	return len(g.expectChunkRecord(c).entryModules)
}

// ChunkEntryModules returns the entry modules of c in insertion order.
func (g *ChunkGraph) ChunkEntryModules(c domain.ChunkKey) []domain.ModuleIdentifier {
	rec := g.expectChunkRecord(c)
	out := make([]domain.ModuleIdentifier, 0, len(rec.entryModules))
	for _, e := range rec.entryModules {
		out = append(out, e.Module)
	}
	return out
}

// ChunkEntryModulesWithGroups returns the entry modules of c with their entrypoints, in insertion order.
func (g *ChunkGraph) ChunkEntryModulesWithGroups(c domain.ChunkKey) []EntryModule {
	return slices.Clone(g.expectChunkRecord(c).entryModules)
}

// ChunkRuntimeModules returns the runtime modules of c in insertion order.
func (g *ChunkGraph) ChunkRuntimeModules(c domain.ChunkKey) []domain.ModuleIdentifier {
	return slices.Clone(g.expectChunkRecord(c).runtimeModules)
}

// HasChunkRuntimeModules reports whether c has runtime modules attached.
func (g *ChunkGraph) HasChunkRuntimeModules(c domain.ChunkKey) bool {
	return len(g.expectChunkRecord(c).runtimeModules) > 0
}

// ModuleChunks returns the chunks containing m in ascending key order.
func (g *ChunkGraph) ModuleChunks(m domain.ModuleIdentifier) []domain.ChunkKey {
	return g.expectModuleRecord(m).chunks.sorted()
}

// NumberOfModuleChunks returns how many chunks contain m. Unknown modules are in no chunk.
func (g *ChunkGraph) NumberOfModuleChunks(m domain.ModuleIdentifier) int {
	rec, ok := g.moduleRecords[m]
	if !ok {
		return 0
	}
	return len(rec.chunks)
}

// ModuleEntryChunks returns the chunks holding m as an entry module.
func (g *ChunkGraph) ModuleEntryChunks(m domain.ModuleIdentifier) []domain.ChunkKey {
	return g.expectModuleRecord(m).entryInChunks.sorted()
}

// ModuleRuntimeChunks returns the chunks holding m as a runtime module.
func (g *ChunkGraph) ModuleRuntimeChunks(m domain.ModuleIdentifier) []domain.ChunkKey {
	return g.expectModuleRecord(m).runtimeInChunks.sorted()
}

// HasModuleEdges reports whether m takes part in any edge.
func (g *ChunkGraph) HasModuleEdges(m domain.ModuleIdentifier) bool {
	rec, ok := g.moduleRecords[m]
	return ok && !rec.empty()
}

// IsModuleInChunk reports whether m belongs to c.
func (g *ChunkGraph) IsModuleInChunk(m domain.ModuleIdentifier, c domain.ChunkKey) bool {
	return g.expectChunkRecord(c).modules.Has(m)
}

// SetChunkModuleSourceTypes overrides the source types m contributes to c.
func (g *ChunkGraph) SetChunkModuleSourceTypes(c domain.ChunkKey, m domain.ModuleIdentifier, types domain.SourceTypeSet) {
	g.mustBeMutable()
	rec := g.expectChunkRecord(c)
	if rec.sourceTypesByModule == nil {
		rec.sourceTypesByModule = make(map[domain.ModuleIdentifier]domain.SourceTypeSet)
	}
	rec.sourceTypesByModule[m] = maps.Clone(types)
}

// ModuleSourceTypesInChunk returns the source types m contributes to c: the override when
// one was set, the intrinsic source types of m otherwise.
func (g *ChunkGraph) ModuleSourceTypesInChunk(c domain.ChunkKey, m domain.ModuleIdentifier) domain.SourceTypeSet {
	if rec, ok := g.chunkRecords[c]; ok {
		if types, ok := rec.sourceTypesByModule[m]; ok {
			return types
		}
	}
	return domain.NewSourceTypeSet(g.moduleGraph.SourceTypes(m)...)
}

// ChunkModulesBySourceType returns the modules of c contributing sourceType, sorted by identifier.
func (g *ChunkGraph) ChunkModulesBySourceType(c domain.ChunkKey, sourceType domain.SourceType) []domain.ModuleIdentifier {
	rec := g.expectChunkRecord(c)
	out := make([]domain.ModuleIdentifier, 0, len(rec.modules))
	for m := range rec.modules {
		if !g.moduleGraph.HasModule(m) {
			continue
		}
		if g.ModuleSourceTypesInChunk(c, m).Has(sourceType) {
			out = append(out, m)
		}
	}
	domain.SortModuleIdentifiers(out)
	return out
}

// HasChunkEntryDependentChunks reports whether an entrypoint of c holds chunks other than c.
func (g *ChunkGraph) HasChunkEntryDependentChunks(c domain.ChunkKey) bool {
	for _, e := range g.expectChunkRecord(c).entryModules {
		for _, member := range g.store.ExpectChunkGroup(e.Group).Chunks() {
			if member != c {
				return true
			}
		}
	}
	return false
}

// ChunkEntryDependentChunks returns the chunks that must be loaded before the entry modules
// of the entrypoints containing c can run, excluding c, the entrypoint chunks and runtime chunks.
func (g *ChunkGraph) ChunkEntryDependentChunks(c domain.ChunkKey) []domain.ChunkKey {
	var out []domain.ChunkKey
	seen := make(chunkSet)
	for _, groupKey := range g.store.ExpectChunk(c).Groups() {
		group := g.store.ExpectChunkGroup(groupKey)
		if group.Kind != domain.ChunkGroupEntrypoint {
			continue
		}
		entrypointChunk, ok := group.EntrypointChunk()
		if !ok {
			continue
		}
		for _, e := range g.expectChunkRecord(entrypointChunk).entryModules {
			for _, member := range g.store.ExpectChunkGroup(e.Group).Chunks() {
				if member == c || member == entrypointChunk || g.store.HasRuntime(member) {
					continue
				}
				if _, dup := seen[member]; dup {
					continue
				}
				seen[member] = struct{}{}
				out = append(out, member)
			}
		}
	}
	return out
}
