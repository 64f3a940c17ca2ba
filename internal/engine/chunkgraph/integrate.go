package chunkgraph

import (
	"go.trai.ch/chunkgraph/internal/core/domain"
)

// CanChunksBeIntegrated reports whether a and b may be merged into one chunk.
func (g *ChunkGraph) CanChunksBeIntegrated(a, b domain.ChunkKey) bool {
	chunkA := g.store.ExpectChunk(a)
	chunkB := g.store.ExpectChunk(b)
	if chunkA.PreventIntegration || chunkB.PreventIntegration {
		return false
	}

	entriesA := g.NumberOfEntryModules(a)
	entriesB := g.NumberOfEntryModules(b)
	if entriesA > 0 && entriesB > 0 {
		return false
	}

	hasRuntimeA := g.store.HasRuntime(a)
	hasRuntimeB := g.store.HasRuntime(b)
	if hasRuntimeA != hasRuntimeB {
		if hasRuntimeA {
			return g.isAvailableChunk(chunkA, chunkB)
		}
		return g.isAvailableChunk(chunkB, chunkA)
	}

	return entriesA == 0 && entriesB == 0
}

// isAvailableChunk reports whether available is always loaded before other: every chain
// of parent groups starting at the groups of other reaches a group containing available
// before reaching an initial group.
func (g *ChunkGraph) isAvailableChunk(available, other *domain.Chunk) bool {
	queue := other.Groups()
	visited := make(map[domain.ChunkGroupKey]struct{}, len(queue))
	for len(queue) > 0 {
		key := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if _, seen := visited[key]; seen {
			continue
		}
		visited[key] = struct{}{}

		if available.IsInGroup(key) {
			continue
		}
		group := g.store.ExpectChunkGroup(key)
		if group.IsInitial() {
			return false
		}
		queue = append(queue, group.Parents()...)
	}
	return true
}

// IntegrateChunks merges b into a. Afterwards b holds no modules, no entry modules and
// belongs to no chunk group; every group that contained b contains a instead.
func (g *ChunkGraph) IntegrateChunks(a, b domain.ChunkKey) {
	g.mustBeMutable()
	chunkA := g.store.ExpectChunk(a)
	chunkB := g.store.ExpectChunk(b)

	chunkA.Name = g.integratedName(chunkA, chunkB)
	for _, hint := range chunkB.IDNameHints() {
		chunkA.AddIDNameHint(hint)
	}
	chunkA.Runtime = domain.MergeRuntime(chunkA.Runtime, chunkB.Runtime)

	for _, m := range g.OrderedChunkModules(b) {
		g.DisconnectChunkAndModule(b, m)
		g.ConnectChunkAndModule(a, m)
	}

	for _, e := range g.ChunkEntryModulesWithGroups(b) {
		g.DisconnectChunkAndEntryModule(b, e.Module)
		g.ConnectChunkAndEntryModule(a, e.Module, e.Group)
	}

	for _, key := range chunkB.Groups() {
		g.store.ExpectChunkGroup(key).ReplaceChunk(b, a)
		chunkA.AddGroup(key)
		chunkB.RemoveGroup(key)
	}
}

func (g *ChunkGraph) integratedName(a, b *domain.Chunk) string {
	switch {
	case a.Name != "" && b.Name != "":
		aHasEntries := g.NumberOfEntryModules(a.Key()) > 0
		bHasEntries := g.NumberOfEntryModules(b.Key()) > 0
		switch {
		case aHasEntries == bHasEntries:
			if len(a.Name) != len(b.Name) {
				if len(a.Name) < len(b.Name) {
					return a.Name
				}
				return b.Name
			}
			if a.Name < b.Name {
				return a.Name
			}
			return b.Name
		case bHasEntries:
			return b.Name
		default:
			return a.Name
		}
	case b.Name != "":
		return b.Name
	default:
		return a.Name
	}
}
