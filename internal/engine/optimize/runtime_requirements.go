package optimize

import (
	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/engine/chunkgraph"
)

// ComputeRuntimeRequirements stores the runtime requirements of every chunk and the tree
// requirements of every runtime chunk.
//
// A chunk needs the union of the requirements of its modules. Runtime modules reporting a
// full hash add GetFullHash, entry chunks depending on other chunks add OnChunksLoaded and
// chunks loading other chunks add EnsureChunk.
func ComputeRuntimeRequirements(g *chunkgraph.ChunkGraph) {
	store := g.Store()
	mg := g.ModuleGraph()
	chunks := g.Chunks()

	for _, c := range chunks {
		var req domain.RuntimeGlobals
		for _, m := range g.OrderedChunkModules(c) {
			req |= mg.RuntimeRequirements(m)
		}
		if g.HasChunkFullHashModules(c) {
			req |= domain.RuntimeGetFullHash
		}
		if g.NumberOfEntryModules(c) > 0 {
			req |= domain.RuntimeStartupEntrypoint
			if g.HasChunkEntryDependentChunks(c) {
				req |= domain.RuntimeOnChunksLoaded
			}
		}
		if loadsChunks(store, c) {
			req |= domain.RuntimeEnsureChunk
		}
		g.SetChunkRuntimeRequirements(c, req)
	}

	for _, c := range chunks {
		if !store.HasRuntime(c) {
			continue
		}
		var tree domain.RuntimeGlobals
		for _, ref := range store.AllReferencedChunks(c) {
			if g.HasChunk(ref) {
				tree |= g.ChunkRuntimeRequirements(ref)
			}
		}
		if tree.Has(domain.RuntimeEnsureChunk) {
			tree |= domain.RuntimeEnsureChunkHandlers
		}
		g.SetTreeRuntimeRequirements(c, tree)
	}
}

// loadsChunks reports whether a group of c has child groups.
func loadsChunks(store *domain.ChunkStore, c domain.ChunkKey) bool {
	for _, key := range store.ExpectChunk(c).Groups() {
		if len(store.ExpectChunkGroup(key).Children()) > 0 {
			return true
		}
	}
	return false
}
