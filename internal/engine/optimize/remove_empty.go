package optimize

import (
	"go.trai.ch/chunkgraph/internal/engine/chunkgraph"
)

// RemoveEmptyChunks deletes every chunk without modules that neither carries a runtime nor
// holds entry or runtime modules. It returns the number of removed chunks.
func RemoveEmptyChunks(g *chunkgraph.ChunkGraph) int {
	store := g.Store()
	removed := 0
	for _, c := range g.Chunks() {
		if g.NumberOfChunkModules(c) > 0 || g.NumberOfEntryModules(c) > 0 {
			continue
		}
		if g.HasChunkRuntimeModules(c) || store.HasRuntime(c) {
			continue
		}
		g.DisconnectChunk(c)
		g.RemoveChunk(c)
		store.RemoveChunk(c)
		removed++
	}
	return removed
}
