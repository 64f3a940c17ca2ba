package optimize

import (
	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/engine/chunkgraph"
)

type combination struct {
	a, b           domain.ChunkKey
	sizeDiff       float64
	integratedSize float64
}

// better reports whether c should be merged before other: larger saving first, then the
// smaller resulting chunk, then key order.
func (c combination) better(other combination) bool {
	if c.sizeDiff != other.sizeDiff {
		return c.sizeDiff > other.sizeDiff
	}
	if c.integratedSize != other.integratedSize {
		return c.integratedSize < other.integratedSize
	}
	if c.a != other.a {
		return c.a < other.a
	}
	return c.b < other.b
}

// LimitChunkCount merges chunks pairwise until at most maxChunks remain or no pair can be
// integrated. It returns the number of merges. A maxChunks below one disables the pass.
func LimitChunkCount(g *chunkgraph.ChunkGraph, maxChunks int, opts chunkgraph.ChunkSizeOptions) int {
	if maxChunks < 1 {
		return 0
	}
	merged := 0
	for len(g.Chunks()) > maxChunks {
		best, ok := bestCombination(g, opts)
		if !ok {
			break
		}
		integrate(g, best.a, best.b)
		merged++
	}
	return merged
}

func bestCombination(g *chunkgraph.ChunkGraph, opts chunkgraph.ChunkSizeOptions) (combination, bool) {
	chunks := g.Chunks()
	sizes := make(map[domain.ChunkKey]float64, len(chunks))
	for _, c := range chunks {
		sizes[c] = g.ChunkSize(c, opts)
	}

	var best combination
	found := false
	for i, a := range chunks {
		for _, b := range chunks[i+1:] {
			if !g.CanChunksBeIntegrated(a, b) {
				continue
			}
			integrated := g.IntegratedChunksSize(a, b, opts)
			candidate := combination{
				a:              a,
				b:              b,
				sizeDiff:       sizes[a] + sizes[b] - integrated,
				integratedSize: integrated,
			}
			if !found || candidate.better(best) {
				best, found = candidate, true
			}
		}
	}
	return best, found
}

// integrate merges b into a, moves the runtime modules of b and deletes b.
func integrate(g *chunkgraph.ChunkGraph, a, b domain.ChunkKey) {
	g.IntegrateChunks(a, b)
	for _, rm := range g.ChunkRuntimeModules(b) {
		g.DisconnectChunkAndRuntimeModule(b, rm)
		g.ConnectChunkAndRuntimeModule(a, rm)
	}
	g.RemoveChunk(b)
	g.Store().RemoveChunk(b)
}
