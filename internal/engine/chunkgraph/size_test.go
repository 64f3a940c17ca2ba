package chunkgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/engine/chunkgraph"
)

func ptr(f float64) *float64 {
	return &f
}

func TestChunkModulesSizes(t *testing.T) {
	css := domain.ModuleSpec{
		ID:    id("style.css"),
		Sizes: map[domain.SourceType]float64{domain.SourceTypeCSS: 30, domain.SourceTypeJavaScript: 5},
	}
	g, store := newGraph(t, jsModule("a.js", 100), jsModule("b.js", 50), css)
	c := newChunk(g, store, "main")
	for _, m := range ids("a.js", "b.js", "style.css", "unknown") {
		g.ConnectChunkAndModule(c, m)
	}

	assert.Equal(t, map[domain.SourceType]float64{
		domain.SourceTypeJavaScript: 155,
		domain.SourceTypeCSS:        30,
	}, g.ChunkModulesSizes(c))
	assert.InDelta(t, 185, g.ChunkModulesSize(c), 1e-9)
}

func TestChunkSize(t *testing.T) {
	g, store := newGraph(t, jsModule("a.js", 100))
	lazy := newChunk(g, store, "lazy")
	initial := newChunk(g, store, "main")
	g.ConnectChunkAndModule(lazy, id("a.js"))
	g.ConnectChunkAndModule(initial, id("a.js"))
	store.AddChunkToGroup(initial, store.NewChunkGroup(domain.ChunkGroupEntrypoint, "main").Key())

	assert.InDelta(t, 10100, g.ChunkSize(lazy, chunkgraph.ChunkSizeOptions{}), 1e-9)
	assert.InDelta(t, 11000, g.ChunkSize(initial, chunkgraph.ChunkSizeOptions{}), 1e-9)

	opts := chunkgraph.ChunkSizeOptions{ChunkOverhead: ptr(0), EntryChunkMultiplicator: ptr(2)}
	assert.InDelta(t, 100, g.ChunkSize(lazy, opts), 1e-9)
	assert.InDelta(t, 200, g.ChunkSize(initial, opts), 1e-9)
}

func TestIntegratedChunksSize(t *testing.T) {
	g, store := newGraph(t, jsModule("m1", 10), jsModule("m2", 20), jsModule("m3", 40))
	a := newChunk(g, store, "a")
	b := newChunk(g, store, "b")
	g.ConnectChunkAndModule(a, id("m1"))
	g.ConnectChunkAndModule(a, id("m2"))
	g.ConnectChunkAndModule(b, id("m2"))
	g.ConnectChunkAndModule(b, id("m3"))
	opts := chunkgraph.ChunkSizeOptions{ChunkOverhead: ptr(1)}

	assert.InDelta(t, 71, g.IntegratedChunksSize(a, b, opts), 1e-9)
	assert.Equal(t, ids("m1", "m2"), g.OrderedChunkModules(a))

	store.AddChunkToGroup(b, store.NewChunkGroup(domain.ChunkGroupEntrypoint, "main").Key())
	assert.InDelta(t, 701, g.IntegratedChunksSize(a, b, opts), 1e-9)

	g.IntegrateChunks(a, b)
	assert.InDelta(t, 701, g.ChunkSize(a, opts), 1e-9)
}
