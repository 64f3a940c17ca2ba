package chunkgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/engine/chunkgraph"
	"go.trai.ch/chunkgraph/internal/engine/modulegraph"
)

func id(s string) domain.ModuleIdentifier {
	return domain.NewModuleIdentifier(s)
}

func ids(ss ...string) []domain.ModuleIdentifier {
	out := make([]domain.ModuleIdentifier, 0, len(ss))
	for _, s := range ss {
		out = append(out, id(s))
	}
	return out
}

func jsModule(name string, size float64, deps ...domain.Connection) domain.ModuleSpec {
	return domain.ModuleSpec{
		ID:           id(name),
		SourceTypes:  []domain.SourceType{domain.SourceTypeJavaScript},
		Sizes:        map[domain.SourceType]float64{domain.SourceTypeJavaScript: size},
		Dependencies: deps,
	}
}

func active(target string) domain.Connection {
	return domain.Connection{Target: id(target), State: domain.ConnectionActive}
}

func transitive(target string) domain.Connection {
	return domain.Connection{Target: id(target), State: domain.ConnectionTransitiveOnly}
}

func inactive(target string) domain.Connection {
	return domain.Connection{Target: id(target), State: domain.ConnectionInactive}
}

func newGraph(t *testing.T, specs ...domain.ModuleSpec) (*chunkgraph.ChunkGraph, *domain.ChunkStore) {
	t.Helper()
	mg, err := modulegraph.New(specs)
	require.NoError(t, err)
	store := domain.NewChunkStore()
	return chunkgraph.New(mg, store), store
}

func newChunk(g *chunkgraph.ChunkGraph, store *domain.ChunkStore, name string) domain.ChunkKey {
	c := store.NewChunk(name)
	g.AddChunk(c.Key())
	return c.Key()
}

// requireSymmetric checks that every edge is recorded on both sides of the graph.
func requireSymmetric(t *testing.T, g *chunkgraph.ChunkGraph, modules []domain.ModuleIdentifier) {
	t.Helper()
	for _, c := range g.Chunks() {
		for m := range g.ChunkModules(c) {
			require.Contains(t, g.ModuleChunks(m), c, "module %s misses back edge to chunk %d", m, c)
		}
		for _, m := range g.ChunkEntryModules(c) {
			require.Contains(t, g.ModuleEntryChunks(m), c)
		}
		for _, m := range g.ChunkRuntimeModules(c) {
			require.Contains(t, g.ModuleRuntimeChunks(m), c)
		}
	}
	for _, m := range modules {
		if !g.HasModuleEdges(m) {
			continue
		}
		for _, c := range g.ModuleChunks(m) {
			require.True(t, g.IsModuleInChunk(m, c))
		}
		for _, c := range g.ModuleEntryChunks(m) {
			require.Contains(t, g.ChunkEntryModules(c), m)
		}
		for _, c := range g.ModuleRuntimeChunks(m) {
			require.Contains(t, g.ChunkRuntimeModules(c), m)
		}
	}
}
