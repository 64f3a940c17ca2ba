package optimize

import (
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/engine/chunkgraph"
)

// AssignChunkIDs gives every chunk an id. Named chunks use their name; the others are
// numbered in the order of their first module identifier, skipping numbers taken by names.
// Every runtime gets its key as id. It returns the number of chunks whose id changed.
func AssignChunkIDs(g *chunkgraph.ChunkGraph) int {
	store := g.Store()
	taken := make(map[string]struct{})
	var unnamed []domain.ChunkKey
	changed := 0

	for _, c := range g.Chunks() {
		chunk := store.ExpectChunk(c)
		if chunk.Name == "" {
			unnamed = append(unnamed, c)
			continue
		}
		taken[chunk.Name] = struct{}{}
		if g.SetChunkID(c, chunk.Name) {
			changed++
		}
		for _, runtime := range chunk.Runtime {
			g.SetRuntimeID(runtime, runtime)
		}
	}

	keys := make(map[domain.ChunkKey]string, len(unnamed))
	for _, c := range unnamed {
		modules := g.OrderedChunkModules(c)
		names := make([]string, 0, len(modules))
		for _, m := range modules {
			names = append(names, m.String())
		}
		keys[c] = strings.Join(names, "\x00")
	}
	slices.SortStableFunc(unnamed, func(a, b domain.ChunkKey) int {
		if c := strings.Compare(keys[a], keys[b]); c != 0 {
			return c
		}
		return int(a) - int(b)
	})

	next := 0
	for _, c := range unnamed {
		id := strconv.Itoa(next)
		for {
			if _, ok := taken[id]; !ok {
				break
			}
			next++
			id = strconv.Itoa(next)
		}
		next++
		if g.SetChunkID(c, id) {
			changed++
		}
		for _, runtime := range store.ExpectChunk(c).Runtime {
			g.SetRuntimeID(runtime, runtime)
		}
	}
	return changed
}
