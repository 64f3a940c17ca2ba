package chunkgraph

import (
	"go.trai.ch/chunkgraph/internal/core/domain"
)

const (
	// DefaultChunkOverhead is the fixed cost added to every chunk size estimate.
	DefaultChunkOverhead = 10000.0
	// DefaultEntryChunkMultiplicator scales the module size of chunks that can be initial.
	DefaultEntryChunkMultiplicator = 10.0
)

// ChunkSizeOptions configures the chunk size heuristic. Nil fields use the defaults.
type ChunkSizeOptions struct {
	ChunkOverhead           *float64
	EntryChunkMultiplicator *float64
}

func (o ChunkSizeOptions) overhead() float64 {
	if o.ChunkOverhead != nil {
		return *o.ChunkOverhead
	}
	return DefaultChunkOverhead
}

func (o ChunkSizeOptions) multiplicator() float64 {
	if o.EntryChunkMultiplicator != nil {
		return *o.EntryChunkMultiplicator
	}
	return DefaultEntryChunkMultiplicator
}

// moduleSize sums the sizes of every source type of m. Modules unknown to the module
// graph weigh nothing.
func (g *ChunkGraph) moduleSize(m domain.ModuleIdentifier) float64 {
	if !g.moduleGraph.HasModule(m) {
		return 0
	}
	var size float64
	for _, t := range g.moduleGraph.SourceTypes(m) {
		size += g.moduleGraph.Size(m, t)
	}
	return size
}

// ChunkModulesSize returns the summed size of every module of c.
func (g *ChunkGraph) ChunkModulesSize(c domain.ChunkKey) float64 {
	var size float64
	for m := range g.expectChunkRecord(c).modules {
		size += g.moduleSize(m)
	}
	return size
}

// ChunkModulesSizes returns the summed module size of c per source type.
func (g *ChunkGraph) ChunkModulesSizes(c domain.ChunkKey) map[domain.SourceType]float64 {
	sizes := make(map[domain.SourceType]float64)
	for m := range g.expectChunkRecord(c).modules {
		if !g.moduleGraph.HasModule(m) {
			continue
		}
		for _, t := range g.moduleGraph.SourceTypes(m) {
			sizes[t] += g.moduleGraph.Size(m, t)
		}
	}
	return sizes
}

// ChunkSize estimates the cost of emitting c.
func (g *ChunkGraph) ChunkSize(c domain.ChunkKey, opts ChunkSizeOptions) float64 {
	multiplier := 1.0
	if g.store.CanBeInitial(c) {
		multiplier = opts.multiplicator()
	}
	return opts.overhead() + g.ChunkModulesSize(c)*multiplier
}

// IntegratedChunksSize estimates the cost of the chunk IntegrateChunks(a, b) would produce
// without changing the graph. Modules present in both chunks are counted once.
func (g *ChunkGraph) IntegratedChunksSize(a, b domain.ChunkKey, opts ChunkSizeOptions) float64 {
	recA := g.expectChunkRecord(a)
	recB := g.expectChunkRecord(b)

	var size float64
	for m := range recA.modules {
		size += g.moduleSize(m)
	}
	for m := range recB.modules {
		if !recA.modules.Has(m) {
			size += g.moduleSize(m)
		}
	}

	multiplier := 1.0
	if g.store.CanBeInitial(a) || g.store.CanBeInitial(b) {
		multiplier = opts.multiplicator()
	}
	return opts.overhead() + size*multiplier
}
