// Package chunkgraph maintains the bipartite membership graph between chunks and modules.
//
// A ChunkGraph is mutated by a single owner while chunks are created, split and merged.
// Freeze turns it into a Snapshot that only exposes queries and may be shared between
// goroutines. Broken invariants, such as querying a chunk that was never added, are
// programmer errors and panic with a zerr error naming the offending chunk or module.
package chunkgraph

import (
	"maps"
	"slices"

	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

type chunkSet map[domain.ChunkKey]struct{}

func (s chunkSet) sorted() []domain.ChunkKey {
	return slices.Sorted(maps.Keys(s))
}

// EntryModule is an entry module of a chunk together with the entrypoint that introduced it.
type EntryModule struct {
	Module domain.ModuleIdentifier
	Group  domain.ChunkGroupKey
}

// ChunkRecord holds the module side of one chunk.
type ChunkRecord struct {
	entryModules        []EntryModule
	modules             domain.ModuleIdentifierSet
	runtimeModules      []domain.ModuleIdentifier
	sourceTypesByModule map[domain.ModuleIdentifier]domain.SourceTypeSet
}

// NewChunkRecord returns an empty record.
func NewChunkRecord() *ChunkRecord {
	return &ChunkRecord{
		modules: make(domain.ModuleIdentifierSet),
	}
}

// Modules returns the module identifiers of the record in sorted order.
func (r *ChunkRecord) Modules() []domain.ModuleIdentifier {
	return r.modules.Sorted()
}

// EntryModules returns the entry modules of the record in insertion order.
func (r *ChunkRecord) EntryModules() []EntryModule {
	return slices.Clone(r.entryModules)
}

// RuntimeModules returns the runtime modules of the record in insertion order.
func (r *ChunkRecord) RuntimeModules() []domain.ModuleIdentifier {
	return slices.Clone(r.runtimeModules)
}

func (r *ChunkRecord) entryIndex(m domain.ModuleIdentifier) int {
	return slices.IndexFunc(r.entryModules, func(e EntryModule) bool { return e.Module == m })
}

// moduleRecord holds the chunk side of one module.
type moduleRecord struct {
	chunks          chunkSet
	entryInChunks   chunkSet
	runtimeInChunks chunkSet
}

func newModuleRecord() *moduleRecord {
	return &moduleRecord{
		chunks:          make(chunkSet),
		entryInChunks:   make(chunkSet),
		runtimeInChunks: make(chunkSet),
	}
}

func (r *moduleRecord) empty() bool {
	return len(r.chunks) == 0 && len(r.entryInChunks) == 0 && len(r.runtimeInChunks) == 0
}

// ChunkGraph is the mutable chunk graph of a compilation.
type ChunkGraph struct {
	moduleGraph ports.ModuleGraph
	store       *domain.ChunkStore

	chunkRecords  map[domain.ChunkKey]*ChunkRecord
	moduleRecords map[domain.ModuleIdentifier]*moduleRecord

	runtimeModules      map[domain.ModuleIdentifier]ports.RuntimeModule
	runtimeRequirements map[domain.ChunkKey]domain.RuntimeGlobals
	treeRequirements    map[domain.ChunkKey]domain.RuntimeGlobals
	chunkIDs            map[domain.ChunkKey]string
	runtimeIDs          map[string]string

	frozen bool
}

// New creates an empty chunk graph over the given module graph and chunk store.
func New(moduleGraph ports.ModuleGraph, store *domain.ChunkStore) *ChunkGraph {
	return &ChunkGraph{
		moduleGraph:         moduleGraph,
		store:               store,
		chunkRecords:        make(map[domain.ChunkKey]*ChunkRecord),
		moduleRecords:       make(map[domain.ModuleIdentifier]*moduleRecord),
		runtimeModules:      make(map[domain.ModuleIdentifier]ports.RuntimeModule),
		runtimeRequirements: make(map[domain.ChunkKey]domain.RuntimeGlobals),
		treeRequirements:    make(map[domain.ChunkKey]domain.RuntimeGlobals),
		chunkIDs:            make(map[domain.ChunkKey]string),
		runtimeIDs:          make(map[string]string),
	}
}

// ModuleGraph returns the module graph the chunk graph was built over.
func (g *ChunkGraph) ModuleGraph() ports.ModuleGraph {
	return g.moduleGraph
}

// Store returns the chunk store holding chunks and chunk groups.
func (g *ChunkGraph) Store() *domain.ChunkStore {
	return g.store
}

// HasChunk reports whether c has a record.
func (g *ChunkGraph) HasChunk(c domain.ChunkKey) bool {
	_, ok := g.chunkRecords[c]
	return ok
}

// Chunks returns the keys of every chunk with a record, in ascending order.
func (g *ChunkGraph) Chunks() []domain.ChunkKey {
	return slices.Sorted(maps.Keys(g.chunkRecords))
}

func (g *ChunkGraph) mustBeMutable() {
	if g.frozen {
		panic(domain.ErrGraphFrozen)
	}
}

func (g *ChunkGraph) expectChunkRecord(c domain.ChunkKey) *ChunkRecord {
	rec, ok := g.chunkRecords[c]
	if !ok {
		panic(zerr.With(domain.ErrChunkNotFound, "chunk", uint32(c)))
	}
	return rec
}

func (g *ChunkGraph) expectModuleRecord(m domain.ModuleIdentifier) *moduleRecord {
	rec, ok := g.moduleRecords[m]
	if !ok {
		panic(zerr.With(domain.ErrModuleNotFound, "module", m.String()))
	}
	return rec
}

func (g *ChunkGraph) chunkRecord(c domain.ChunkKey) *ChunkRecord {
	rec, ok := g.chunkRecords[c]
	if !ok {
		rec = NewChunkRecord()
		g.chunkRecords[c] = rec
	}
	return rec
}

func (g *ChunkGraph) moduleRecord(m domain.ModuleIdentifier) *moduleRecord {
	rec, ok := g.moduleRecords[m]
	if !ok {
		rec = newModuleRecord()
		g.moduleRecords[m] = rec
	}
	return rec
}
