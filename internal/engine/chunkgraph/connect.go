package chunkgraph

import (
	"slices"

	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/zerr"
)

// AddChunk creates an empty record for c unless one exists.
func (g *ChunkGraph) AddChunk(c domain.ChunkKey) {
	g.mustBeMutable()
	g.chunkRecord(c)
}

// AddChunkWithRecord installs a prepared record for c. c must not have a record yet.
func (g *ChunkGraph) AddChunkWithRecord(c domain.ChunkKey, rec *ChunkRecord) {
	g.mustBeMutable()
	if _, ok := g.chunkRecords[c]; ok {
		panic(zerr.With(domain.ErrChunkRecordExists, "chunk", uint32(c)))
	}
	g.chunkRecords[c] = rec
}

// RemoveChunk drops the record of c and returns it. Module back edges are left untouched,
// callers disconnect the chunk first.
func (g *ChunkGraph) RemoveChunk(c domain.ChunkKey) *ChunkRecord {
	g.mustBeMutable()
	rec, ok := g.chunkRecords[c]
	if !ok {
		return nil
	}
	delete(g.chunkRecords, c)
	return rec
}

// ConnectChunkAndModule adds m to c on both sides of the graph.
func (g *ChunkGraph) ConnectChunkAndModule(c domain.ChunkKey, m domain.ModuleIdentifier) {
	g.mustBeMutable()
	g.moduleRecord(m).chunks[c] = struct{}{}
	g.chunkRecord(c).modules.Add(m)
}

// DisconnectChunkAndModule removes m from c on both sides and drops any source type
// override recorded for m in c.
func (g *ChunkGraph) DisconnectChunkAndModule(c domain.ChunkKey, m domain.ModuleIdentifier) {
	g.mustBeMutable()
	delete(g.expectModuleRecord(m).chunks, c)

	rec := g.expectChunkRecord(c)
	rec.modules.Remove(m)
	delete(rec.sourceTypesByModule, m)
}

// ConnectChunkAndEntryModule records m as an entry module of c introduced by group.
// Re-connecting an existing entry keeps its position and updates the group.
func (g *ChunkGraph) ConnectChunkAndEntryModule(c domain.ChunkKey, m domain.ModuleIdentifier, group domain.ChunkGroupKey) {
	g.mustBeMutable()
	g.moduleRecord(m).entryInChunks[c] = struct{}{}

	rec := g.chunkRecord(c)
	if idx := rec.entryIndex(m); idx >= 0 {
		rec.entryModules[idx].Group = group
		return
	}
	rec.entryModules = append(rec.entryModules, EntryModule{Module: m, Group: group})
}

// DisconnectChunkAndEntryModule removes the entry edge between c and m on both sides.
func (g *ChunkGraph) DisconnectChunkAndEntryModule(c domain.ChunkKey, m domain.ModuleIdentifier) {
	g.mustBeMutable()
	delete(g.expectModuleRecord(m).entryInChunks, c)

	rec := g.expectChunkRecord(c)
	if idx := rec.entryIndex(m); idx >= 0 {
		rec.entryModules = slices.Delete(rec.entryModules, idx, idx+1)
	}
	delete(rec.sourceTypesByModule, m)
}

// ConnectChunkAndRuntimeModule appends m to the runtime modules of c unless present.
func (g *ChunkGraph) ConnectChunkAndRuntimeModule(c domain.ChunkKey, m domain.ModuleIdentifier) {
	g.mustBeMutable()
	g.moduleRecord(m).runtimeInChunks[c] = struct{}{}

	rec := g.chunkRecord(c)
	if !slices.Contains(rec.runtimeModules, m) {
		rec.runtimeModules = append(rec.runtimeModules, m)
	}
}

// DisconnectChunkAndRuntimeModule removes the runtime edge between c and m on both sides.
// Missing records are ignored.
func (g *ChunkGraph) DisconnectChunkAndRuntimeModule(c domain.ChunkKey, m domain.ModuleIdentifier) {
	g.mustBeMutable()
	if rec, ok := g.moduleRecords[m]; ok {
		delete(rec.runtimeInChunks, c)
	}
	if rec, ok := g.chunkRecords[c]; ok {
		rec.runtimeModules = slices.DeleteFunc(rec.runtimeModules, func(id domain.ModuleIdentifier) bool {
			return id == m
		})
	}
}

// DisconnectChunk removes every module of c and detaches c from all its chunk groups.
func (g *ChunkGraph) DisconnectChunk(c domain.ChunkKey) {
	g.mustBeMutable()
	rec := g.expectChunkRecord(c)
	for m := range rec.modules {
		delete(g.expectModuleRecord(m).chunks, c)
	}
	rec.modules = make(domain.ModuleIdentifierSet)
	rec.sourceTypesByModule = nil
	g.store.DisconnectFromGroups(c)
}

// ReplaceModule moves every module, entry and runtime edge of oldModule onto newModule.
// Entry and runtime positions are kept. oldModule is left without edges.
func (g *ChunkGraph) ReplaceModule(oldModule, newModule domain.ModuleIdentifier) {
	g.mustBeMutable()
	if oldModule == newModule {
		return
	}
	oldRec := g.expectModuleRecord(oldModule)
	newRec := g.moduleRecord(newModule)

	for _, c := range oldRec.chunks.sorted() {
		rec := g.expectChunkRecord(c)
		rec.modules.Remove(oldModule)
		rec.modules.Add(newModule)
		if types, ok := rec.sourceTypesByModule[oldModule]; ok {
			delete(rec.sourceTypesByModule, oldModule)
			rec.sourceTypesByModule[newModule] = types
		}
		newRec.chunks[c] = struct{}{}
	}
	clear(oldRec.chunks)

	for _, c := range oldRec.entryInChunks.sorted() {
		rec := g.expectChunkRecord(c)
		if idx := rec.entryIndex(oldModule); idx >= 0 {
			if rec.entryIndex(newModule) >= 0 {
				rec.entryModules = slices.Delete(rec.entryModules, idx, idx+1)
			} else {
				rec.entryModules[idx].Module = newModule
			}
		}
		newRec.entryInChunks[c] = struct{}{}
	}
	clear(oldRec.entryInChunks)

	for _, c := range oldRec.runtimeInChunks.sorted() {
		rec := g.expectChunkRecord(c)
		if idx := slices.Index(rec.runtimeModules, oldModule); idx >= 0 {
			if slices.Contains(rec.runtimeModules, newModule) {
				rec.runtimeModules = slices.Delete(rec.runtimeModules, idx, idx+1)
			} else {
				rec.runtimeModules[idx] = newModule
			}
		}
		newRec.runtimeInChunks[c] = struct{}{}
	}
	clear(oldRec.runtimeInChunks)
}
