package chunkgraph

import (
	"slices"

	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// AddRuntimeModule registers rm and attaches it to c.
func (g *ChunkGraph) AddRuntimeModule(c domain.ChunkKey, rm ports.RuntimeModule) {
	g.mustBeMutable()
	g.runtimeModules[rm.Identifier()] = rm
	g.ConnectChunkAndRuntimeModule(c, rm.Identifier())
}

// RuntimeModule returns the registered runtime module with the given identifier.
func (g *ChunkGraph) RuntimeModule(id domain.ModuleIdentifier) (ports.RuntimeModule, bool) {
	rm, ok := g.runtimeModules[id]
	return rm, ok
}

func (g *ChunkGraph) expectRuntimeModule(c domain.ChunkKey, id domain.ModuleIdentifier) ports.RuntimeModule {
	rm, ok := g.runtimeModules[id]
	if !ok {
		err := zerr.With(domain.ErrRuntimeModuleNotFound, "module", id.String())
		panic(zerr.With(err, "chunk", uint32(c)))
	}
	return rm
}

// ChunkRuntimeModulesInOrder returns the runtime modules of c sorted by stage, then identifier.
func (g *ChunkGraph) ChunkRuntimeModulesInOrder(c domain.ChunkKey) []ports.RuntimeModule {
	ids := g.expectChunkRecord(c).runtimeModules
	out := make([]ports.RuntimeModule, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.expectRuntimeModule(c, id))
	}
	slices.SortStableFunc(out, func(a, b ports.RuntimeModule) int {
		if a.Stage() != b.Stage() {
			return int(a.Stage()) - int(b.Stage())
		}
		return a.Identifier().Compare(b.Identifier())
	})
	return out
}

// HasChunkFullHashModules reports whether a runtime module of c depends on the full hash.
func (g *ChunkGraph) HasChunkFullHashModules(c domain.ChunkKey) bool {
	for _, id := range g.expectChunkRecord(c).runtimeModules {
		if g.expectRuntimeModule(c, id).FullHash() {
			return true
		}
	}
	return false
}

// HasChunkDependentHashModules reports whether a runtime module of c depends on other chunk hashes.
func (g *ChunkGraph) HasChunkDependentHashModules(c domain.ChunkKey) bool {
	for _, id := range g.expectChunkRecord(c).runtimeModules {
		if g.expectRuntimeModule(c, id).DependentHash() {
			return true
		}
	}
	return false
}

// SetChunkRuntimeRequirements stores the runtime requirements of c.
func (g *ChunkGraph) SetChunkRuntimeRequirements(c domain.ChunkKey, req domain.RuntimeGlobals) {
	g.mustBeMutable()
	g.runtimeRequirements[c] = req
}

// SetTreeRuntimeRequirements stores the runtime requirements of c and the chunks it loads.
func (g *ChunkGraph) SetTreeRuntimeRequirements(c domain.ChunkKey, req domain.RuntimeGlobals) {
	g.mustBeMutable()
	g.treeRequirements[c] = req
}

// ChunkRuntimeRequirements returns the runtime requirements of c. Reading them before they
// were set is a consistency violation.
func (g *ChunkGraph) ChunkRuntimeRequirements(c domain.ChunkKey) domain.RuntimeGlobals {
	req, ok := g.runtimeRequirements[c]
	if !ok {
		panic(zerr.With(domain.ErrRuntimeRequirementsMissing, "chunk", uint32(c)))
	}
	return req
}

// TreeRuntimeRequirements returns the tree runtime requirements of c, falling back to the
// chunk requirements when no tree requirements were set.
func (g *ChunkGraph) TreeRuntimeRequirements(c domain.ChunkKey) domain.RuntimeGlobals {
	if req, ok := g.treeRequirements[c]; ok {
		return req
	}
	return g.ChunkRuntimeRequirements(c)
}

// SetChunkID assigns id to c and reports whether the id changed.
func (g *ChunkGraph) SetChunkID(c domain.ChunkKey, id string) bool {
	g.mustBeMutable()
	old, ok := g.chunkIDs[c]
	g.chunkIDs[c] = id
	return !ok || old != id
}

// ChunkID returns the id of c, if one was assigned.
func (g *ChunkGraph) ChunkID(c domain.ChunkKey) (string, bool) {
	id, ok := g.chunkIDs[c]
	return id, ok
}

// ExpectChunkID returns the id of c and panics if none was assigned.
func (g *ChunkGraph) ExpectChunkID(c domain.ChunkKey) string {
	id, ok := g.chunkIDs[c]
	if !ok {
		panic(zerr.With(domain.ErrChunkIDMissing, "chunk", uint32(c)))
	}
	return id
}

// SetRuntimeID assigns an id to a runtime.
func (g *ChunkGraph) SetRuntimeID(runtime, id string) {
	g.mustBeMutable()
	g.runtimeIDs[runtime] = id
}

// RuntimeID returns the id of a runtime, if one was assigned.
func (g *ChunkGraph) RuntimeID(runtime string) (string, bool) {
	id, ok := g.runtimeIDs[runtime]
	return id, ok
}

// ChunkConditionMap evaluates predicate for every chunk referenced by the groups of c and
// their descendants, keyed by chunk id.
func (g *ChunkGraph) ChunkConditionMap(c domain.ChunkKey, predicate func(domain.ChunkKey) bool) map[string]bool {
	out := make(map[string]bool)
	for _, ref := range g.store.AllReferencedChunks(c) {
		out[g.ExpectChunkID(ref)] = predicate(ref)
	}
	return out
}
