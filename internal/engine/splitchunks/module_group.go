package splitchunks

import (
	"maps"
	"slices"

	"go.trai.ch/chunkgraph/internal/core/domain"
)

// ModuleGroup collects the modules a cache group would move into a new chunk, together with
// the chunks they are taken from. One group turns into one chunk.
type ModuleGroup struct {
	modules            domain.ModuleIdentifierSet
	sourceTypesModules map[domain.SourceType]domain.ModuleIdentifierSet

	// CacheGroupIndex is the declaration index of the cache group.
	CacheGroupIndex    int
	Priority           float64
	ReuseExistingChunk bool
	// ChunkName names the chunk the group turns into. Empty for unnamed chunks.
	ChunkName string
	Sizes     SplitChunkSizes
	Chunks    map[domain.ChunkKey]struct{}
}

// NewModuleGroup returns an empty group for the cache group at index.
func NewModuleGroup(index int, chunkName string, cg *CacheGroup) *ModuleGroup {
	return &ModuleGroup{
		modules:            make(domain.ModuleIdentifierSet),
		sourceTypesModules: make(map[domain.SourceType]domain.ModuleIdentifierSet),
		CacheGroupIndex:    index,
		Priority:           cg.Priority,
		ReuseExistingChunk: cg.ReuseExistingChunk,
		ChunkName:          chunkName,
		Sizes:              make(SplitChunkSizes),
		Chunks:             make(map[domain.ChunkKey]struct{}),
	}
}

// CacheGroup returns the cache group the module group was created for.
func (g *ModuleGroup) CacheGroup(groups []CacheGroup) *CacheGroup {
	return &groups[g.CacheGroupIndex]
}

// Modules returns the members sorted by identifier.
func (g *ModuleGroup) Modules() []domain.ModuleIdentifier {
	return g.modules.Sorted()
}

// NumberOfModules returns the member count.
func (g *ModuleGroup) NumberOfModules() int {
	return len(g.modules)
}

// HasModule reports whether m is a member.
func (g *ModuleGroup) HasModule(m domain.ModuleIdentifier) bool {
	return g.modules.Has(m)
}

// SortedChunks returns the chunks of the group in ascending key order.
func (g *ModuleGroup) SortedChunks() []domain.ChunkKey {
	return slices.Sorted(maps.Keys(g.Chunks))
}

// AddModule adds m and its sizes. Adding a member again is a no-op.
func (g *ModuleGroup) AddModule(m domain.ModuleIdentifier, sizes ModuleSizes) {
	if !g.modules.Add(m) {
		return
	}
	for t, size := range sizes.expect(m) {
		g.Sizes[t] += size
		index, ok := g.sourceTypesModules[t]
		if !ok {
			index = make(domain.ModuleIdentifierSet)
			g.sourceTypesModules[t] = index
		}
		index.Add(m)
	}
}

// RemoveModule removes m and its sizes. Removing a non-member is a no-op. Totals never drop
// below zero.
func (g *ModuleGroup) RemoveModule(m domain.ModuleIdentifier, sizes ModuleSizes) {
	if !g.modules.Remove(m) {
		return
	}
	for t, size := range sizes.expect(m) {
		g.Sizes[t] = max(g.Sizes[t]-size, 0)
		if index, ok := g.sourceTypesModules[t]; ok {
			index.Remove(m)
		}
	}
}

// SourceTypesModules returns the members contributing any of types.
func (g *ModuleGroup) SourceTypesModules(types []domain.SourceType, sizes ModuleSizes) domain.ModuleIdentifierSet {
	if len(types) == 1 {
		index, ok := g.sourceTypesModules[types[0]]
		if !ok {
			return make(domain.ModuleIdentifierSet)
		}
		return index.Clone()
	}

	out := make(domain.ModuleIdentifierSet)
	for m := range g.modules {
		moduleSizes := sizes.expect(m)
		for _, t := range types {
			if _, ok := moduleSizes[t]; ok {
				out.Add(m)
				break
			}
		}
	}
	return out
}

// CompareEntries ranks two groups. A positive result means a should be realized before b.
// The magnitude of the result is meaningful.
func CompareEntries(a, b *ModuleGroup) float64 {
	if diff := a.Priority - b.Priority; diff != 0 {
		return diff
	}

	if diff := float64(len(a.Chunks)) - float64(len(b.Chunks)); diff != 0 {
		return diff
	}

	aReduce := a.Sizes.Total() * float64(len(a.Chunks)-1)
	bReduce := b.Sizes.Total() * float64(len(b.Chunks)-1)
	if diff := aReduce - bReduce; diff != 0 {
		return diff
	}

	// Reversed operands: every other step favors the larger value, this one the lower
	// declaration index.
	if diff := float64(b.CacheGroupIndex) - float64(a.CacheGroupIndex); diff != 0 {
		return diff
	}

	if diff := float64(len(a.modules)) - float64(len(b.modules)); diff != 0 {
		return diff
	}

	modulesA := a.modules.Sorted()
	modulesB := b.modules.Sorted()
	for len(modulesA) > 0 && len(modulesB) > 0 {
		lastA := modulesA[len(modulesA)-1]
		lastB := modulesB[len(modulesB)-1]
		modulesA = modulesA[:len(modulesA)-1]
		modulesB = modulesB[:len(modulesB)-1]
		if cmp := lastA.Compare(lastB); cmp != 0 {
			return float64(cmp)
		}
	}
	return 0
}
