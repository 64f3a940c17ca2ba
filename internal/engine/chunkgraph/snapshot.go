package chunkgraph

import (
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/core/ports"
)

// rootModulesCacheSize bounds the number of memoized root module lists.
const rootModulesCacheSize = 1024

// Snapshot is a read-only view of a frozen chunk graph. It is safe for concurrent use.
type Snapshot struct {
	g     *ChunkGraph
	roots *lru.Cache[domain.ChunkKey, []domain.ModuleIdentifier]
}

// Freeze ends the mutation phase. Any later mutation of g panics.
func (g *ChunkGraph) Freeze() *Snapshot {
	g.frozen = true
	roots, err := lru.New[domain.ChunkKey, []domain.ModuleIdentifier](rootModulesCacheSize)
	if err != nil {
		// Only reachable with a non-positive size.
		panic(err)
	}
	return &Snapshot{g: g, roots: roots}
}

// Frozen reports whether Freeze was called.
func (g *ChunkGraph) Frozen() bool {
	return g.frozen
}

// Store returns the chunk store. Callers must not modify it.
func (s *Snapshot) Store() *domain.ChunkStore {
	return s.g.store
}

// ModuleGraph returns the module graph.
func (s *Snapshot) ModuleGraph() ports.ModuleGraph {
	return s.g.moduleGraph
}

// Chunks returns every chunk with a record, in ascending key order.
func (s *Snapshot) Chunks() []domain.ChunkKey {
	return s.g.Chunks()
}

// OrderedChunkModules returns the modules of c sorted by identifier.
func (s *Snapshot) OrderedChunkModules(c domain.ChunkKey) []domain.ModuleIdentifier {
	return s.g.OrderedChunkModules(c)
}

// ChunkModulesBySourceType returns the modules of c contributing sourceType.
func (s *Snapshot) ChunkModulesBySourceType(c domain.ChunkKey, sourceType domain.SourceType) []domain.ModuleIdentifier {
	return s.g.ChunkModulesBySourceType(c, sourceType)
}

// ChunkEntryModules returns the entry modules of c in insertion order.
func (s *Snapshot) ChunkEntryModules(c domain.ChunkKey) []domain.ModuleIdentifier {
	return s.g.ChunkEntryModules(c)
}

// ModuleChunks returns the chunks containing m.
func (s *Snapshot) ModuleChunks(m domain.ModuleIdentifier) []domain.ChunkKey {
	return s.g.ModuleChunks(m)
}

// NumberOfChunkModules returns how many modules c holds.
func (s *Snapshot) NumberOfChunkModules(c domain.ChunkKey) int {
	return s.g.NumberOfChunkModules(c)
}

// ChunkModulesSizes returns the module size of c per source type.
func (s *Snapshot) ChunkModulesSizes(c domain.ChunkKey) map[domain.SourceType]float64 {
	return s.g.ChunkModulesSizes(c)
}

// ChunkSize estimates the cost of emitting c.
func (s *Snapshot) ChunkSize(c domain.ChunkKey, opts ChunkSizeOptions) float64 {
	return s.g.ChunkSize(c, opts)
}

// ChunkRootModules returns the root modules of c. Results are memoized.
func (s *Snapshot) ChunkRootModules(c domain.ChunkKey) []domain.ModuleIdentifier {
	if roots, ok := s.roots.Get(c); ok {
		return slices.Clone(roots)
	}
	roots := s.g.ChunkRootModules(c)
	s.roots.Add(c, roots)
	return slices.Clone(roots)
}

// ChunkRuntimeModulesInOrder returns the runtime modules of c in generation order.
func (s *Snapshot) ChunkRuntimeModulesInOrder(c domain.ChunkKey) []ports.RuntimeModule {
	return s.g.ChunkRuntimeModulesInOrder(c)
}

// HasChunkFullHashModules reports whether a runtime module of c depends on the full hash.
func (s *Snapshot) HasChunkFullHashModules(c domain.ChunkKey) bool {
	return s.g.HasChunkFullHashModules(c)
}

// HasChunkDependentHashModules reports whether a runtime module of c depends on other chunk hashes.
func (s *Snapshot) HasChunkDependentHashModules(c domain.ChunkKey) bool {
	return s.g.HasChunkDependentHashModules(c)
}

// ChunkRuntimeRequirements returns the runtime requirements of c.
func (s *Snapshot) ChunkRuntimeRequirements(c domain.ChunkKey) domain.RuntimeGlobals {
	return s.g.ChunkRuntimeRequirements(c)
}

// TreeRuntimeRequirements returns the tree runtime requirements of c.
func (s *Snapshot) TreeRuntimeRequirements(c domain.ChunkKey) domain.RuntimeGlobals {
	return s.g.TreeRuntimeRequirements(c)
}

// ChunkID returns the id of c.
func (s *Snapshot) ChunkID(c domain.ChunkKey) (string, bool) {
	return s.g.ChunkID(c)
}

// ExpectChunkID returns the id of c and panics if none was assigned.
func (s *Snapshot) ExpectChunkID(c domain.ChunkKey) string {
	return s.g.ExpectChunkID(c)
}

// ChunkConditionMap evaluates predicate for every chunk referenced by c.
func (s *Snapshot) ChunkConditionMap(c domain.ChunkKey, predicate func(domain.ChunkKey) bool) map[string]bool {
	return s.g.ChunkConditionMap(c, predicate)
}
