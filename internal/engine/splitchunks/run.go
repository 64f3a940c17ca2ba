package splitchunks

import (
	"encoding/binary"
	"maps"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/engine/chunkgraph"
)

// Result summarizes one split-chunks run.
type Result struct {
	Created int
	Reused  int
}

// Run moves the modules selected by the cache groups into new or reused chunks of g.
func Run(g *chunkgraph.ChunkGraph, cacheGroups []CacheGroup) Result {
	r := &runner{
		g:           g,
		store:       g.Store(),
		cacheGroups: cacheGroups,
		sizes:       NewModuleSizes(g.ModuleGraph()),
		candidates:  make(map[string]*ModuleGroup),
	}
	r.collect()
	for key, group := range r.candidates {
		if r.removeMinSizeViolatingModules(group) {
			delete(r.candidates, key)
		}
	}

	var res Result
	for len(r.candidates) > 0 {
		key, best := r.best()
		delete(r.candidates, key)
		if r.realize(best, &res) {
			r.update(best)
		}
	}
	return res
}

type runner struct {
	g           *chunkgraph.ChunkGraph
	store       *domain.ChunkStore
	cacheGroups []CacheGroup
	sizes       ModuleSizes
	candidates  map[string]*ModuleGroup
}

// collect builds one candidate per cache group and chunk combination, or per cache group
// and chunk name for named cache groups.
func (r *runner) collect() {
	for _, m := range r.g.ModuleGraph().Modules() {
		chunks := r.g.ModuleChunks(m)
		if len(chunks) == 0 {
			continue
		}
		for i := range r.cacheGroups {
			cg := &r.cacheGroups[i]
			if !cg.matchesModule(m, r.sizes[m]) {
				continue
			}
			selected := r.selectChunks(cg, chunks)
			if len(selected) < cg.MinChunks {
				continue
			}

			key := candidateKey(i, cg.Name, selected)
			group, ok := r.candidates[key]
			if !ok {
				group = NewModuleGroup(i, cg.Name, cg)
				r.candidates[key] = group
			}
			group.AddModule(m, r.sizes)
			for _, c := range selected {
				group.Chunks[c] = struct{}{}
			}
		}
	}
}

func (r *runner) selectChunks(cg *CacheGroup, chunks []domain.ChunkKey) []domain.ChunkKey {
	if cg.Chunks == domain.ChunkFilterAll {
		return chunks
	}
	wantInitial := cg.Chunks == domain.ChunkFilterInitial
	var out []domain.ChunkKey
	for _, c := range chunks {
		if r.store.CanBeInitial(c) == wantInitial {
			out = append(out, c)
		}
	}
	return out
}

func candidateKey(index int, name string, chunks []domain.ChunkKey) string {
	prefix := strconv.Itoa(index) + ":"
	if name != "" {
		return prefix + "name:" + name
	}
	d := xxhash.New()
	var buf [4]byte
	for _, c := range chunks {
		binary.LittleEndian.PutUint32(buf[:], uint32(c))
		_, _ = d.Write(buf[:])
	}
	return prefix + strconv.FormatUint(d.Sum64(), 16)
}

// removeMinSizeViolatingModules drops the modules of every source type below the minimum
// size and reports whether the group became empty.
func (r *runner) removeMinSizeViolatingModules(group *ModuleGroup) bool {
	cg := group.CacheGroup(r.cacheGroups)
	violating := cg.violatingMinSizes(group.Sizes)
	if len(violating) == 0 {
		return false
	}
	for m := range group.SourceTypesModules(violating, r.sizes) {
		group.RemoveModule(m, r.sizes)
	}
	return group.NumberOfModules() == 0
}

func (r *runner) best() (string, *ModuleGroup) {
	keys := slices.Sorted(maps.Keys(r.candidates))
	bestKey := keys[0]
	best := r.candidates[bestKey]
	for _, key := range keys[1:] {
		if candidate := r.candidates[key]; CompareEntries(candidate, best) > 0 {
			bestKey, best = key, candidate
		}
	}
	return bestKey, best
}

// realize turns group into a chunk and reports whether any chunk changed.
func (r *runner) realize(group *ModuleGroup, res *Result) bool {
	cg := group.CacheGroup(r.cacheGroups)
	usedChunks := group.SortedChunks()

	var target *domain.Chunk
	if group.ChunkName != "" {
		target, _ = r.store.ChunkByName(group.ChunkName)
	} else if group.ReuseExistingChunk {
		target = r.reusableChunk(group, usedChunks)
	}
	if target != nil {
		usedChunks = slices.DeleteFunc(usedChunks, func(c domain.ChunkKey) bool {
			return c == target.Key()
		})
	}
	if len(usedChunks) == 0 {
		return false
	}
	if group.ChunkName == "" && target == nil && len(usedChunks) < cg.MinChunks {
		return false
	}

	if target == nil {
		target = r.store.NewChunk(group.ChunkName)
		r.g.AddChunk(target.Key())
		res.Created++
	} else {
		res.Reused++
	}
	if cg.IDHint != "" {
		target.AddIDNameHint(cg.IDHint)
	}

	modules := group.Modules()
	for _, c := range usedChunks {
		chunk := r.store.ExpectChunk(c)
		for _, key := range chunk.Groups() {
			if !target.IsInGroup(key) {
				r.store.InsertChunkIntoGroup(target.Key(), key, c)
			}
		}
		target.Runtime = domain.MergeRuntime(target.Runtime, chunk.Runtime)
		for _, m := range modules {
			if r.g.IsModuleInChunk(m, c) {
				r.g.DisconnectChunkAndModule(c, m)
			}
		}
	}
	for _, m := range modules {
		r.g.ConnectChunkAndModule(target.Key(), m)
	}
	group.Chunks = make(map[domain.ChunkKey]struct{}, len(usedChunks))
	for _, c := range usedChunks {
		group.Chunks[c] = struct{}{}
	}
	return true
}

// reusableChunk returns a chunk of the group holding exactly the group's modules.
func (r *runner) reusableChunk(group *ModuleGroup, chunks []domain.ChunkKey) *domain.Chunk {
	for _, c := range chunks {
		if r.g.NumberOfChunkModules(c) != group.NumberOfModules() {
			continue
		}
		if len(chunks) > 1 && r.g.NumberOfEntryModules(c) > 0 {
			continue
		}
		all := true
		for _, m := range group.Modules() {
			if !r.g.IsModuleInChunk(m, c) {
				all = false
				break
			}
		}
		if all {
			return r.store.ExpectChunk(c)
		}
	}
	return nil
}

// update removes the modules of the realized group from every remaining candidate sharing
// one of its chunks.
func (r *runner) update(realized *ModuleGroup) {
	for key := range r.candidates {
		group := r.candidates[key]
		if !overlaps(group.Chunks, realized.Chunks) {
			continue
		}
		updated := false
		for _, m := range realized.Modules() {
			if group.HasModule(m) {
				group.RemoveModule(m, r.sizes)
				updated = true
			}
		}
		if !updated {
			continue
		}
		if group.NumberOfModules() == 0 || r.removeMinSizeViolatingModules(group) {
			delete(r.candidates, key)
		}
	}
}

func overlaps(a, b map[domain.ChunkKey]struct{}) bool {
	for c := range a {
		if _, ok := b[c]; ok {
			return true
		}
	}
	return false
}
