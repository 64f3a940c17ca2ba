package domain

import (
	"slices"
)

// ChunkKey is the compilation-unique key of a chunk.
type ChunkKey uint32

// ChunkGroupKey is the compilation-unique key of a chunk group.
type ChunkGroupKey uint32

// Chunk is an output unit. Module membership lives in the chunk graph, not here.
type Chunk struct {
	// Name is the user facing chunk name. Empty means unnamed.
	Name string
	// Runtime is the set of runtimes this chunk is used in.
	Runtime RuntimeSpec
	// PreventIntegration forbids merging this chunk with any other.
	PreventIntegration bool

	key         ChunkKey
	idNameHints map[string]struct{}
	groups      map[ChunkGroupKey]struct{}
}

// Key returns the chunk key.
func (c *Chunk) Key() ChunkKey {
	return c.key
}

// AddIDNameHint records a hint used when naming the chunk id.
func (c *Chunk) AddIDNameHint(hint string) {
	if c.idNameHints == nil {
		c.idNameHints = make(map[string]struct{})
	}
	c.idNameHints[hint] = struct{}{}
}

// IDNameHints returns the recorded hints in sorted order.
func (c *Chunk) IDNameHints() []string {
	out := make([]string, 0, len(c.idNameHints))
	for h := range c.idNameHints {
		out = append(out, h)
	}
	slices.Sort(out)
	return out
}

// AddGroup records membership in group g. It does not touch the group itself.
func (c *Chunk) AddGroup(g ChunkGroupKey) {
	if c.groups == nil {
		c.groups = make(map[ChunkGroupKey]struct{})
	}
	c.groups[g] = struct{}{}
}

// RemoveGroup forgets membership in group g. It does not touch the group itself.
func (c *Chunk) RemoveGroup(g ChunkGroupKey) {
	delete(c.groups, g)
}

// IsInGroup reports whether the chunk is a member of g.
func (c *Chunk) IsInGroup(g ChunkGroupKey) bool {
	_, ok := c.groups[g]
	return ok
}

// Groups returns the groups containing the chunk, ordered by key.
func (c *Chunk) Groups() []ChunkGroupKey {
	out := make([]ChunkGroupKey, 0, len(c.groups))
	for g := range c.groups {
		out = append(out, g)
	}
	slices.Sort(out)
	return out
}

// NumberOfGroups returns how many groups contain the chunk.
func (c *Chunk) NumberOfGroups() int {
	return len(c.groups)
}

// ChunkGroupKind distinguishes entrypoints from async chunk groups.
type ChunkGroupKind uint8

const (
	// ChunkGroupNormal is a chunk group loaded on demand.
	ChunkGroupNormal ChunkGroupKind = iota
	// ChunkGroupEntrypoint is a chunk group loaded initially.
	ChunkGroupEntrypoint
)

// String returns the configuration spelling of the kind.
func (k ChunkGroupKind) String() string {
	if k == ChunkGroupEntrypoint {
		return "entrypoint"
	}
	return "normal"
}

// ChunkGroup is an ordered set of chunks that are loaded together.
type ChunkGroup struct {
	// Name is the group name. Empty means unnamed.
	Name string
	// Kind is the group kind.
	Kind ChunkGroupKind

	key             ChunkGroupKey
	chunks          []ChunkKey
	parents         []ChunkGroupKey
	children        []ChunkGroupKey
	runtimeChunk    ChunkKey
	hasRuntime      bool
	entrypointChunk ChunkKey
	hasEntrypoint   bool
}

// Key returns the group key.
func (g *ChunkGroup) Key() ChunkGroupKey {
	return g.key
}

// IsInitial reports whether the group is loaded on startup.
func (g *ChunkGroup) IsInitial() bool {
	return g.Kind == ChunkGroupEntrypoint
}

// Chunks returns the ordered chunks of the group.
func (g *ChunkGroup) Chunks() []ChunkKey {
	return slices.Clone(g.chunks)
}

// HasChunk reports whether c belongs to the group.
func (g *ChunkGroup) HasChunk(c ChunkKey) bool {
	return slices.Contains(g.chunks, c)
}

// PushChunk appends c unless present and reports whether it was added.
func (g *ChunkGroup) PushChunk(c ChunkKey) bool {
	if g.HasChunk(c) {
		return false
	}
	g.chunks = append(g.chunks, c)
	return true
}

// UnshiftChunk moves or inserts c at the front and reports whether the order changed.
func (g *ChunkGroup) UnshiftChunk(c ChunkKey) bool {
	idx := slices.Index(g.chunks, c)
	switch {
	case idx == 0:
		return false
	case idx > 0:
		g.chunks = slices.Delete(g.chunks, idx, idx+1)
	}
	g.chunks = slices.Insert(g.chunks, 0, c)
	return true
}

// InsertChunk places c before the chunk before. It reports whether c was newly added.
// An already present c that sits after before is moved in front of it.
func (g *ChunkGroup) InsertChunk(c, before ChunkKey) bool {
	beforeIdx := slices.Index(g.chunks, before)
	if beforeIdx < 0 {
		return false
	}
	oldIdx := slices.Index(g.chunks, c)
	if oldIdx >= 0 {
		if oldIdx > beforeIdx {
			g.chunks = slices.Delete(g.chunks, oldIdx, oldIdx+1)
			g.chunks = slices.Insert(g.chunks, beforeIdx, c)
		}
		return false
	}
	g.chunks = slices.Insert(g.chunks, beforeIdx, c)
	return true
}

// RemoveChunk drops c from the group and reports whether it was present.
func (g *ChunkGroup) RemoveChunk(c ChunkKey) bool {
	idx := slices.Index(g.chunks, c)
	if idx < 0 {
		return false
	}
	g.chunks = slices.Delete(g.chunks, idx, idx+1)
	return true
}

// ReplaceChunk substitutes newChunk for oldChunk, keeping the earlier of both positions
// when newChunk is already present. Runtime and entrypoint chunk references follow.
func (g *ChunkGroup) ReplaceChunk(oldChunk, newChunk ChunkKey) bool {
	if g.hasRuntime && g.runtimeChunk == oldChunk {
		g.runtimeChunk = newChunk
	}
	if g.hasEntrypoint && g.entrypointChunk == oldChunk {
		g.entrypointChunk = newChunk
	}

	oldIdx := slices.Index(g.chunks, oldChunk)
	if oldIdx < 0 {
		return false
	}
	newIdx := slices.Index(g.chunks, newChunk)
	switch {
	case newIdx < 0:
		g.chunks[oldIdx] = newChunk
	case newIdx < oldIdx:
		g.chunks = slices.Delete(g.chunks, oldIdx, oldIdx+1)
	case newIdx != oldIdx:
		g.chunks[oldIdx] = newChunk
		g.chunks = slices.Delete(g.chunks, newIdx, newIdx+1)
	}
	return true
}

// SetRuntimeChunk marks c as the chunk carrying the runtime of this group.
func (g *ChunkGroup) SetRuntimeChunk(c ChunkKey) {
	g.runtimeChunk = c
	g.hasRuntime = true
}

// RuntimeChunk returns the runtime chunk, if one was set.
func (g *ChunkGroup) RuntimeChunk() (ChunkKey, bool) {
	return g.runtimeChunk, g.hasRuntime
}

// SetEntrypointChunk marks c as the chunk holding the entry modules of this group.
func (g *ChunkGroup) SetEntrypointChunk(c ChunkKey) {
	g.entrypointChunk = c
	g.hasEntrypoint = true
}

// EntrypointChunk returns the entrypoint chunk, if one was set.
func (g *ChunkGroup) EntrypointChunk() (ChunkKey, bool) {
	return g.entrypointChunk, g.hasEntrypoint
}

// Parents returns the parent groups in insertion order.
func (g *ChunkGroup) Parents() []ChunkGroupKey {
	return slices.Clone(g.parents)
}

// Children returns the child groups in insertion order.
func (g *ChunkGroup) Children() []ChunkGroupKey {
	return slices.Clone(g.children)
}

func (g *ChunkGroup) addParent(p ChunkGroupKey) bool {
	if slices.Contains(g.parents, p) {
		return false
	}
	g.parents = append(g.parents, p)
	return true
}

func (g *ChunkGroup) addChild(c ChunkGroupKey) bool {
	if slices.Contains(g.children, c) {
		return false
	}
	g.children = append(g.children, c)
	return true
}
