package domain

import (
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// ChunkStore owns the chunks and chunk groups of a compilation.
type ChunkStore struct {
	chunks    map[ChunkKey]*Chunk
	groups    map[ChunkGroupKey]*ChunkGroup
	nextChunk ChunkKey
	nextGroup ChunkGroupKey
}

// NewChunkStore creates an empty store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		chunks: make(map[ChunkKey]*Chunk),
		groups: make(map[ChunkGroupKey]*ChunkGroup),
	}
}

// NewChunk allocates a chunk with the given name.
func (s *ChunkStore) NewChunk(name string) *Chunk {
	s.nextChunk++
	c := &Chunk{Name: name, key: s.nextChunk}
	s.chunks[c.key] = c
	return c
}

// NewChunkGroup allocates a chunk group.
func (s *ChunkStore) NewChunkGroup(kind ChunkGroupKind, name string) *ChunkGroup {
	s.nextGroup++
	g := &ChunkGroup{Name: name, Kind: kind, key: s.nextGroup}
	s.groups[g.key] = g
	return g
}

// Chunk returns the chunk for key.
func (s *ChunkStore) Chunk(key ChunkKey) (*Chunk, bool) {
	c, ok := s.chunks[key]
	return c, ok
}

// ExpectChunk returns the chunk for key and panics if it does not exist.
func (s *ChunkStore) ExpectChunk(key ChunkKey) *Chunk {
	c, ok := s.chunks[key]
	if !ok {
		panic(zerr.With(ErrChunkNotFound, "chunk", uint32(key)))
	}
	return c
}

// ChunkGroup returns the chunk group for key.
func (s *ChunkStore) ChunkGroup(key ChunkGroupKey) (*ChunkGroup, bool) {
	g, ok := s.groups[key]
	return g, ok
}

// ExpectChunkGroup returns the chunk group for key and panics if it does not exist.
func (s *ChunkStore) ExpectChunkGroup(key ChunkGroupKey) *ChunkGroup {
	g, ok := s.groups[key]
	if !ok {
		panic(zerr.With(ErrChunkGroupNotFound, "chunk_group", uint32(key)))
	}
	return g
}

// ChunkKeys returns all chunk keys in ascending order.
func (s *ChunkStore) ChunkKeys() []ChunkKey {
	return slices.Sorted(maps.Keys(s.chunks))
}

// ChunkGroupKeys returns all chunk group keys in ascending order.
func (s *ChunkStore) ChunkGroupKeys() []ChunkGroupKey {
	return slices.Sorted(maps.Keys(s.groups))
}

// ChunkByName returns the chunk with the given name.
func (s *ChunkStore) ChunkByName(name string) (*Chunk, bool) {
	if name == "" {
		return nil, false
	}
	for _, key := range s.ChunkKeys() {
		if c := s.chunks[key]; c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// ChunkGroupByName returns the chunk group with the given name.
func (s *ChunkStore) ChunkGroupByName(name string) (*ChunkGroup, bool) {
	if name == "" {
		return nil, false
	}
	for _, key := range s.ChunkGroupKeys() {
		if g := s.groups[key]; g.Name == name {
			return g, true
		}
	}
	return nil, false
}

// AddChunkToGroup appends c to g, updating both sides.
func (s *ChunkStore) AddChunkToGroup(c ChunkKey, g ChunkGroupKey) {
	group := s.ExpectChunkGroup(g)
	chunk := s.ExpectChunk(c)
	group.PushChunk(c)
	chunk.AddGroup(g)
}

// InsertChunkIntoGroup places c before the chunk before in g, updating both sides.
func (s *ChunkStore) InsertChunkIntoGroup(c ChunkKey, g ChunkGroupKey, before ChunkKey) {
	group := s.ExpectChunkGroup(g)
	chunk := s.ExpectChunk(c)
	if !group.HasChunk(before) {
		group.PushChunk(c)
	} else {
		group.InsertChunk(c, before)
	}
	chunk.AddGroup(g)
}

// ConnectChunkGroups records parent as a parent of child and child as a child of parent.
func (s *ChunkStore) ConnectChunkGroups(parent, child ChunkGroupKey) {
	s.ExpectChunkGroup(parent).addChild(child)
	s.ExpectChunkGroup(child).addParent(parent)
}

// DisconnectFromGroups removes c from every group containing it.
func (s *ChunkStore) DisconnectFromGroups(c ChunkKey) {
	chunk := s.ExpectChunk(c)
	for _, g := range chunk.Groups() {
		s.ExpectChunkGroup(g).RemoveChunk(c)
		chunk.RemoveGroup(g)
	}
}

// RemoveChunk detaches c from its groups and deletes it.
func (s *ChunkStore) RemoveChunk(c ChunkKey) {
	if _, ok := s.chunks[c]; !ok {
		return
	}
	s.DisconnectFromGroups(c)
	delete(s.chunks, c)
}

// HasRuntime reports whether c is the runtime chunk of one of its entrypoint groups.
func (s *ChunkStore) HasRuntime(c ChunkKey) bool {
	for _, g := range s.ExpectChunk(c).Groups() {
		group := s.ExpectChunkGroup(g)
		if group.Kind != ChunkGroupEntrypoint {
			continue
		}
		if rc, ok := group.RuntimeChunk(); ok && rc == c {
			return true
		}
	}
	return false
}

// CanBeInitial reports whether c belongs to at least one initial group.
func (s *ChunkStore) CanBeInitial(c ChunkKey) bool {
	for _, g := range s.ExpectChunk(c).Groups() {
		if s.ExpectChunkGroup(g).IsInitial() {
			return true
		}
	}
	return false
}

// IsOnlyInitial reports whether every group of c is initial.
func (s *ChunkStore) IsOnlyInitial(c ChunkKey) bool {
	chunk := s.ExpectChunk(c)
	if chunk.NumberOfGroups() == 0 {
		return false
	}
	for _, g := range chunk.Groups() {
		if !s.ExpectChunkGroup(g).IsInitial() {
			return false
		}
	}
	return true
}

// AllReferencedChunks returns every chunk reachable from the groups of c and their
// descendants, c included, ordered by key.
func (s *ChunkStore) AllReferencedChunks(c ChunkKey) []ChunkKey {
	chunks := make(map[ChunkKey]struct{})
	visited := make(map[ChunkGroupKey]struct{})
	queue := s.ExpectChunk(c).Groups()
	for len(queue) > 0 {
		g := queue[0]
		queue = queue[1:]
		if _, seen := visited[g]; seen {
			continue
		}
		visited[g] = struct{}{}
		group := s.ExpectChunkGroup(g)
		for _, member := range group.chunks {
			chunks[member] = struct{}{}
		}
		queue = append(queue, group.children...)
	}
	return slices.Sorted(maps.Keys(chunks))
}
