// Package compilation builds a mutable chunk graph from a bundle description.
package compilation

import (
	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/engine/chunkgraph"
	"go.trai.ch/chunkgraph/internal/engine/modulegraph"
	"go.trai.ch/chunkgraph/internal/engine/splitchunks"
	"go.trai.ch/zerr"
)

// Compilation holds the state the optimization passes run against.
type Compilation struct {
	ModuleGraph  *modulegraph.Static
	Store        *domain.ChunkStore
	Graph        *chunkgraph.ChunkGraph
	CacheGroups  []splitchunks.CacheGroup
	Optimization domain.OptimizationSpec
}

// SizeOptions returns the chunk size heuristic settings.
func (c *Compilation) SizeOptions() chunkgraph.ChunkSizeOptions {
	return chunkgraph.ChunkSizeOptions{
		ChunkOverhead:           c.Optimization.ChunkOverhead,
		EntryChunkMultiplicator: c.Optimization.EntryChunkMultiplicator,
	}
}

// Build validates b and constructs its module graph, chunks, chunk groups and runtime modules.
func Build(b *domain.Bundle) (*Compilation, error) {
	mg, err := modulegraph.New(b.Modules)
	if err != nil {
		return nil, err
	}
	cacheGroups, err := splitchunks.NewCacheGroups(b.Optimization.SplitChunks.CacheGroups)
	if err != nil {
		return nil, err
	}

	store := domain.NewChunkStore()
	bld := &builder{
		mg:     mg,
		store:  store,
		graph:  chunkgraph.New(mg, store),
		chunks: make(map[string]domain.ChunkKey),
		groups: make(map[string]domain.ChunkGroupKey),
	}
	if err := bld.addChunks(b.Chunks); err != nil {
		return nil, err
	}
	if err := bld.addChunkGroups(b.ChunkGroups); err != nil {
		return nil, err
	}
	if err := bld.addRuntimeModules(b.RuntimeModules); err != nil {
		return nil, err
	}

	return &Compilation{
		ModuleGraph:  mg,
		Store:        store,
		Graph:        bld.graph,
		CacheGroups:  cacheGroups,
		Optimization: b.Optimization,
	}, nil
}

type builder struct {
	mg     *modulegraph.Static
	store  *domain.ChunkStore
	graph  *chunkgraph.ChunkGraph
	chunks map[string]domain.ChunkKey
	groups map[string]domain.ChunkGroupKey
}

func unknownReference(kind, name string) error {
	return zerr.With(domain.ErrUnknownReference, kind, name)
}

func (b *builder) expectModule(owner, ownerName string, m domain.ModuleIdentifier) error {
	if b.mg.HasModule(m) {
		return nil
	}
	err := unknownReference("module", m.String())
	return zerr.With(err, owner, ownerName)
}

func (b *builder) expectChunk(owner, ownerName, chunk string) (domain.ChunkKey, error) {
	c, ok := b.chunks[chunk]
	if !ok {
		err := unknownReference("chunk", chunk)
		return 0, zerr.With(err, owner, ownerName)
	}
	return c, nil
}

func (b *builder) addChunks(specs []domain.ChunkSpec) error {
	for _, spec := range specs {
		if spec.Name != "" {
			if _, dup := b.chunks[spec.Name]; dup {
				return zerr.With(domain.ErrDuplicateName, "chunk", spec.Name)
			}
		}
		chunk := b.store.NewChunk(spec.Name)
		chunk.Runtime = domain.NewRuntimeSpec(spec.Runtime...)
		chunk.PreventIntegration = spec.PreventIntegration
		for _, hint := range spec.IDHints {
			chunk.AddIDNameHint(hint)
		}
		b.graph.AddChunk(chunk.Key())
		if spec.Name != "" {
			b.chunks[spec.Name] = chunk.Key()
		}

		for _, m := range spec.Modules {
			if err := b.expectModule("chunk", spec.Name, m); err != nil {
				return err
			}
			b.graph.ConnectChunkAndModule(chunk.Key(), m)
		}
	}
	return nil
}

func (b *builder) addChunkGroups(specs []domain.ChunkGroupSpec) error {
	for _, spec := range specs {
		if _, dup := b.groups[spec.Name]; dup {
			return zerr.With(domain.ErrDuplicateName, "chunk_group", spec.Name)
		}
		group := b.store.NewChunkGroup(spec.Kind, spec.Name)
		b.groups[spec.Name] = group.Key()

		for _, name := range spec.Chunks {
			c, err := b.expectChunk("chunk_group", spec.Name, name)
			if err != nil {
				return err
			}
			b.store.AddChunkToGroup(c, group.Key())
		}
		if err := b.wireEntrypoint(group, spec); err != nil {
			return err
		}
	}

	for _, spec := range specs {
		child := b.groups[spec.Name]
		for _, parent := range spec.Parents {
			p, ok := b.groups[parent]
			if !ok {
				err := unknownReference("parent", parent)
				return zerr.With(err, "chunk_group", spec.Name)
			}
			b.store.ConnectChunkGroups(p, child)
		}
	}
	return nil
}

// wireEntrypoint connects the entry modules to the first chunk of the group and picks the
// runtime chunk of entrypoints.
func (b *builder) wireEntrypoint(group *domain.ChunkGroup, spec domain.ChunkGroupSpec) error {
	chunks := group.Chunks()
	if len(spec.Entries) > 0 && len(chunks) == 0 {
		err := unknownReference("chunk", "")
		return zerr.With(err, "chunk_group", spec.Name)
	}
	for _, m := range spec.Entries {
		if err := b.expectModule("chunk_group", spec.Name, m); err != nil {
			return err
		}
		b.graph.ConnectChunkAndModule(chunks[0], m)
		b.graph.ConnectChunkAndEntryModule(chunks[0], m, group.Key())
	}

	if spec.Kind != domain.ChunkGroupEntrypoint {
		return nil
	}
	if len(chunks) > 0 {
		group.SetEntrypointChunk(chunks[0])
		group.SetRuntimeChunk(chunks[0])
	}
	if spec.RuntimeChunk == "" {
		return nil
	}
	rc, err := b.expectChunk("chunk_group", spec.Name, spec.RuntimeChunk)
	if err != nil {
		return err
	}
	if !group.HasChunk(rc) {
		group.UnshiftChunk(rc)
		b.store.ExpectChunk(rc).AddGroup(group.Key())
	}
	group.SetRuntimeChunk(rc)
	return nil
}

func (b *builder) addRuntimeModules(specs []domain.RuntimeModuleSpec) error {
	seen := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		if _, dup := seen[spec.Name]; dup {
			return zerr.With(domain.ErrDuplicateName, "runtime_module", spec.Name)
		}
		seen[spec.Name] = struct{}{}

		rm := NewStaticRuntimeModule(spec)
		for _, name := range spec.Chunks {
			c, err := b.expectChunk("runtime_module", spec.Name, name)
			if err != nil {
				return err
			}
			b.graph.AddRuntimeModule(c, rm)
		}
	}
	return nil
}
