// Package modulegraph provides an in-memory module graph built from declared modules.
package modulegraph

import (
	"maps"
	"slices"

	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModuleGraph = (*Static)(nil)

type module struct {
	sourceTypes  []domain.SourceType
	sizes        map[domain.SourceType]float64
	connections  []domain.Connection
	requirements domain.RuntimeGlobals
}

// Static is an immutable module graph. Lookups of unknown modules return zero values.
type Static struct {
	modules map[domain.ModuleIdentifier]module
}

// New builds a graph from specs. Duplicate identifiers are rejected.
func New(specs []domain.ModuleSpec) (*Static, error) {
	g := &Static{modules: make(map[domain.ModuleIdentifier]module, len(specs))}
	for _, spec := range specs {
		if _, dup := g.modules[spec.ID]; dup {
			return nil, zerr.With(domain.ErrDuplicateName, "module", spec.ID.String())
		}
		types := slices.Clone(spec.SourceTypes)
		if len(types) == 0 {
			types = slices.Sorted(maps.Keys(spec.Sizes))
		}
		g.modules[spec.ID] = module{
			sourceTypes:  types,
			sizes:        maps.Clone(spec.Sizes),
			connections:  slices.Clone(spec.Dependencies),
			requirements: spec.RuntimeRequirements,
		}
	}
	return g, nil
}

// HasModule reports whether id was declared.
func (g *Static) HasModule(id domain.ModuleIdentifier) bool {
	_, ok := g.modules[id]
	return ok
}

// Modules returns every module identifier in sorted order.
func (g *Static) Modules() []domain.ModuleIdentifier {
	out := slices.Collect(maps.Keys(g.modules))
	domain.SortModuleIdentifiers(out)
	return out
}

// SourceTypes returns the source types of id.
func (g *Static) SourceTypes(id domain.ModuleIdentifier) []domain.SourceType {
	return slices.Clone(g.modules[id].sourceTypes)
}

// Size returns the size of id for sourceType.
func (g *Static) Size(id domain.ModuleIdentifier, sourceType domain.SourceType) float64 {
	return g.modules[id].sizes[sourceType]
}

// OutgoingConnections returns the declared dependency connections of id.
func (g *Static) OutgoingConnections(id domain.ModuleIdentifier) []domain.Connection {
	return g.modules[id].connections
}

// RuntimeRequirements returns the runtime globals id needs.
func (g *Static) RuntimeRequirements(id domain.ModuleIdentifier) domain.RuntimeGlobals {
	return g.modules[id].requirements
}
