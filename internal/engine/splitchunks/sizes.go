package splitchunks

import (
	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// SplitChunkSizes holds a size per source type.
type SplitChunkSizes map[domain.SourceType]float64

// Total returns the sum over every source type.
func (s SplitChunkSizes) Total() float64 {
	var total float64
	for _, size := range s {
		total += size
	}
	return total
}

// ModuleSizes maps every module to its sizes.
type ModuleSizes map[domain.ModuleIdentifier]SplitChunkSizes

// NewModuleSizes reads the sizes of every module of mg.
func NewModuleSizes(mg ports.ModuleGraph) ModuleSizes {
	out := make(ModuleSizes)
	for _, m := range mg.Modules() {
		sizes := make(SplitChunkSizes)
		for _, t := range mg.SourceTypes(m) {
			sizes[t] = mg.Size(m, t)
		}
		out[m] = sizes
	}
	return out
}

func (s ModuleSizes) expect(m domain.ModuleIdentifier) SplitChunkSizes {
	sizes, ok := s[m]
	if !ok {
		panic(zerr.With(domain.ErrSizeMissing, "module", m.String()))
	}
	return sizes
}
