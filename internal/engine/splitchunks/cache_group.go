package splitchunks

import (
	"regexp"

	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/zerr"
)

// CacheGroup is a compiled split-chunks cache group.
type CacheGroup struct {
	Key  string
	Name string
	// Test selects modules by identifier. Nil selects every module.
	Test *regexp.Regexp
	// Types selects modules producing any of the types. Empty selects every module.
	Types              []domain.SourceType
	Chunks             domain.ChunkFilter
	MinChunks          int
	MinSize            SplitChunkSizes
	Priority           float64
	ReuseExistingChunk bool
	IDHint             string
}

// NewCacheGroups compiles the cache group declarations in order.
func NewCacheGroups(specs []domain.CacheGroupSpec) ([]CacheGroup, error) {
	groups := make([]CacheGroup, 0, len(specs))
	seen := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		if _, dup := seen[spec.Key]; dup {
			return nil, zerr.With(domain.ErrDuplicateName, "cache_group", spec.Key)
		}
		seen[spec.Key] = struct{}{}

		cg := CacheGroup{
			Key:                spec.Key,
			Name:               spec.Name,
			Types:              spec.Types,
			Chunks:             spec.Chunks,
			MinChunks:          max(spec.MinChunks, 1),
			MinSize:            SplitChunkSizes(spec.MinSize),
			Priority:           spec.Priority,
			ReuseExistingChunk: spec.ReuseExistingChunk,
			IDHint:             spec.IDHint,
		}
		if cg.IDHint == "" {
			cg.IDHint = spec.Key
		}
		if spec.Test != "" {
			re, err := regexp.Compile(spec.Test)
			if err != nil {
				err = zerr.Wrap(err, domain.ErrInvalidPattern.Error())
				return nil, zerr.With(err, "cache_group", spec.Key)
			}
			cg.Test = re
		}
		groups = append(groups, cg)
	}
	return groups, nil
}

func (cg *CacheGroup) matchesModule(m domain.ModuleIdentifier, sizes SplitChunkSizes) bool {
	if cg.Test != nil && !cg.Test.MatchString(m.String()) {
		return false
	}
	if len(cg.Types) == 0 {
		return true
	}
	for _, t := range cg.Types {
		if _, ok := sizes[t]; ok {
			return true
		}
	}
	return false
}

func (cg *CacheGroup) violatingMinSizes(sizes SplitChunkSizes) []domain.SourceType {
	var out []domain.SourceType
	for t, minSize := range cg.MinSize {
		size := sizes[t]
		if size == 0 {
			continue
		}
		if size < minSize {
			out = append(out, t)
		}
	}
	return out
}
