package domain

import "go.trai.ch/zerr"

// Bundle is a declarative description of a compilation: its module graph, the initial
// chunk layout and the optimization settings to apply.
type Bundle struct {
	Modules        []ModuleSpec
	RuntimeModules []RuntimeModuleSpec
	Chunks         []ChunkSpec
	ChunkGroups    []ChunkGroupSpec
	Optimization   OptimizationSpec
}

// ModuleSpec describes one module of the module graph.
type ModuleSpec struct {
	ID ModuleIdentifier
	// SourceTypes lists the output kinds of the module in declaration order.
	SourceTypes []SourceType
	// Sizes holds the size of every source type.
	Sizes               map[SourceType]float64
	Dependencies        []Connection
	RuntimeRequirements RuntimeGlobals
}

// RuntimeModuleSpec describes a synthetic runtime module and the chunks it is attached to.
type RuntimeModuleSpec struct {
	Name          string
	Stage         RuntimeModuleStage
	FullHash      bool
	DependentHash bool
	Isolate       bool
	Source        string
	Chunks        []string
}

// ChunkSpec describes a chunk of the initial layout.
type ChunkSpec struct {
	Name               string
	Runtime            []string
	Modules            []ModuleIdentifier
	IDHints            []string
	PreventIntegration bool
}

// ChunkGroupSpec describes a chunk group of the initial layout.
type ChunkGroupSpec struct {
	Name    string
	Kind    ChunkGroupKind
	Chunks  []string
	Parents []string
	// Entries are connected as entry modules of the first chunk of the group.
	Entries []ModuleIdentifier
	// RuntimeChunk names the runtime chunk of an entrypoint. Defaults to the first chunk.
	RuntimeChunk string
}

// OptimizationSpec holds the optimization settings.
type OptimizationSpec struct {
	ChunkOverhead           *float64
	EntryChunkMultiplicator *float64
	// MaxChunks limits the chunk count. Zero disables the limit.
	MaxChunks         int
	RemoveEmptyChunks bool
	SplitChunks       SplitChunksSpec
}

// SplitChunksSpec holds the split-chunks cache groups.
type SplitChunksSpec struct {
	CacheGroups []CacheGroupSpec
}

// CacheGroupSpec describes one split-chunks cache group.
type CacheGroupSpec struct {
	Key  string
	Name string
	// Test is a regular expression matched against module identifiers. Empty matches all.
	Test               string
	Types              []SourceType
	Chunks             ChunkFilter
	MinChunks          int
	MinSize            map[SourceType]float64
	Priority           float64
	ReuseExistingChunk bool
	IDHint             string
}

// ChunkFilter selects which chunks a cache group considers.
type ChunkFilter uint8

const (
	// ChunkFilterAsync selects chunks that cannot be initial.
	ChunkFilterAsync ChunkFilter = iota
	// ChunkFilterInitial selects chunks that can be initial.
	ChunkFilterInitial
	// ChunkFilterAll selects every chunk.
	ChunkFilterAll
)

// String returns the configuration spelling of the filter.
func (f ChunkFilter) String() string {
	switch f {
	case ChunkFilterInitial:
		return "initial"
	case ChunkFilterAll:
		return "all"
	default:
		return "async"
	}
}

// ParseChunkFilter converts s into a ChunkFilter. An empty string means async.
func ParseChunkFilter(s string) (ChunkFilter, error) {
	switch s {
	case "", "async":
		return ChunkFilterAsync, nil
	case "initial":
		return ChunkFilterInitial, nil
	case "all":
		return ChunkFilterAll, nil
	default:
		return 0, zerr.With(ErrUnknownChunkFilter, "chunks", s)
	}
}

// ParseChunkGroupKind converts s into a ChunkGroupKind. An empty string means normal.
func ParseChunkGroupKind(s string) (ChunkGroupKind, error) {
	switch s {
	case "", "normal", "async":
		return ChunkGroupNormal, nil
	case "entrypoint", "entry":
		return ChunkGroupEntrypoint, nil
	default:
		return 0, zerr.With(ErrUnknownChunkGroupKind, "kind", s)
	}
}
