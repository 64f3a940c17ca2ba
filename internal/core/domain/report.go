package domain

// ChunkReport is the analysis result for one chunk of a sealed compilation.
type ChunkReport struct {
	ID                  string                 `json:"id"`
	Name                string                 `json:"name,omitzero"`
	Runtime             []string               `json:"runtime,omitzero"`
	Initial             bool                   `json:"initial,omitzero"`
	Modules             []string               `json:"modules,omitzero"`
	EntryModules        []string               `json:"entry_modules,omitzero"`
	RootModules         []string               `json:"root_modules,omitzero"`
	RuntimeModules      []string               `json:"runtime_modules,omitzero"`
	Sizes               map[SourceType]float64 `json:"sizes,omitzero"`
	Size                float64                `json:"size,omitzero"`
	FullHash            bool                   `json:"full_hash,omitzero"`
	DependentHash       bool                   `json:"dependent_hash,omitzero"`
	RuntimeRequirements []string               `json:"runtime_requirements,omitzero"`
	// InitialChunks maps the id of every referenced chunk to whether it can be initial.
	InitialChunks map[string]bool `json:"initial_chunks,omitzero"`
	Hash          string          `json:"hash,omitzero"`
	// Changed is set when the hash differs from the previously stored report.
	Changed bool `json:"-"`
}

// AnalysisStats summarizes what the optimization passes did.
type AnalysisStats struct {
	SplitChunksCreated int `json:"split_chunks_created"`
	SplitChunksReused  int `json:"split_chunks_reused"`
	EmptyChunksRemoved int `json:"empty_chunks_removed"`
	ChunksMerged       int `json:"chunks_merged"`
}

// Analysis is the outcome of analyzing a bundle.
type Analysis struct {
	Chunks []ChunkReport `json:"chunks"`
	Stats  AnalysisStats `json:"stats"`
}
