package config

// Bundlefile represents the structure of the chunkgraph.yaml configuration file.
type Bundlefile struct {
	Version        string             `yaml:"version"`
	Modules        []ModuleDTO        `yaml:"modules"`
	RuntimeModules []RuntimeModuleDTO `yaml:"runtimeModules"`
	Chunks         []ChunkDTO         `yaml:"chunks"`
	ChunkGroups    []ChunkGroupDTO    `yaml:"chunkGroups"`
	Optimization   OptimizationDTO    `yaml:"optimization"`
}

// ModuleDTO represents a module of the module graph.
type ModuleDTO struct {
	ID                  string             `yaml:"id"`
	SourceTypes         []string           `yaml:"sourceTypes"`
	Sizes               map[string]float64 `yaml:"sizes"`
	Dependencies        []DependencyDTO    `yaml:"dependencies"`
	RuntimeRequirements []string           `yaml:"runtimeRequirements"`
}

// DependencyDTO represents an outgoing connection of a module.
type DependencyDTO struct {
	Module string `yaml:"module"`
	State  string `yaml:"state"`
}

// RuntimeModuleDTO represents a synthetic runtime module.
type RuntimeModuleDTO struct {
	Name          string   `yaml:"name"`
	Stage         string   `yaml:"stage"`
	FullHash      bool     `yaml:"fullHash"`
	DependentHash bool     `yaml:"dependentHash"`
	Isolate       bool     `yaml:"isolate"`
	Source        string   `yaml:"source"`
	Chunks        []string `yaml:"chunks"`
}

// ChunkDTO represents a chunk of the initial layout.
type ChunkDTO struct {
	Name               string   `yaml:"name"`
	Runtime            []string `yaml:"runtime"`
	Modules            []string `yaml:"modules"`
	IDHints            []string `yaml:"idHints"`
	PreventIntegration bool     `yaml:"preventIntegration"`
}

// ChunkGroupDTO represents a chunk group of the initial layout.
type ChunkGroupDTO struct {
	Name         string   `yaml:"name"`
	Kind         string   `yaml:"kind"`
	Chunks       []string `yaml:"chunks"`
	Parents      []string `yaml:"parents"`
	Entries      []string `yaml:"entries"`
	RuntimeChunk string   `yaml:"runtimeChunk"`
}

// OptimizationDTO represents the optimization settings.
type OptimizationDTO struct {
	ChunkOverhead           *float64       `yaml:"chunkOverhead"`
	EntryChunkMultiplicator *float64       `yaml:"entryChunkMultiplicator"`
	MaxChunks               int            `yaml:"maxChunks"`
	RemoveEmptyChunks       *bool          `yaml:"removeEmptyChunks"`
	SplitChunks             SplitChunksDTO `yaml:"splitChunks"`
}

// SplitChunksDTO represents the split-chunks settings.
type SplitChunksDTO struct {
	CacheGroups []CacheGroupDTO `yaml:"cacheGroups"`
}

// CacheGroupDTO represents a split-chunks cache group.
type CacheGroupDTO struct {
	Key                string             `yaml:"key"`
	Name               string             `yaml:"name"`
	Test               string             `yaml:"test"`
	Type               []string           `yaml:"type"`
	Chunks             string             `yaml:"chunks"`
	MinChunks          int                `yaml:"minChunks"`
	MinSize            map[string]float64 `yaml:"minSize"`
	Priority           float64            `yaml:"priority"`
	ReuseExistingChunk bool               `yaml:"reuseExistingChunk"`
	IDHint             string             `yaml:"idHint"`
}
