package domain

import (
	"math/bits"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// RuntimeModuleStage orders runtime modules into generation phases.
type RuntimeModuleStage int

const (
	// StageNormal is the default stage.
	StageNormal RuntimeModuleStage = 0
	// StageBasic runs after normal runtime modules.
	StageBasic RuntimeModuleStage = 5
	// StageAttach runs after basic runtime modules.
	StageAttach RuntimeModuleStage = 10
	// StageTrigger runs last.
	StageTrigger RuntimeModuleStage = 20
)

// String returns the configuration spelling of the stage.
func (s RuntimeModuleStage) String() string {
	switch s {
	case StageNormal:
		return "normal"
	case StageBasic:
		return "basic"
	case StageAttach:
		return "attach"
	case StageTrigger:
		return "trigger"
	default:
		return "unknown"
	}
}

// ParseRuntimeModuleStage converts s into a stage. An empty string means normal.
func ParseRuntimeModuleStage(s string) (RuntimeModuleStage, error) {
	switch s {
	case "", "normal":
		return StageNormal, nil
	case "basic":
		return StageBasic, nil
	case "attach":
		return StageAttach, nil
	case "trigger":
		return StageTrigger, nil
	default:
		return 0, zerr.With(ErrUnknownStage, "stage", s)
	}
}

// RuntimeSpec is the sorted, duplicate-free set of runtime names a chunk is used in.
type RuntimeSpec []string

// NewRuntimeSpec normalizes names into a RuntimeSpec.
func NewRuntimeSpec(names ...string) RuntimeSpec {
	if len(names) == 0 {
		return nil
	}
	out := slices.Clone(names)
	slices.Sort(out)
	return slices.Compact(out)
}

// Key returns a stable string form of the spec.
func (r RuntimeSpec) Key() string {
	return strings.Join(r, "_")
}

// Equal reports whether both specs name the same runtimes.
func (r RuntimeSpec) Equal(other RuntimeSpec) bool {
	return slices.Equal(r, other)
}

// MergeRuntime returns the union of a and b.
func MergeRuntime(a, b RuntimeSpec) RuntimeSpec {
	if len(a) == 0 {
		return slices.Clone(b)
	}
	if len(b) == 0 {
		return slices.Clone(a)
	}
	return NewRuntimeSpec(append(slices.Clone(a), b...)...)
}

// RuntimeGlobals is a bit set of runtime capabilities required by a chunk.
type RuntimeGlobals uint64

const (
	// RuntimeRequire is the module require function.
	RuntimeRequire RuntimeGlobals = 1 << iota
	// RuntimeModuleCache is the module cache object.
	RuntimeModuleCache
	// RuntimeExports is the exports object of the current module.
	RuntimeExports
	// RuntimeModule is the current module object.
	RuntimeModule
	// RuntimePublicPath is the configured public path.
	RuntimePublicPath
	// RuntimeEnsureChunk loads an async chunk.
	RuntimeEnsureChunk
	// RuntimeEnsureChunkHandlers are the chunk loading handlers.
	RuntimeEnsureChunkHandlers
	// RuntimeLoadScript loads a script tag.
	RuntimeLoadScript
	// RuntimeGetFullHash returns the compilation hash.
	RuntimeGetFullHash
	// RuntimeHasOwnProperty is the own-property shorthand.
	RuntimeHasOwnProperty
	// RuntimeDefinePropertyGetters defines export getters.
	RuntimeDefinePropertyGetters
	// RuntimeMakeNamespaceObject marks an exports object as a namespace.
	RuntimeMakeNamespaceObject
	// RuntimeOnChunksLoaded defers startup until chunks are loaded.
	RuntimeOnChunksLoaded
	// RuntimeStartupEntrypoint starts an entrypoint once dependent chunks are loaded.
	RuntimeStartupEntrypoint
)

var runtimeGlobalNames = []string{
	"require",
	"moduleCache",
	"exports",
	"module",
	"publicPath",
	"ensureChunk",
	"ensureChunkHandlers",
	"loadScript",
	"getFullHash",
	"hasOwnProperty",
	"definePropertyGetters",
	"makeNamespaceObject",
	"onChunksLoaded",
	"startupEntrypoint",
}

// ParseRuntimeGlobal converts a configuration name into its flag.
func ParseRuntimeGlobal(name string) (RuntimeGlobals, error) {
	for i, n := range runtimeGlobalNames {
		if n == name {
			return RuntimeGlobals(1) << i, nil
		}
	}
	return 0, zerr.With(ErrUnknownRuntimeGlobal, "runtime_global", name)
}

// Has reports whether every flag of g is set.
func (r RuntimeGlobals) Has(g RuntimeGlobals) bool {
	return r&g == g
}

// Len returns the number of set flags.
func (r RuntimeGlobals) Len() int {
	return bits.OnesCount64(uint64(r))
}

// Names returns the configuration names of the set flags in flag order.
func (r RuntimeGlobals) Names() []string {
	out := make([]string, 0, r.Len())
	for i, n := range runtimeGlobalNames {
		if r&(RuntimeGlobals(1)<<i) != 0 {
			out = append(out, n)
		}
	}
	return out
}
