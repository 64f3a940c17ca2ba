package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrChunkNotFound is raised when a chunk key has no chunk or chunk graph record.
	ErrChunkNotFound = zerr.New("chunk not found")

	// ErrChunkGroupNotFound is raised when a chunk group key has no chunk group.
	ErrChunkGroupNotFound = zerr.New("chunk group not found")

	// ErrModuleNotFound is raised when a module has no chunk graph record or is unknown to the module graph.
	ErrModuleNotFound = zerr.New("module not found")

	// ErrRuntimeModuleNotFound is raised when a chunk references an unregistered runtime module.
	ErrRuntimeModuleNotFound = zerr.New("runtime module not found")

	// ErrRuntimeRequirementsMissing is raised when runtime requirements are read before they were computed.
	ErrRuntimeRequirementsMissing = zerr.New("runtime requirements missing for chunk")

	// ErrChunkIDMissing is raised when a chunk id is required before ids were assigned.
	ErrChunkIDMissing = zerr.New("chunk id not assigned")

	// ErrSizeMissing is raised when a module has no entry in a size table.
	ErrSizeMissing = zerr.New("module size missing")

	// ErrChunkRecordExists is raised when a prepared chunk record would overwrite an existing one.
	ErrChunkRecordExists = zerr.New("chunk graph record already exists")

	// ErrGraphFrozen is raised when a frozen chunk graph is mutated.
	ErrGraphFrozen = zerr.New("chunk graph is frozen")

	// ErrInternalConsistency is returned when a chunk graph invariant was violated during a build.
	ErrInternalConsistency = zerr.New("chunk graph internal consistency violation")

	// ErrUnknownSourceType is returned when a configuration names an unknown source type.
	ErrUnknownSourceType = zerr.New("unknown source type")

	// ErrUnknownConnectionState is returned when a configuration names an unknown connection state.
	ErrUnknownConnectionState = zerr.New("unknown connection state")

	// ErrUnknownStage is returned when a configuration names an unknown runtime module stage.
	ErrUnknownStage = zerr.New("unknown runtime module stage")

	// ErrUnknownRuntimeGlobal is returned when a configuration names an unknown runtime global.
	ErrUnknownRuntimeGlobal = zerr.New("unknown runtime global")

	// ErrUnknownChunkGroupKind is returned when a configuration names an unknown chunk group kind.
	ErrUnknownChunkGroupKind = zerr.New("unknown chunk group kind")

	// ErrUnknownChunkFilter is returned when a cache group names an unknown chunk filter.
	ErrUnknownChunkFilter = zerr.New("unknown chunk filter")

	// ErrDuplicateName is returned when two modules, chunks or groups share a name.
	ErrDuplicateName = zerr.New("duplicate name")

	// ErrUnknownReference is returned when a configuration references an undeclared entity.
	ErrUnknownReference = zerr.New("unknown reference")

	// ErrInvalidPattern is returned when a cache group test pattern does not compile.
	ErrInvalidPattern = zerr.New("invalid cache group test pattern")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedVersion is returned when the config file declares an unknown schema version.
	ErrUnsupportedVersion = zerr.New("unsupported config version")

	// ErrUnknownLogLevel is returned when a log level name is not recognized.
	ErrUnknownLogLevel = zerr.New("unknown log level")

	// ErrInvalidValue is returned when a numeric config value is out of range.
	ErrInvalidValue = zerr.New("invalid config value")
)

// InternalError converts a recovered panic into an ErrInternalConsistency error. Errors raised
// by the chunk graph keep their message and metadata in the chain.
func InternalError(recovered any) error {
	if err, ok := recovered.(error); ok {
		return zerr.Wrap(err, ErrInternalConsistency.Error())
	}
	return zerr.With(ErrInternalConsistency, "panic", fmt.Sprint(recovered))
}
