package ports

import (
	"context"

	"go.trai.ch/chunkgraph/internal/core/domain"
)

// RuntimeModule is a synthetic module that contributes runtime code to a chunk.
// The chunk graph only stores and orders runtime modules; it never interprets their output.
//
//go:generate mockgen -source=runtime_module.go -destination=mocks/mock_runtime_module.go -package=mocks
type RuntimeModule interface {
	// Identifier returns the stable identifier of the runtime module.
	Identifier() domain.ModuleIdentifier
	// Name returns the human readable name.
	Name() string
	// Generate renders the runtime code.
	Generate(ctx context.Context) (string, error)
	// Stage returns the generation phase.
	Stage() domain.RuntimeModuleStage
	// FullHash reports whether the output depends on the full compilation hash.
	FullHash() bool
	// DependentHash reports whether the output depends on the hashes of other chunks.
	DependentHash() bool
	// ShouldIsolate reports whether the code must be wrapped in its own scope.
	ShouldIsolate() bool
}
