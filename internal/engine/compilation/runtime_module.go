package compilation

import (
	"context"

	"go.trai.ch/chunkgraph/internal/core/domain"
)

// runtimeModulePrefix namespaces the identifiers of declared runtime modules.
const runtimeModulePrefix = "webpack/runtime/"

// StaticRuntimeModule is a runtime module whose code is declared up front.
type StaticRuntimeModule struct {
	id   domain.ModuleIdentifier
	spec domain.RuntimeModuleSpec
}

// NewStaticRuntimeModule returns the runtime module described by spec.
func NewStaticRuntimeModule(spec domain.RuntimeModuleSpec) *StaticRuntimeModule {
	return &StaticRuntimeModule{
		id:   domain.NewModuleIdentifier(runtimeModulePrefix + spec.Name),
		spec: spec,
	}
}

// Identifier returns the namespaced identifier of the module.
func (m *StaticRuntimeModule) Identifier() domain.ModuleIdentifier { return m.id }

// Name returns the declared name.
func (m *StaticRuntimeModule) Name() string { return m.spec.Name }

// Generate returns the declared source.
func (m *StaticRuntimeModule) Generate(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return m.spec.Source, nil
}

// Stage returns the declared stage.
func (m *StaticRuntimeModule) Stage() domain.RuntimeModuleStage { return m.spec.Stage }

// FullHash reports whether the module depends on the full hash.
func (m *StaticRuntimeModule) FullHash() bool { return m.spec.FullHash }

// DependentHash reports whether the module depends on other chunk hashes.
func (m *StaticRuntimeModule) DependentHash() bool { return m.spec.DependentHash }

// ShouldIsolate reports whether the module is wrapped in its own scope.
func (m *StaticRuntimeModule) ShouldIsolate() bool { return m.spec.Isolate }
