// Package telemetry provides telemetry implementations that need no backend.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/core/ports"
)

// NoOp is a ports.Telemetry that records nothing.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (t *NoOp) Record(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
	v := noOpVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

type noOpVertex struct{}

func (noOpVertex) Stdout() io.Writer { return io.Discard }
func (noOpVertex) Stderr() io.Writer { return io.Discard }
func (noOpVertex) Log(_ domain.LogLevel, _ string) {}
func (noOpVertex) Complete(_ error) {}
func (noOpVertex) Cached() {}
