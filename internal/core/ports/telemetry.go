package ports

import (
	"context"
	"io"

	"go.trai.ch/chunkgraph/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of analysis passes.
type Telemetry interface {
	// Record starts a vertex for a unit of work.
	Record(ctx context.Context, name string, opts ...VertexOption) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is a recorded unit of work.
type Vertex interface {
	// Stdout returns a writer for standard output of the unit.
	Stdout() io.Writer
	// Stderr returns a writer for error output of the unit.
	Stderr() io.Writer
	// Log records a message associated with the unit.
	Log(level domain.LogLevel, msg string)
	// Complete marks the unit as finished.
	Complete(err error)
	// Cached marks the unit as satisfied from a previous run.
	Cached()
}

// VertexConfig holds configuration for a recorded vertex.
type VertexConfig struct {
	// Internal hides the vertex from user facing output.
	Internal bool
}

// VertexOption is a functional option for configuring a vertex.
type VertexOption func(*VertexConfig)

// WithInternal marks a vertex as internal.
func WithInternal() VertexOption {
	return func(c *VertexConfig) {
		c.Internal = true
	}
}

type vertexKey struct{}

// ContextWithVertex returns a copy of ctx carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex stored in ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
