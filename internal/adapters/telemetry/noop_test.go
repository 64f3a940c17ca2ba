package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/chunkgraph/internal/adapters/telemetry"
	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/core/ports"
)

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()

	ctx, v := tel.Record(context.Background(), "pass", ports.WithInternal())
	got, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, v, got)

	n, err := v.Stdout().Write([]byte("ignored"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.NotPanics(t, func() {
		v.Log(domain.LogLevelInfo, "msg")
		v.Complete(errors.New("boom"))
		v.Cached()
	})
	assert.NoError(t, tel.Close())
}
