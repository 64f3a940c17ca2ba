package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestInternalError(t *testing.T) {
	t.Run("error value keeps its message", func(t *testing.T) {
		cause := zerr.With(domain.ErrChunkNotFound, "chunk", uint32(7))
		err := domain.InternalError(cause)

		assert.Contains(t, err.Error(), domain.ErrInternalConsistency.Error())
		assert.Contains(t, err.Error(), domain.ErrChunkNotFound.Error())
	})

	t.Run("other values become metadata", func(t *testing.T) {
		err := domain.InternalError("index out of range")

		assert.Contains(t, err.Error(), domain.ErrInternalConsistency.Error())
		var zErr *zerr.Error
		require.True(t, errors.As(err, &zErr))
		assert.Equal(t, "index out of range", zErr.Metadata()["panic"])
	})
}
