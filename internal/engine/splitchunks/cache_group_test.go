package splitchunks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/engine/splitchunks"
	"go.trai.ch/zerr"
)

func TestNewCacheGroups(t *testing.T) {
	groups, err := splitchunks.NewCacheGroups([]domain.CacheGroupSpec{
		{Key: "vendors", Test: `[\\/]node_modules[\\/]`, Priority: -10},
		{Key: "default", MinChunks: 2, IDHint: "shared"},
	})
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "vendors", groups[0].IDHint)
	assert.Equal(t, 1, groups[0].MinChunks)
	require.NotNil(t, groups[0].Test)
	assert.True(t, groups[0].Test.MatchString("./node_modules/react/index.js"))

	assert.Equal(t, "shared", groups[1].IDHint)
	assert.Equal(t, 2, groups[1].MinChunks)
	assert.Nil(t, groups[1].Test)
}

func TestNewCacheGroups_InvalidPattern(t *testing.T) {
	_, err := splitchunks.NewCacheGroups([]domain.CacheGroupSpec{{Key: "broken", Test: "("}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidPattern.Error())
	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "broken", zErr.Metadata()["cache_group"])
}

func TestNewCacheGroups_DuplicateKey(t *testing.T) {
	_, err := splitchunks.NewCacheGroups([]domain.CacheGroupSpec{{Key: "a"}, {Key: "a"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrDuplicateName.Error())
}
