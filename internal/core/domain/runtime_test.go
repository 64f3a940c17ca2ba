package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/chunkgraph/internal/core/domain"
)

func TestMergeRuntime(t *testing.T) {
	a := domain.NewRuntimeSpec("main", "admin", "main")
	b := domain.NewRuntimeSpec("worker", "admin")

	assert.Equal(t, domain.RuntimeSpec{"admin", "main"}, a)
	assert.Equal(t, domain.RuntimeSpec{"admin", "main", "worker"}, domain.MergeRuntime(a, b))
	assert.Equal(t, b, domain.MergeRuntime(nil, b))
	assert.Equal(t, a, domain.MergeRuntime(a, nil))
	assert.Nil(t, domain.NewRuntimeSpec())
	assert.Equal(t, "admin_main", a.Key())
	assert.True(t, a.Equal(domain.NewRuntimeSpec("main", "admin")))
}

func TestRuntimeGlobals(t *testing.T) {
	req, err := domain.ParseRuntimeGlobal("publicPath")
	require.NoError(t, err)
	assert.Equal(t, domain.RuntimePublicPath, req)

	set := domain.RuntimeRequire | domain.RuntimePublicPath | domain.RuntimeGetFullHash
	assert.True(t, set.Has(domain.RuntimeRequire|domain.RuntimeGetFullHash))
	assert.False(t, set.Has(domain.RuntimeLoadScript))
	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []string{"require", "publicPath", "getFullHash"}, set.Names())

	_, err = domain.ParseRuntimeGlobal("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrUnknownRuntimeGlobal.Error())
}

func TestParseRuntimeModuleStage(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.RuntimeModuleStage
	}{
		{"", domain.StageNormal},
		{"normal", domain.StageNormal},
		{"basic", domain.StageBasic},
		{"attach", domain.StageAttach},
		{"trigger", domain.StageTrigger},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseRuntimeModuleStage(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := domain.ParseRuntimeModuleStage("late")
	require.Error(t, err)
	assert.Less(t, domain.StageNormal, domain.StageBasic)
	assert.Less(t, domain.StageBasic, domain.StageAttach)
	assert.Less(t, domain.StageAttach, domain.StageTrigger)
}

func TestParseEnums(t *testing.T) {
	st, err := domain.ParseSourceType("css")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceTypeCSS, st)
	_, err = domain.ParseSourceType("image")
	require.Error(t, err)

	cs, err := domain.ParseConnectionState("transitive")
	require.NoError(t, err)
	assert.Equal(t, domain.ConnectionTransitiveOnly, cs)
	cs, err = domain.ParseConnectionState("")
	require.NoError(t, err)
	assert.Equal(t, domain.ConnectionActive, cs)
	_, err = domain.ParseConnectionState("weak")
	require.Error(t, err)

	kind, err := domain.ParseChunkGroupKind("entrypoint")
	require.NoError(t, err)
	assert.Equal(t, domain.ChunkGroupEntrypoint, kind)
	_, err = domain.ParseChunkGroupKind("worker")
	require.Error(t, err)

	filter, err := domain.ParseChunkFilter("all")
	require.NoError(t, err)
	assert.Equal(t, domain.ChunkFilterAll, filter)
	_, err = domain.ParseChunkFilter("some")
	require.Error(t, err)
}
