package chunkgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/core/ports"
	"go.trai.ch/chunkgraph/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func mockRuntimeModule(ctrl *gomock.Controller, name string, stage domain.RuntimeModuleStage, fullHash, dependentHash bool) *mocks.MockRuntimeModule {
	rm := mocks.NewMockRuntimeModule(ctrl)
	rm.EXPECT().Identifier().Return(id(name)).AnyTimes()
	rm.EXPECT().Stage().Return(stage).AnyTimes()
	rm.EXPECT().FullHash().Return(fullHash).AnyTimes()
	rm.EXPECT().DependentHash().Return(dependentHash).AnyTimes()
	return rm
}

func runtimeNames(modules []ports.RuntimeModule) []string {
	out := make([]string, 0, len(modules))
	for _, rm := range modules {
		out = append(out, rm.Identifier().String())
	}
	return out
}

func TestChunkRuntimeModulesInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	g, store := newGraph(t)
	c := newChunk(g, store, "main")

	g.AddRuntimeModule(c, mockRuntimeModule(ctrl, "webpack/runtime/trigger", domain.StageTrigger, false, false))
	g.AddRuntimeModule(c, mockRuntimeModule(ctrl, "webpack/runtime/b", domain.StageNormal, false, false))
	g.AddRuntimeModule(c, mockRuntimeModule(ctrl, "webpack/runtime/attach", domain.StageAttach, false, false))
	g.AddRuntimeModule(c, mockRuntimeModule(ctrl, "webpack/runtime/a", domain.StageNormal, false, false))
	g.AddRuntimeModule(c, mockRuntimeModule(ctrl, "webpack/runtime/basic", domain.StageBasic, false, false))

	assert.Equal(t, []string{
		"webpack/runtime/a",
		"webpack/runtime/b",
		"webpack/runtime/basic",
		"webpack/runtime/attach",
		"webpack/runtime/trigger",
	}, runtimeNames(g.ChunkRuntimeModulesInOrder(c)))

	rm, ok := g.RuntimeModule(id("webpack/runtime/a"))
	require.True(t, ok)
	assert.Equal(t, domain.StageNormal, rm.Stage())
}

func TestChunkRuntimeModulesInOrder_UnregisteredPanics(t *testing.T) {
	g, store := newGraph(t)
	c := newChunk(g, store, "main")
	g.ConnectChunkAndRuntimeModule(c, id("webpack/runtime/missing"))

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*zerr.Error)
		require.True(t, ok)
		assert.Contains(t, err.Error(), domain.ErrRuntimeModuleNotFound.Error())
		assert.Equal(t, "webpack/runtime/missing", err.Metadata()["module"])
	}()

	g.ChunkRuntimeModulesInOrder(c)
}

func TestHashModules(t *testing.T) {
	ctrl := gomock.NewController(t)
	g, store := newGraph(t)
	plain := newChunk(g, store, "plain")
	full := newChunk(g, store, "full")
	dependent := newChunk(g, store, "dependent")

	g.AddRuntimeModule(plain, mockRuntimeModule(ctrl, "rt/plain", domain.StageNormal, false, false))
	g.AddRuntimeModule(full, mockRuntimeModule(ctrl, "rt/full", domain.StageNormal, true, false))
	g.AddRuntimeModule(dependent, mockRuntimeModule(ctrl, "rt/dependent", domain.StageNormal, false, true))

	assert.False(t, g.HasChunkFullHashModules(plain))
	assert.False(t, g.HasChunkDependentHashModules(plain))
	assert.True(t, g.HasChunkFullHashModules(full))
	assert.False(t, g.HasChunkDependentHashModules(full))
	assert.False(t, g.HasChunkFullHashModules(dependent))
	assert.True(t, g.HasChunkDependentHashModules(dependent))
}

func TestRuntimeRequirements(t *testing.T) {
	g, store := newGraph(t)
	c := newChunk(g, store, "main")

	assert.Panics(t, func() { g.ChunkRuntimeRequirements(c) })

	g.SetChunkRuntimeRequirements(c, domain.RuntimeRequire|domain.RuntimeExports)
	assert.Equal(t, domain.RuntimeRequire|domain.RuntimeExports, g.ChunkRuntimeRequirements(c))
	assert.Equal(t, domain.RuntimeRequire|domain.RuntimeExports, g.TreeRuntimeRequirements(c))

	g.SetTreeRuntimeRequirements(c, domain.RuntimeRequire|domain.RuntimeEnsureChunk)
	assert.Equal(t, domain.RuntimeRequire|domain.RuntimeEnsureChunk, g.TreeRuntimeRequirements(c))
}

func TestChunkIDs(t *testing.T) {
	g, store := newGraph(t)
	c := newChunk(g, store, "main")

	_, ok := g.ChunkID(c)
	assert.False(t, ok)
	assert.Panics(t, func() { g.ExpectChunkID(c) })

	assert.True(t, g.SetChunkID(c, "main"))
	assert.False(t, g.SetChunkID(c, "main"))
	assert.True(t, g.SetChunkID(c, "0"))
	assert.Equal(t, "0", g.ExpectChunkID(c))

	g.SetRuntimeID("main", "runtime~main")
	runtimeID, ok := g.RuntimeID("main")
	require.True(t, ok)
	assert.Equal(t, "runtime~main", runtimeID)
}

func TestChunkConditionMap(t *testing.T) {
	g, store := newGraph(t)
	main := newChunk(g, store, "main")
	lazy := newChunk(g, store, "lazy")
	nested := newChunk(g, store, "nested")
	unrelated := newChunk(g, store, "unrelated")

	entry := store.NewChunkGroup(domain.ChunkGroupEntrypoint, "main")
	store.AddChunkToGroup(main, entry.Key())
	lazyGroup := store.NewChunkGroup(domain.ChunkGroupNormal, "lazy")
	store.AddChunkToGroup(lazy, lazyGroup.Key())
	nestedGroup := store.NewChunkGroup(domain.ChunkGroupNormal, "nested")
	store.AddChunkToGroup(nested, nestedGroup.Key())
	store.ConnectChunkGroups(entry.Key(), lazyGroup.Key())
	store.ConnectChunkGroups(lazyGroup.Key(), nestedGroup.Key())
	store.ConnectChunkGroups(nestedGroup.Key(), lazyGroup.Key())

	for _, c := range []domain.ChunkKey{main, lazy, nested, unrelated} {
		g.SetChunkID(c, store.ExpectChunk(c).Name)
	}

	got := g.ChunkConditionMap(main, func(c domain.ChunkKey) bool {
		return c != lazy
	})

	assert.Equal(t, map[string]bool{"main": true, "lazy": false, "nested": true}, got)
}
